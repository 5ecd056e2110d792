package runlock

import "github.com/gofrs/flock"

// Acquire takes a non-blocking exclusive lock on path so two runs
// can't clobber the same output file. It returns a release func, or
// ok=false when another process already holds the lock.
func Acquire(path string) (release func(), ok bool, err error) {
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, false, err
	}
	if !locked {
		return nil, false, nil
	}
	return func() { _ = fl.Unlock() }, true, nil
}
