package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/francescomonticone/dexscraper/internal/domain"
)

// Header is the CSV column order, matching MentionRecord field order.
var Header = []string{"user_id", "tweet_id", "created_at", "token", "narrative"}

// WriteCSV overwrites path with a header row plus one row per record,
// in the order given. Callers skip the write entirely for an empty
// run; this function always produces at least the header.
func WriteCSV(path string, records []domain.MentionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.UserID, r.TweetID, r.CreatedAt, r.Token, r.Narrative}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
