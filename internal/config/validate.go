package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong
// or suspicious about it. Warnings never stop a run.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Output.Path = strings.TrimSpace(out.Output.Path)
	out.Output.LogFile = strings.TrimSpace(out.Output.LogFile)

	// ---- Validation rules ----

	if out.Scrape.LookbackDays <= 0 {
		res.addErr("scrape.lookback_days must be > 0")
	}

	if out.Scrape.PageSize <= 0 {
		res.addErr("scrape.page_size must be > 0")
	} else if out.Scrape.PageSize > 100 {
		res.addWarn("scrape.page_size is %d but the API caps a page at 100; clamping.", out.Scrape.PageSize)
		out.Scrape.PageSize = 100
	}

	if out.Scrape.RequestsPerSec <= 0 {
		res.addErr("scrape.requests_per_sec must be > 0")
	} else if out.Scrape.RequestsPerSec > 5 {
		res.addWarn("scrape.requests_per_sec is very high (%.1f) and will likely hit rate limits.", out.Scrape.RequestsPerSec)
	}

	if out.Output.Path == "" {
		res.addErr("output.path is required")
	}
	if out.Output.LogFile == "" {
		res.addErr("output.log_file is required")
	}

	if out.API.BearerToken == PlaceholderBearerToken {
		res.addWarn("TWITTER_BEARER_TOKEN is not set; every API call will be rejected.")
	}
	if out.API.ListID == PlaceholderListID {
		res.addWarn("TWITTER_LIST_ID is not set; the members lookup will fail.")
	}

	return out, res
}
