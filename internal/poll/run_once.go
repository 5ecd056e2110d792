package poll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/francescomonticone/dexscraper/internal/domain"
	"github.com/francescomonticone/dexscraper/internal/extract"
	"github.com/francescomonticone/dexscraper/internal/report"
)

// Source is the slice of the platform API the pipeline needs.
type Source interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	UserPosts(ctx context.Context, userID string) ([]domain.Post, error)
}

// Summary reports what one run did. FetchErrors distinguishes "every
// call failed" from "ran fine, found nothing" — both still end the
// run normally.
type Summary struct {
	Members     int
	Records     int
	FetchErrors int
}

// RunOnce executes one full scrape: list the members, fetch each
// member's recent posts in listed order, extract token mentions, and
// write the CSV at outputPath when anything was found. A failed call
// is logged and treated as empty; the run always continues.
func RunOnce(ctx context.Context, src Source, outputPath string, log *slog.Logger) (Summary, error) {
	var sum Summary

	members, err := src.ListMembers(ctx)
	if err != nil {
		log.Error("fetching list members", "err", err)
		sum.FetchErrors++
	}
	sum.Members = len(members)

	var records []domain.MentionRecord
	for _, m := range members {
		log.Info("scraping posts", "user_id", m.ID)

		posts, err := src.UserPosts(ctx, m.ID)
		if err != nil {
			log.Error("fetching posts", "user_id", m.ID, "err", err)
			sum.FetchErrors++
			continue
		}

		for _, p := range posts {
			for _, mn := range extract.Mentions(p.Text) {
				records = append(records, domain.MentionRecord{
					UserID:    m.ID,
					TweetID:   p.ID,
					CreatedAt: p.CreatedAt,
					Token:     mn.Token,
					Narrative: mn.Excerpt,
				})
			}
		}
	}
	sum.Records = len(records)

	if len(records) == 0 {
		log.Warn("no token mentions found")
		return sum, nil
	}

	if err := report.WriteCSV(outputPath, records); err != nil {
		return sum, fmt.Errorf("write output: %w", err)
	}
	log.Info("token mentions saved", "path", outputPath, "records", len(records))
	return sum, nil
}
