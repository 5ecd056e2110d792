package twitter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/francescomonticone/dexscraper/internal/domain"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the v2 REST API root.
const DefaultBaseURL = "https://api.twitter.com/2"

type Config struct {
	BaseURL      string // defaults to DefaultBaseURL
	BearerToken  string
	ListID       string
	LookbackDays int // trailing window for UserPosts
	PageSize     int // max results per user, API caps at 100
}

// Client talks to the platform API with bearer auth. All requests go
// through the shared limiter, so the caller never has to sleep.
type Client struct {
	cfg     Config
	rc      *resty.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// New builds a Client. A nil limiter disables throttling (tests).
func New(cfg Config, limiter *rate.Limiter) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(20 * time.Second).
		SetAuthToken(cfg.BearerToken).
		SetHeader("Content-Type", "application/json")

	return &Client{
		cfg:     cfg,
		rc:      rc,
		limiter: limiter,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock, for deterministic start_time in tests.
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

type listMembersResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type userPostsResponse struct {
	Data []struct {
		ID        string `json:"id"`
		CreatedAt string `json:"created_at"`
		Text      string `json:"text"`
	} `json:"data"`
}

// ListMembers fetches the IDs of every account in the configured list,
// in the order the API returns them.
func (c *Client) ListMembers(ctx context.Context) ([]domain.Member, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	var body listMembersResponse
	res, err := c.rc.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/lists/%s/members", c.cfg.ListID))
	if err != nil {
		return nil, fmt.Errorf("list members get: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("list members status %d", res.StatusCode())
	}

	members := make([]domain.Member, 0, len(body.Data))
	for _, m := range body.Data {
		members = append(members, domain.Member{ID: m.ID})
	}
	return members, nil
}

// UserPosts fetches one member's posts created within the lookback
// window, newest page only. The API silently truncates to the first
// page; anything past PageSize results is not fetched.
func (c *Client) UserPosts(ctx context.Context, userID string) ([]domain.Post, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	startTime := c.now().
		Add(-time.Duration(c.cfg.LookbackDays) * 24 * time.Hour).
		Format(time.RFC3339)

	var body userPostsResponse
	res, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"max_results":  strconv.Itoa(c.cfg.PageSize),
			"tweet.fields": "created_at,text",
			"start_time":   startTime,
		}).
		SetResult(&body).
		Get(fmt.Sprintf("/users/%s/tweets", userID))
	if err != nil {
		return nil, fmt.Errorf("user posts get: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("user posts status %d", res.StatusCode())
	}

	posts := make([]domain.Post, 0, len(body.Data))
	for _, p := range body.Data {
		posts = append(posts, domain.Post{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			Text:      p.Text,
		})
	}
	return posts, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
