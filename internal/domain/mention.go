package domain

// Member is one account in the configured list. Member IDs are opaque
// strings; the API never guarantees they are numeric.
type Member struct {
	ID string
}

// Post is a single post as returned by the platform API. CreatedAt is
// kept verbatim (RFC 3339) so output rows round-trip the API exactly.
type Post struct {
	ID        string
	CreatedAt string
	Text      string
}

// MentionRecord is one row of the CSV output: a single token mention
// inside a single post.
type MentionRecord struct {
	UserID    string
	TweetID   string
	CreatedAt string
	Token     string
	Narrative string // excerpt of the post text around the token
}
