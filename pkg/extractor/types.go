package extractor

import "time"

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"

	// MaxExcerptRunes bounds Result.Excerpt.
	MaxExcerptRunes = 2000

	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (compatible; egy-discovery/1.0)"

	maxBodyBytes = 5 << 20
)

// Config holds extractor settings.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Result is the outcome of one extraction.
type Result struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Excerpt      string `json:"excerpt"`
	SourceLength int    `json:"source_length"`
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
}

// OK reports whether the page was fetched and parsed.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}
