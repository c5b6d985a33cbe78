package module

import (
	"time"

	"tweetsnlp/internal/platform/config"
)

// DefaultQuery is searched when neither the CLI nor the env names one
const DefaultQuery = "world cup"

// Options holds the collector configuration
type Options struct {
	Query       string
	MaxPages    int
	DropUnd     bool
	BearerToken string
	BaseURL     string
	Timeout     time.Duration
	Retries     int
}

// FromConfig reads TWEETSNLP_* collector settings. The bearer token is required.
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("TWEETSNLP_")
	return Options{
		Query:       c.MayString("QUERY", DefaultQuery),
		MaxPages:    c.MayInt("MAX_PAGES", 41),
		DropUnd:     c.MayBool("DROP_UND", true),
		BearerToken: c.MustString("BEARER_TOKEN"),
		BaseURL:     c.MayString("SEARCH_BASE_URL", "https://api.twitter.com"),
		Timeout:     c.MayDuration("SEARCH_TIMEOUT", 30*time.Second),
		Retries:     c.MayInt("SEARCH_RETRIES", 0),
	}
}
