package store

import (
	"strings"
	"time"

	"tweetsnlp/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres; an empty URL disables it
type PGConfig struct {
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int
	PingTimeout    time.Duration
}

// Enabled reports whether a URL is set
func (c PGConfig) Enabled() bool { return strings.TrimSpace(c.URL) != "" }

// CHConfig configures clickhouse; an empty DSN disables it
type CHConfig struct {
	DSN  string
	Role string
}

// Enabled reports whether a DSN is set
func (c CHConfig) Enabled() bool { return strings.TrimSpace(c.DSN) != "" }

// ConfigFromEnv reads PG_*/CH_* keys under c's prefix
func ConfigFromEnv(c config.Conf, appName string) Config {
	return Config{
		AppName: appName,
		PG: PGConfig{
			URL:            c.MayString("PG_URL", ""),
			MaxConns:       int32(c.MayInt("PG_MAX_CONNS", 4)),
			LogSQL:         c.MayBool("PG_LOG_SQL", false),
			SlowQueryMs:    c.MayInt("PG_SLOW_MS", 250),
			ConnectRetries: c.MayInt("PG_CONNECT_RETRIES", 6),
			PingTimeout:    c.MayDuration("PG_PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			DSN:  c.MayString("CH_DSN", ""),
			Role: appName,
		},
	}
}
