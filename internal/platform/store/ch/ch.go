// Package ch opens a native ClickHouse connection
package ch

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the clickhouse client
type Config struct {
	// DSN is a clickhouse:// URL, e.g. clickhouse://default:@localhost:9000/default
	DSN string

	// Role and Tag end up in system.query_log client info
	Role string
	Tag  string

	DialTimeout time.Duration
}

// Batch is a native insert batch
type Batch = driver.Batch

// CH holds a native driver connection
type CH struct {
	Conn driver.Conn
}

var open = clickhouse.Open

// Open parses the DSN, dials and pings the server
func Open(ctx context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}
	opts.ClientInfo = BuildClientInfo(cfg.Role, cfg.Tag)
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	conn, err := open(opts)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &CH{Conn: conn}, nil
}

// PrepareBatch starts an INSERT batch; query is the INSERT INTO ... head
func (c *CH) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.Conn.PrepareBatch(ctx, query)
}

// Exec runs a statement without results (DDL)
func (c *CH) Exec(ctx context.Context, query string, args ...any) error {
	return c.Conn.Exec(ctx, query, args...)
}

// Ping checks the connection
func (c *CH) Ping(ctx context.Context) error { return c.Conn.Ping(ctx) }

// Close closes the connection
func (c *CH) Close() error {
	if c == nil || c.Conn == nil {
		return nil
	}
	return c.Conn.Close()
}
