package store

import (
	"context"
	"time"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/logger"
	"tweetsnlp/internal/platform/store/ch"
	"tweetsnlp/internal/platform/store/pg"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

const (
	pingBackoffStart = 150 * time.Millisecond
	pingBackoffMax   = 2 * time.Second
)

// openPG creates the pool and waits for the server, retrying the ping with backoff
func openPG(ctx context.Context, cfg Config, log logger.Logger) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}
	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeStorage, "pg open")
	}

	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	policy := retrypolicy.NewBuilder[any]().
		HandleIf(func(_ any, err error) bool { return err != nil && ctx.Err() == nil }).
		WithMaxRetries(max(cfg.PG.ConnectRetries, 0)).
		WithBackoff(pingBackoffStart, pingBackoffMax).
		ReturnLastFailure().
		Build()

	attempt := 0
	_, err = failsafe.With[any](policy).WithContext(ctx).Get(func() (any, error) {
		attempt++
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		err := p.Pool.Ping(pctx)
		if err != nil {
			log.Debug().Err(err).Int("attempt", attempt).Msg("pg ping failed")
		}
		return nil, err
	})
	if err != nil {
		p.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "pg ping failed after %d attempts", attempt)
	}
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := ch.Open(ctx, ch.Config{DSN: cfg.CH.DSN, Role: cfg.CH.Role, Tag: cfg.AppName})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "ch open")
	}
	return newCHAdapter(c), nil
}
