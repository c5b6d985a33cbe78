package store

import (
	"context"
	"errors"

	"tweetsnlp/internal/platform/store/ch"
)

func newCHAdapter(c *ch.CH) Clickhouse { return &chAdapter{inner: c} }

// chAdapter narrows *ch.CH to the Clickhouse seam
type chAdapter struct {
	inner *ch.CH
}

var _ Clickhouse = (*chAdapter)(nil)

func (a *chAdapter) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	b, err := a.inner.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (a *chAdapter) Exec(ctx context.Context, query string, args ...any) error {
	return a.inner.Exec(ctx, query, args...)
}

func (a *chAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *chAdapter) Close() error { return a.inner.Close() }
