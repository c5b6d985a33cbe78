package repo

import (
	"context"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/store"
	"tweetsnlp/internal/services/archive/domain"
	collect "tweetsnlp/internal/services/collect/domain"
)

const chSchema = `
	CREATE TABLE IF NOT EXISTS clean_posts (
		run_id             UUID,
		post_id            String,
		author_id          String,
		created_at         DateTime64(3, 'UTC'),
		lang               LowCardinality(String),
		possibly_sensitive UInt8,
		body               String,
		ref_type           LowCardinality(String),
		ref_post_id        String,
		geo_place_id       String,
		clean              Array(String),
		translated         String
	)
	ENGINE = MergeTree
	ORDER BY (created_at, post_id)`

const chInsert = `
	INSERT INTO clean_posts (
		run_id, post_id, author_id, created_at, lang, possibly_sensitive,
		body, ref_type, ref_post_id, geo_place_id, clean, translated
	)`

// CH appends enriched posts to clean_posts through one native batch per run
type CH struct {
	db store.Clickhouse
}

// NewCH returns the ClickHouse sink
func NewCH(db store.Clickhouse) *CH { return &CH{db: db} }

// Name implements domain.Sink
func (*CH) Name() string { return "clickhouse" }

// Migrate creates clean_posts when missing
func (c *CH) Migrate(ctx context.Context) error {
	if err := c.db.Exec(ctx, chSchema); err != nil {
		return perr.Wrap(err, perr.ErrorCodeStorage, "archive: clickhouse schema")
	}
	return nil
}

// Write implements domain.Sink. Only the enriched table is stored; a failed
// append aborts the batch without sending.
func (c *CH) Write(ctx context.Context, run domain.Run, _ collect.Tables, clean []collect.CleanPost) error {
	if len(clean) == 0 {
		return nil
	}
	batch, err := c.db.PrepareBatch(ctx, chInsert)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeStorage, "archive: prepare clickhouse batch")
	}
	for _, cp := range clean {
		toks := cp.Clean
		if toks == nil {
			toks = []string{}
		}
		if err := batch.Append(
			run.ID,
			cp.ID,
			cp.AuthorID,
			cp.CreatedAt.UTC(),
			cp.Lang,
			sensitiveFlag(cp.PossiblySensitive),
			cp.Text,
			cp.RefType.String(),
			cp.RefID,
			cp.GeoPlaceID,
			toks,
			cp.Translated,
		); err != nil {
			_ = batch.Abort()
			return perr.Wrapf(err, perr.ErrorCodeStorage, "archive: append %s", cp.ID)
		}
	}
	if err := batch.Send(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeStorage, "archive: send clickhouse batch")
	}
	return nil
}

func sensitiveFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
