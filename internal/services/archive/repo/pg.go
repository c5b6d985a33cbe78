package repo

import (
	"context"
	_ "embed"
	"strings"
	"time"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/store"
	pstrings "tweetsnlp/internal/platform/strings"
	ptime "tweetsnlp/internal/platform/time"
	"tweetsnlp/internal/services/archive/domain"
	collect "tweetsnlp/internal/services/collect/domain"
)

//go:embed schema.sql
var schemaSQL string

// PG writes a whole run in one transaction, keyed by run id
type PG struct {
	db store.TxRunner
}

// NewPG returns the Postgres sink
func NewPG(db store.TxRunner) *PG { return &PG{db: db} }

// Name implements domain.Sink
func (*PG) Name() string { return "postgres" }

// Migrate creates the archive tables when missing
func (p *PG) Migrate(ctx context.Context) error {
	return p.db.Tx(ctx, func(q store.RowQuerier) error {
		for _, stmt := range strings.Split(schemaSQL, ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := q.Exec(ctx, stmt); err != nil {
				return perr.FromPostgres(err, "archive: schema")
			}
		}
		return nil
	})
}

// Write implements domain.Sink. Rows repeated across pages are kept once.
func (p *PG) Write(ctx context.Context, run domain.Run, t collect.Tables, clean []collect.CleanPost) error {
	return p.db.Tx(ctx, func(q store.RowQuerier) error {
		if _, err := q.Exec(ctx, `
			INSERT INTO archive_runs (run_id, query, started_at)
			VALUES ($1::uuid, $2, $3)
			ON CONFLICT (run_id) DO UPDATE SET finished_at = now()
		`, run.ID, run.Query, run.StartedAt.UTC()); err != nil {
			return perr.FromPostgres(err, "archive: archive_runs")
		}
		for _, step := range []func(context.Context, store.RowQuerier, string) error{
			posts(t.Posts).insert,
			authors(t.Authors).insert,
			places(t.Places).insert,
			cleanPosts(clean).insert,
		} {
			if err := step(ctx, q, run.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

type (
	posts      []collect.Post
	authors    []collect.Author
	places     []collect.Place
	cleanPosts []collect.CleanPost
)

func (ps posts) insert(ctx context.Context, q store.RowQuerier, runID string) error {
	if len(ps) == 0 {
		return nil
	}
	n := len(ps)
	ids, authorIDs, langs, bodies := make([]string, n), make([]string, n), make([]string, n), make([]string, n)
	refTypes, refIDs, geoIDs := make([]*string, n), make([]*string, n), make([]*string, n)
	created := make([]*time.Time, n)
	sensitive := make([]bool, n)
	for i, p := range ps {
		ids[i], authorIDs[i], langs[i], bodies[i] = p.ID, p.AuthorID, p.Lang, p.Text
		refTypes[i] = pstrings.SQLNull(p.RefType.String())
		refIDs[i] = pstrings.SQLNull(p.RefID)
		geoIDs[i] = pstrings.SQLNull(p.GeoPlaceID)
		created[i] = ptime.Ptr(p.CreatedAt.UTC())
		sensitive[i] = p.PossiblySensitive
	}
	_, err := q.Exec(ctx, `
		INSERT INTO posts (run_id, post_id, author_id, created_at, lang, possibly_sensitive, body, ref_type, ref_post_id, geo_place_id)
		SELECT $1::uuid, u.*
		FROM unnest($2::text[], $3::text[], $4::timestamptz[], $5::text[], $6::bool[], $7::text[], $8::text[], $9::text[], $10::text[])
			AS u(post_id, author_id, created_at, lang, possibly_sensitive, body, ref_type, ref_post_id, geo_place_id)
		ON CONFLICT (run_id, post_id) DO NOTHING
	`, runID, ids, authorIDs, created, langs, sensitive, bodies, refTypes, refIDs, geoIDs)
	return perr.FromPostgres(err, "archive: posts")
}

func (as authors) insert(ctx context.Context, q store.RowQuerier, runID string) error {
	if len(as) == 0 {
		return nil
	}
	n := len(as)
	ids, names, usernames := make([]string, n), make([]string, n), make([]string, n)
	locations := make([]*string, n)
	for i, a := range as {
		ids[i], names[i], usernames[i] = a.ID, a.Name, a.Username
		locations[i] = pstrings.SQLNull(a.Location)
	}
	_, err := q.Exec(ctx, `
		INSERT INTO authors (run_id, user_id, name, username, location)
		SELECT $1::uuid, u.*
		FROM unnest($2::text[], $3::text[], $4::text[], $5::text[]) AS u(user_id, name, username, location)
		ON CONFLICT (run_id, user_id) DO NOTHING
	`, runID, ids, names, usernames, locations)
	return perr.FromPostgres(err, "archive: authors")
}

func (ps places) insert(ctx context.Context, q store.RowQuerier, runID string) error {
	if len(ps) == 0 {
		return nil
	}
	n := len(ps)
	ids, countries, fullNames, names := make([]string, n), make([]string, n), make([]string, n), make([]string, n)
	for i, p := range ps {
		ids[i], countries[i], fullNames[i], names[i] = p.ID, p.Country, p.FullName, p.Name
	}
	_, err := q.Exec(ctx, `
		INSERT INTO places (run_id, geo_place_id, country, full_name, name)
		SELECT $1::uuid, u.*
		FROM unnest($2::text[], $3::text[], $4::text[], $5::text[]) AS u(geo_place_id, country, full_name, name)
		ON CONFLICT (run_id, geo_place_id) DO NOTHING
	`, runID, ids, countries, fullNames, names)
	return perr.FromPostgres(err, "archive: places")
}

func (cs cleanPosts) insert(ctx context.Context, q store.RowQuerier, runID string) error {
	if len(cs) == 0 {
		return nil
	}
	n := len(cs)
	ids, toks, translated := make([]string, n), make([]string, n), make([]string, n)
	for i, cp := range cs {
		js, err := tokensJSON(cp.Clean)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeJSON, "archive: encode clean tokens of %s", cp.ID)
		}
		ids[i], toks[i], translated[i] = cp.ID, js, cp.Translated
	}
	_, err := q.Exec(ctx, `
		INSERT INTO clean_posts (run_id, post_id, clean, translated)
		SELECT $1::uuid, u.post_id, u.clean::jsonb, u.translated
		FROM unnest($2::text[], $3::text[], $4::text[]) AS u(post_id, clean, translated)
		ON CONFLICT (run_id, post_id) DO NOTHING
	`, runID, ids, toks, translated)
	return perr.FromPostgres(err, "archive: clean_posts")
}
