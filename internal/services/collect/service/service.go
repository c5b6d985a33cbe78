// Package service pages through recent search and builds the collected tables
package service

import (
	"context"
	"strings"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/logger"
	"tweetsnlp/internal/services/collect/domain"
)

// DefaultMaxPages is the first page plus forty follow-ups
const DefaultMaxPages = 41

// Config holds the collection limits
type Config struct {
	MaxPages int  // <=0 -> DefaultMaxPages
	DropUnd  bool // drop posts whose language is "und"
}

// Service implements domain.CollectorPort
type Service struct {
	Search  domain.Searcher
	Cfg     Config
	Metrics *Metrics
}

// New constructs a collector over s
func New(s domain.Searcher, cfg Config, m *Metrics) *Service {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	return &Service{Search: s, Cfg: cfg, Metrics: m}
}

// Collect fetches the first page and follows next_token until it runs out
// or MaxPages pages were read. Any search error aborts the run.
func (s *Service) Collect(ctx context.Context, query string) (domain.Tables, error) {
	var tables domain.Tables
	if strings.TrimSpace(query) == "" {
		return tables, perr.InvalidArgf("collect: empty query")
	}
	log := logger.C(ctx)

	next := ""
	for page := 0; page < s.Cfg.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return tables, perr.Wrapf(err, perr.CodeOf(err), "collect: page %d", page)
		}
		resp, err := s.Search.Search(ctx, query, next)
		if err != nil {
			s.Metrics.page("error")
			return tables, perr.Wrapf(err, codeOr(err, perr.ErrorCodeUpstream), "collect: page %d", page)
		}
		s.Metrics.page("ok")

		kept := s.flatten(&tables, resp)
		s.Metrics.posts(kept, len(resp.Data)-kept)

		log.Debug().
			Int("page", page).
			Int("posts", len(resp.Data)).
			Int("kept", kept).
			Bool("places", resp.HasPlaces()).
			Str("next_token", resp.Meta.NextToken).
			Msg("collect: page")

		next = resp.Meta.NextToken
		if next == "" {
			break
		}
	}

	log.Info().
		Int("posts", len(tables.Posts)).
		Int("authors", len(tables.Authors)).
		Int("places", len(tables.Places)).
		Msg("collect: done")
	return tables, nil
}

// codeOr keeps an already coded error's code and falls back to def
func codeOr(err error, def perr.ErrorCode) perr.ErrorCode {
	if c := perr.CodeOf(err); c != perr.ErrorCodeUnknown {
		return c
	}
	return def
}
