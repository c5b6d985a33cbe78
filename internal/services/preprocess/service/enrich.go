package service

import (
	"context"

	"tweetsnlp/internal/core/preproc"
	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/logger"
	collect "tweetsnlp/internal/services/collect/domain"
)

// Enrich normalizes every post that does not reference another collected
// post, then copies the referenced result onto the posts that do. Posts
// left without clean tokens are dropped; order follows t.Posts.
func (s *Service) Enrich(ctx context.Context, t collect.Tables) ([]collect.CleanPost, error) {
	byID := make(map[string]collect.Post, len(t.Posts))
	for _, p := range t.Posts {
		byID[p.ID] = p
	}

	sample := make([]preproc.Input, 0, len(t.Posts))
	for _, p := range t.Posts {
		if _, ok := byID[p.RefID]; p.RefID != "" && ok {
			continue
		}
		sample = append(sample, preproc.Input{ID: p.ID, Text: p.Text, Lang: p.Lang})
	}

	results, err := s.pp.ProcessBatch(ctx, sample)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeOf(err), "enrich: processed %d of %d posts", len(results), len(sample))
	}

	out := make([]collect.CleanPost, 0, len(t.Posts))
	for _, p := range t.Posts {
		r, ok := results[root(byID, p).ID]
		if !ok {
			continue
		}
		out = append(out, collect.CleanPost{Post: p, Clean: r.Clean, Translated: r.Translated})
	}

	logger.C(ctx).Info().
		Int("posts", len(t.Posts)).
		Int("sample", len(sample)).
		Int("kept", len(out)).
		Msg("enrich: done")
	return out, nil
}

// root follows RefID through collected posts to the one that was processed.
// A reference cycle stops at the post that closes it.
func root(byID map[string]collect.Post, p collect.Post) collect.Post {
	seen := map[string]bool{p.ID: true}
	for p.RefID != "" {
		next, ok := byID[p.RefID]
		if !ok || seen[next.ID] {
			return p
		}
		seen[next.ID] = true
		p = next
	}
	return p
}
