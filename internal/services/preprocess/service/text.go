package service

import (
	"context"

	"tweetsnlp/internal/core/langhint"
	"tweetsnlp/internal/core/preproc"
	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/services/preprocess/domain"
)

// Preprocess runs the full pipeline over a request's posts. A missing lang
// is guessed from the text.
func (s *Service) Preprocess(ctx context.Context, in domain.PreprocessInput) (domain.PreprocessOutput, error) {
	pp, err := s.derive(in)
	if err != nil {
		return domain.PreprocessOutput{}, err
	}

	inputs := make([]preproc.Input, len(in.Posts))
	for i, p := range in.Posts {
		inputs[i] = preproc.Input{ID: p.ID, Text: p.Text, Lang: langOrGuess(p.Lang, p.Text)}
	}
	res, err := pp.ProcessBatch(ctx, inputs)
	if err != nil {
		return domain.PreprocessOutput{}, perr.Wrap(err, perr.CodeOf(err), "preprocess interrupted")
	}

	out := domain.PreprocessOutput{Results: make([]domain.PostResult, 0, len(res))}
	seen := make(map[string]bool, len(res))
	for _, p := range in.Posts {
		r, ok := res[p.ID]
		if !ok || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out.Results = append(out.Results, domain.PostResult{ID: p.ID, Clean: r.Clean, Translated: r.Translated})
	}
	return out, nil
}

// Clean applies the cleaning stages only
func (s *Service) Clean(_ context.Context, in domain.TextInput) (domain.CleanOutput, error) {
	return domain.CleanOutput{Clean: s.pp.Clean(in.Text)}, nil
}

// Phrases splits normalized text into sentences
func (s *Service) Phrases(ctx context.Context, in domain.TextInput) (domain.PhrasesOutput, error) {
	ph := s.pp.Phrases(ctx, in.Text, langOrGuess(in.Lang, in.Text))
	if ph == nil {
		ph = []string{}
	}
	return domain.PhrasesOutput{Phrases: ph}, nil
}

func (s *Service) derive(in domain.PreprocessInput) (*preproc.PreProcessor, error) {
	if len(in.Slang) == 0 && in.Mode == "" {
		return s.pp, nil
	}
	var opts []preproc.Option
	if len(in.Slang) > 0 {
		opts = append(opts, preproc.WithSlang(in.Slang))
	}
	if in.Mode != "" {
		m, err := preproc.ParseMode(in.Mode)
		if err != nil {
			return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "unknown mode"), "mode")
		}
		opts = append(opts, preproc.WithMode(m))
	}
	return s.pp.Derive(opts...), nil
}

func langOrGuess(lang, text string) string {
	if lang != "" {
		return lang
	}
	return langhint.Guess(text)
}
