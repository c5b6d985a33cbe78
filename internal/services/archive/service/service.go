// Package service persists a run's tables as CSV files and to the optional sinks
package service

import (
	"context"
	"errors"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/platform/logger"
	"tweetsnlp/internal/services/archive/domain"
	"tweetsnlp/internal/services/archive/repo"
	collect "tweetsnlp/internal/services/collect/domain"
)

// Service implements domain.ArchiverPort. CSV output is always written;
// Sinks run after the enriched table and all of them are attempted.
type Service struct {
	CSV   *repo.CSV
	Sinks []domain.Sink
}

// New returns an archiver writing under csv plus sinks
func New(csv *repo.CSV, sinks ...domain.Sink) *Service {
	return &Service{CSV: csv, Sinks: sinks}
}

// WriteRaw writes the posts, users and (when present) places files
func (s *Service) WriteRaw(ctx context.Context, run domain.Run, t collect.Tables) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.CodeOf(err), "archive: raw")
	}
	files, err := s.CSV.WriteRaw(run, t)
	if err != nil {
		return files, err
	}
	logger.C(ctx).Info().Strs("files", files).Str("stamp", run.Stamp()).Msg("archive: raw tables written")
	return files, nil
}

// WriteClean writes the enriched file, then hands the whole run to every sink.
// Sink failures are joined so one backend being down does not hide another.
func (s *Service) WriteClean(ctx context.Context, run domain.Run, t collect.Tables, clean []collect.CleanPost) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.CodeOf(err), "archive: clean")
	}
	f, err := s.CSV.WriteClean(run, clean)
	if err != nil {
		return nil, err
	}
	log := logger.C(ctx)
	log.Info().Str("file", f).Int("rows", len(clean)).Msg("archive: clean table written")

	var errs []error
	for _, sink := range s.Sinks {
		if err := sink.Write(ctx, run, t, clean); err != nil {
			log.Error().Err(err).Str("sink", sink.Name()).Msg("archive: sink failed")
			errs = append(errs, err)
			continue
		}
		log.Info().Str("sink", sink.Name()).Int("rows", len(clean)).Msg("archive: sink written")
	}
	if err := errors.Join(errs...); err != nil {
		return []string{f}, perr.Wrap(err, perr.ErrorCodeStorage, "archive: sinks")
	}
	return []string{f}, nil
}
