// Package service runs the text normalizer over collected posts and API requests
package service

import (
	"tweetsnlp/internal/core/preproc"
	"tweetsnlp/internal/platform/logger"
)

// Service implements domain.EnricherPort and domain.TextPort
type Service struct {
	pp  *preproc.PreProcessor
	log logger.Logger
}

// New wraps a shared PreProcessor
func New(pp *preproc.PreProcessor) *Service {
	return &Service{pp: pp, log: *logger.Named("preprocess")}
}
