package domain

import (
	"context"

	collect "tweetsnlp/internal/services/collect/domain"
)

// EnricherPort turns collected tables into the enriched posts table
type EnricherPort interface {
	Enrich(ctx context.Context, t collect.Tables) ([]collect.CleanPost, error)
}

// TextPort is the request/response surface behind the http handlers
type TextPort interface {
	Preprocess(ctx context.Context, in PreprocessInput) (PreprocessOutput, error)
	Clean(ctx context.Context, in TextInput) (CleanOutput, error)
	Phrases(ctx context.Context, in TextInput) (PhrasesOutput, error)
}
