package domain

import (
	"context"

	"tweetsnlp/internal/adapters/ingest/twitter"
)

// Searcher fetches one page of recent-search results
type Searcher interface {
	Search(ctx context.Context, query, nextToken string) (*twitter.SearchResponse, error)
}

// CollectorPort is what the collect command drives
type CollectorPort interface {
	Collect(ctx context.Context, query string) (Tables, error)
}
