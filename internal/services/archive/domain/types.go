// Package domain holds the archive run and sink contracts
package domain

import (
	"context"
	"time"

	ptime "tweetsnlp/internal/platform/time"
	collect "tweetsnlp/internal/services/collect/domain"
)

// Run identifies one collection run. StartedAt names the output files.
type Run struct {
	ID        string
	Query     string
	StartedAt time.Time
}

// Stamp is the file suffix for the run, e.g. 20221120_18_05
func (r Run) Stamp() string { return ptime.Stamp(r.StartedAt) }

// Sink persists a finished run
type Sink interface {
	Name() string
	Write(ctx context.Context, run Run, t collect.Tables, clean []collect.CleanPost) error
}

// ArchiverPort is what the collect command drives
type ArchiverPort interface {
	// WriteRaw persists the posts, authors and places tables
	WriteRaw(ctx context.Context, run Run, t collect.Tables) ([]string, error)
	// WriteClean persists the enriched table and flushes every sink
	WriteClean(ctx context.Context, run Run, t collect.Tables, clean []collect.CleanPost) ([]string, error)
}
