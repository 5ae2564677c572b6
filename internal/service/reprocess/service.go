// Package reprocess feeds queued attribution events to the matching engine.
// Intake enqueues events; the runner claims batches and processes them with
// bounded concurrency, serializing events that share a (client, domain).
package reprocess

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

type queueRepo interface {
	Enqueue(ctx context.Context, ev domain.AttributionEvent) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingEvent, error)
	ClaimBatch(ctx context.Context, limit int) ([]domain.PendingEvent, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	ResetProcessing(ctx context.Context, staleAfter time.Duration) (int, error)
	RetryFailed(ctx context.Context, maxAttempts int) (int, error)
	GetStats(ctx context.Context) (domain.PendingEventStats, error)
}

type eventProcessor interface {
	ProcessEvent(ctx context.Context, ev domain.AttributionEvent) (domain.MatchResult, error)
}

// Options tunes the batch runner.
type Options struct {
	BatchSize   int
	Concurrency int
	MaxAttempts int
	// StaleAfter is how long an event may stay in processing before another
	// runner treats its owner as dead. It must exceed the longest batch.
	StaleAfter time.Duration
}

const (
	defaultBatchSize   = 200
	defaultConcurrency = 8
	defaultMaxAttempts = 5
	defaultStaleAfter  = 15 * time.Minute
)

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = defaultBatchSize
	}
	if o.Concurrency <= 0 {
		o.Concurrency = defaultConcurrency
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.StaleAfter <= 0 {
		o.StaleAfter = defaultStaleAfter
	}
	return o
}

// Service owns the pending event queue.
type Service struct {
	log    *slog.Logger
	queue  queueRepo
	engine eventProcessor
	opts   Options
}

// NewService creates a new reprocess service.
func NewService(
	log *slog.Logger,
	queue queueRepo,
	engine eventProcessor,
	opts Options,
) *Service {
	return &Service{
		log:    log.With("service", "reprocess"),
		queue:  queue,
		engine: engine,
		opts:   opts.withDefaults(),
	}
}
