package reprocess

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/metrics"
)

// Intake sources, used as metric labels and log fields.
const (
	SourceHTTP  = "http"
	SourceNATS  = "nats"
	SourceBatch = "batch"
)

// Enqueue validates an event and adds it to the pending queue. A redelivered
// event is not an error; the second return value is false for it.
func (s *Service) Enqueue(ctx context.Context, ev domain.AttributionEvent, source string) (bool, error) {
	if err := ev.Validate(); err != nil {
		metrics.EventsEnqueued.WithLabelValues(source, "invalid").Inc()
		return false, err
	}

	queued, err := s.queue.Enqueue(ctx, ev)
	if err != nil {
		metrics.EventsEnqueued.WithLabelValues(source, "error").Inc()
		return false, fmt.Errorf("enqueue event %s: %w", ev.ID, err)
	}

	result := "queued"
	if !queued {
		result = "duplicate"
	}
	metrics.EventsEnqueued.WithLabelValues(source, result).Inc()

	s.log.DebugContext(ctx, "event enqueued",
		slog.String("event_id", ev.ID.String()),
		slog.String("client_id", ev.ClientID),
		slog.String("source", source),
		slog.Bool("duplicate", !queued),
	)
	return queued, nil
}

// Get returns the queue entry of one event, so a producer can see whether it
// has been processed and why it failed.
func (s *Service) Get(ctx context.Context, eventID uuid.UUID) (*domain.PendingEvent, error) {
	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}

	pe, err := s.queue.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get queued event %s: %w", eventID, err)
	}
	return pe, nil
}

// Stats returns queue counts and refreshes the queue depth gauge.
func (s *Service) Stats(ctx context.Context) (domain.PendingEventStats, error) {
	st, err := s.queue.GetStats(ctx)
	if err != nil {
		return domain.PendingEventStats{}, fmt.Errorf("queue stats: %w", err)
	}

	metrics.QueueDepth.WithLabelValues(string(domain.PendingEventStatusPending)).Set(float64(st.Pending))
	metrics.QueueDepth.WithLabelValues(string(domain.PendingEventStatusProcessing)).Set(float64(st.Processing))
	metrics.QueueDepth.WithLabelValues(string(domain.PendingEventStatusDone)).Set(float64(st.Done))
	metrics.QueueDepth.WithLabelValues(string(domain.PendingEventStatusFailed)).Set(float64(st.Failed))
	return st, nil
}
