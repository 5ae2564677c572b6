// Package pendingevent implements the queue of attribution events awaiting
// processing using PostgreSQL. Progress is checkpointed per event: a claimed
// event is either marked done or failed, and events left in processing by a
// crashed runner are returned to pending by ResetProcessing once they have
// been idle long enough that no live runner can still own them.
package pendingevent

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// Repo provides pending event queue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new pending event queue repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const eventColumns = `id, client_id, event_type, email, domain, event_time, metadata,
	status, attempts, error_message, processed_at, created_at`

const enqueueSQL = `
INSERT INTO attribution_events (id, client_id, event_type, email, domain, event_time, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

const claimBatchSQL = `
UPDATE attribution_events
SET status = 'processing', attempts = attempts + 1, updated_at = now()
WHERE id IN (
    SELECT id FROM attribution_events
    WHERE status = 'pending'
    ORDER BY event_time, id
    LIMIT $1
    FOR UPDATE SKIP LOCKED
)
RETURNING ` + eventColumns

const markDoneSQL = `
UPDATE attribution_events
SET status = 'done', error_message = NULL, processed_at = now(), updated_at = now()
WHERE id = $1`

const markFailedSQL = `
UPDATE attribution_events
SET status = 'failed', error_message = $2, processed_at = now(), updated_at = now()
WHERE id = $1`

const resetProcessingSQL = `
UPDATE attribution_events
SET status = 'pending', updated_at = now()
WHERE status = 'processing'
  AND updated_at < now() - make_interval(secs => $1)`

const retryFailedSQL = `
UPDATE attribution_events
SET status = 'pending', error_message = NULL, updated_at = now()
WHERE status = 'failed' AND attempts < $1`

const getStatsSQL = `
SELECT
    count(*) FILTER (WHERE status = 'pending')    AS pending,
    count(*) FILTER (WHERE status = 'processing') AS processing,
    count(*) FILTER (WHERE status = 'done')       AS done,
    count(*) FILTER (WHERE status = 'failed')     AS failed,
    count(*)                                      AS total
FROM attribution_events`

const getByIDSQL = `
SELECT ` + eventColumns + `
FROM attribution_events
WHERE id = $1`

// ---------------------------------------------------------------------------
// Queue operations
// ---------------------------------------------------------------------------

// Enqueue adds an event to the queue. Re-delivery of an already queued event
// is a no-op and reports false.
func (r *Repo) Enqueue(ctx context.Context, ev domain.AttributionEvent) (bool, error) {
	meta, err := marshalMetadata(ev.Metadata)
	if err != nil {
		return false, fmt.Errorf("pendingevent.Enqueue %s: marshal metadata: %w", ev.ID, err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, enqueueSQL,
		ev.ID, ev.ClientID, string(ev.EventType), ev.Email, ev.Domain,
		ev.EventTime.UTC().Truncate(time.Microsecond), meta,
	)
	if err != nil {
		return false, postgres.MapError(err, "pending event", ev.ID)
	}
	return ct.RowsAffected() == 1, nil
}

// ClaimBatch moves up to limit pending events to processing and returns them
// ordered by event time. Concurrent claimers never receive the same event.
func (r *Repo) ClaimBatch(ctx context.Context, limit int) ([]domain.PendingEvent, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, claimBatchSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("pendingevent.ClaimBatch: %w", err)
	}
	defer rows.Close()

	var out []domain.PendingEvent
	for rows.Next() {
		pe, err := scanPending(rows)
		if err != nil {
			return nil, fmt.Errorf("pendingevent.ClaimBatch: %w", err)
		}
		out = append(out, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pendingevent.ClaimBatch: %w", err)
	}

	// RETURNING does not preserve the subquery order.
	slices.SortFunc(out, func(a, b domain.PendingEvent) int {
		if c := a.Event.EventTime.Compare(b.Event.EventTime); c != 0 {
			return c
		}
		return slices.Compare(a.Event.ID[:], b.Event.ID[:])
	})
	return out, nil
}

// MarkDone marks an event as successfully processed.
func (r *Repo) MarkDone(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markDoneSQL, id); err != nil {
		return fmt.Errorf("pendingevent.MarkDone: %w", err)
	}
	return nil
}

// MarkFailed marks an event as failed with the error message.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markFailedSQL, id, errMsg); err != nil {
		return fmt.Errorf("pendingevent.MarkFailed: %w", err)
	}
	return nil
}

// ResetProcessing returns events that have sat in processing for longer than
// staleAfter to pending. Rows claimed more recently belong to a runner that may
// still be working on them and are left alone.
func (r *Repo) ResetProcessing(ctx context.Context, staleAfter time.Duration) (int, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, resetProcessingSQL, staleAfter.Seconds())
	if err != nil {
		return 0, fmt.Errorf("pendingevent.ResetProcessing: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

// RetryFailed returns failed events with fewer than maxAttempts attempts to pending.
func (r *Repo) RetryFailed(ctx context.Context, maxAttempts int) (int, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, retryFailedSQL, maxAttempts)
	if err != nil {
		return 0, fmt.Errorf("pendingevent.RetryFailed: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

// GetStats returns aggregate counts by status.
func (r *Repo) GetStats(ctx context.Context) (domain.PendingEventStats, error) {
	var pending, processing, done, failed, total int64
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getStatsSQL).
		Scan(&pending, &processing, &done, &failed, &total)
	if err != nil {
		return domain.PendingEventStats{}, fmt.Errorf("pendingevent.GetStats: %w", err)
	}
	return domain.PendingEventStats{
		Pending:    int(pending),
		Processing: int(processing),
		Done:       int(done),
		Failed:     int(failed),
		Total:      int(total),
	}, nil
}

// GetByID returns a queued event by id.
// Returns domain.ErrNotFound if it was never enqueued.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingEvent, error) {
	pe, err := scanPending(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "pending event", id)
	}
	return &pe, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPending(row pgx.Row) (domain.PendingEvent, error) {
	var (
		pe        domain.PendingEvent
		eventType string
		status    string
		meta      []byte
	)
	err := row.Scan(
		&pe.Event.ID, &pe.Event.ClientID, &eventType, &pe.Event.Email, &pe.Event.Domain, &pe.Event.EventTime, &meta,
		&status, &pe.Attempts, &pe.ErrorMessage, &pe.ProcessedAt, &pe.CreatedAt,
	)
	if err != nil {
		return domain.PendingEvent{}, err
	}
	pe.Event.EventType = domain.EventType(eventType)
	pe.Status = domain.PendingEventStatus(status)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &pe.Event.Metadata); err != nil {
			return domain.PendingEvent{}, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return pe, nil
}

func marshalMetadata(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
