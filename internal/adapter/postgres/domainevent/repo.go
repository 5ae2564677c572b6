// Package domainevent implements the attributed domain timeline repository
// using PostgreSQL. Metadata is stored as JSONB.
package domainevent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// Repo provides timeline persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new domain event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const eventColumns = `id, attributed_domain_id, attribution_event_id, event_source, event_time, email, metadata, created_at`

// Re-processing an event must not duplicate its timeline entry.
const createSQL = `
INSERT INTO domain_events (id, attributed_domain_id, attribution_event_id, event_source, event_time, email, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (attributed_domain_id, attribution_event_id) DO NOTHING`

const listByDomainSQL = `
SELECT ` + eventColumns + `
FROM domain_events
WHERE attributed_domain_id = $1
ORDER BY event_time, created_at`

// Create appends a timeline entry. It reports false when the event was
// already on the domain's timeline.
func (r *Repo) Create(ctx context.Context, ev domain.DomainEvent) (bool, error) {
	id := ev.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	meta, err := marshalMetadata(ev.Metadata)
	if err != nil {
		return false, fmt.Errorf("domain event %s: marshal metadata: %w", ev.AttributionEventID, err)
	}

	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		id, ev.AttributedDomainID, ev.AttributionEventID, string(ev.EventSource), ev.EventTime, ev.Email, meta,
	)
	if err != nil {
		return false, postgres.MapError(err, "domain event", ev.AttributionEventID)
	}
	return ct.RowsAffected() == 1, nil
}

// ListByDomain returns the timeline of an attributed domain in event-time order.
func (r *Repo) ListByDomain(ctx context.Context, attributedDomainID uuid.UUID) ([]domain.DomainEvent, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByDomainSQL, attributedDomainID)
	if err != nil {
		return nil, fmt.Errorf("domainevent.ListByDomain: %w", err)
	}
	defer rows.Close()

	var out []domain.DomainEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("domainevent.ListByDomain: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("domainevent.ListByDomain: %w", err)
	}
	return out, nil
}

func scanEvent(row pgx.Row) (domain.DomainEvent, error) {
	var (
		ev     domain.DomainEvent
		source string
		meta   []byte
	)
	if err := row.Scan(&ev.ID, &ev.AttributedDomainID, &ev.AttributionEventID, &source, &ev.EventTime, &ev.Email, &meta, &ev.CreatedAt); err != nil {
		return domain.DomainEvent{}, err
	}
	ev.EventSource = domain.EventSource(source)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &ev.Metadata); err != nil {
			return domain.DomainEvent{}, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return ev, nil
}

func marshalMetadata(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
