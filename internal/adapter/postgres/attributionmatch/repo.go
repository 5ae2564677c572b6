// Package attributionmatch implements the append-only audit ledger of match
// decisions using PostgreSQL. Rows are never updated or deleted; the schema
// enforces this with a trigger.
package attributionmatch

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// DefaultListLimit caps List when the filter does not set a limit.
const DefaultListLimit = 100

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "attribution_event_id", "client_config_id", "attributed_domain_id", "domain", "event_type", "event_time",
	"match_type", "attribution_status", "is_within_window", "days_since_email", "matched_email", "email_sent_at",
	"prospect_id", "match_reason", "created_at",
}

// Repo provides audit ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attribution match repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends an audit row and returns it with its id and created_at set.
func (r *Repo) Create(ctx context.Context, m domain.AttributionMatch) (*domain.AttributionMatch, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	query, args, err := psql.Insert("attribution_matches").
		Columns(columns[:len(columns)-1]...).
		Values(
			m.ID, m.AttributionEventID, m.ClientConfigID, m.AttributedDomainID, m.Domain, string(m.EventType), m.EventTime,
			string(m.MatchType), string(m.AttributionStatus), m.IsWithinWindow, m.DaysSinceEmail, m.MatchedEmail,
			m.EmailSentAt, m.ProspectID, m.MatchReason,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("attributionmatch.Create: build query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&m.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "attribution match", m.AttributionEventID)
	}
	return &m, nil
}

// List returns audit rows matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.MatchFilter) ([]domain.AttributionMatch, error) {
	b := psql.Select(columns...).From("attribution_matches")
	if f.AttributedDomainID != nil {
		b = b.Where(sq.Eq{"attributed_domain_id": *f.AttributedDomainID})
	}
	if f.AttributionEventID != nil {
		b = b.Where(sq.Eq{"attribution_event_id": *f.AttributionEventID})
	}
	if f.ClientConfigID != nil {
		b = b.Where(sq.Eq{"client_config_id": *f.ClientConfigID})
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query, args, err := b.OrderBy("created_at DESC", "id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("attributionmatch.List: build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("attributionmatch.List: %w", err)
	}
	defer rows.Close()

	var out []domain.AttributionMatch
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("attributionmatch.List: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("attributionmatch.List: %w", err)
	}
	return out, nil
}

func scanMatch(row pgx.Row) (domain.AttributionMatch, error) {
	var (
		m                                domain.AttributionMatch
		eventType, matchType, attrStatus string
	)
	err := row.Scan(
		&m.ID, &m.AttributionEventID, &m.ClientConfigID, &m.AttributedDomainID, &m.Domain, &eventType, &m.EventTime,
		&matchType, &attrStatus, &m.IsWithinWindow, &m.DaysSinceEmail, &m.MatchedEmail, &m.EmailSentAt,
		&m.ProspectID, &m.MatchReason, &m.CreatedAt,
	)
	if err != nil {
		return domain.AttributionMatch{}, err
	}
	m.EventType = domain.EventType(eventType)
	m.MatchType = domain.MatchType(matchType)
	m.AttributionStatus = domain.AttributionStatus(attrStatus)
	return m, nil
}
