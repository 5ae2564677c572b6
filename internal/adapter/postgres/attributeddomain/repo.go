// Package attributeddomain implements the per-client, per-domain aggregate
// repository using PostgreSQL. The engine writes through Upsert; the review
// workflow writes through the conditional transition methods. Neither touches
// the other's columns.
package attributeddomain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// Repo provides attributed domain persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attributed domain repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const domainColumns = `id, client_config_id, domain, first_email_sent_at, first_event_at, first_attributed_month,
	has_positive_reply, has_sign_up, has_meeting_booked, has_paying_customer, is_within_window, match_type,
	status, review_requested_at, review_expires_at, reviewed_at, review_note, created_at, updated_at`

// first_event_at never regresses and the month follows it; flags only turn
// on; is_within_window and match_type take the latest event's outcome.
const upsertSQL = `
INSERT INTO attributed_domains (id, client_config_id, domain, first_email_sent_at, first_event_at, first_attributed_month,
    has_positive_reply, has_sign_up, has_meeting_booked, has_paying_customer, is_within_window, match_type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (client_config_id, domain) DO UPDATE SET
    first_email_sent_at    = LEAST(attributed_domains.first_email_sent_at, EXCLUDED.first_email_sent_at),
    first_event_at         = LEAST(attributed_domains.first_event_at, EXCLUDED.first_event_at),
    first_attributed_month = CASE
        WHEN EXCLUDED.first_event_at < attributed_domains.first_event_at THEN EXCLUDED.first_attributed_month
        ELSE attributed_domains.first_attributed_month
    END,
    has_positive_reply     = attributed_domains.has_positive_reply OR EXCLUDED.has_positive_reply,
    has_sign_up            = attributed_domains.has_sign_up OR EXCLUDED.has_sign_up,
    has_meeting_booked     = attributed_domains.has_meeting_booked OR EXCLUDED.has_meeting_booked,
    has_paying_customer    = attributed_domains.has_paying_customer OR EXCLUDED.has_paying_customer,
    is_within_window       = EXCLUDED.is_within_window,
    match_type             = EXCLUDED.match_type,
    updated_at             = now()
RETURNING ` + domainColumns

const getByIDSQL = `
SELECT ` + domainColumns + `
FROM attributed_domains
WHERE id = $1`

const getByKeySQL = `
SELECT ` + domainColumns + `
FROM attributed_domains
WHERE client_config_id = $1 AND domain = $2`

const existsSQL = `SELECT EXISTS (SELECT 1 FROM attributed_domains WHERE id = $1)`

const requestReviewSQL = `
UPDATE attributed_domains
SET status = 'PENDING_CLIENT_REVIEW', review_requested_at = $2, review_expires_at = $3, updated_at = now()
WHERE id = $1 AND status = 'NO_STATUS' AND is_within_window
RETURNING ` + domainColumns

const resolveReviewSQL = `
UPDATE attributed_domains
SET status = $2, reviewed_at = $3, review_note = $4, updated_at = now()
WHERE id = $1 AND status = 'PENDING_CLIENT_REVIEW'
RETURNING ` + domainColumns

const expirePendingSQL = `
UPDATE attributed_domains
SET status = 'ATTRIBUTED', reviewed_at = $1, updated_at = now()
WHERE status = 'PENDING_CLIENT_REVIEW' AND review_expires_at <= $1`

// ---------------------------------------------------------------------------
// Engine writes
// ---------------------------------------------------------------------------

// Upsert creates the aggregate for (client config, domain) or merges the
// event into it. Review columns are never written.
func (r *Repo) Upsert(ctx context.Context, in domain.AttributedDomainUpsert) (*domain.AttributedDomain, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	eventTime := in.EventTime.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, upsertSQL,
		uuid.New(),
		in.ClientConfigID,
		in.Domain,
		in.FirstEmailSentAt,
		eventTime,
		domain.FormatAttributionMonth(eventTime),
		in.EventType == domain.EventTypePositiveReply,
		in.EventType == domain.EventTypeSignUp,
		in.EventType == domain.EventTypeMeetingBooked,
		in.EventType == domain.EventTypePayingCustomer,
		in.IsWithinWindow,
		string(in.MatchType),
	)

	d, err := scanDomain(row)
	if err != nil {
		return nil, postgres.MapError(err, "attributed domain", in.Domain)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an attributed domain by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AttributedDomain, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id)

	d, err := scanDomain(row)
	if err != nil {
		return nil, postgres.MapError(err, "attributed domain", id)
	}
	return d, nil
}

// GetByKey returns the aggregate of a domain for a client config.
// Returns domain.ErrNotFound if no event has been recorded for it yet.
func (r *Repo) GetByKey(ctx context.Context, clientConfigID uuid.UUID, name string) (*domain.AttributedDomain, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByKeySQL, clientConfigID, name)

	d, err := scanDomain(row)
	if err != nil {
		return nil, postgres.MapError(err, "attributed domain", name)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Review transitions
// ---------------------------------------------------------------------------

// RequestReview moves a within-window NO_STATUS domain to PENDING_CLIENT_REVIEW.
// Returns domain.ErrConflict if the domain is in another state or outside the
// window, domain.ErrNotFound if it does not exist.
func (r *Repo) RequestReview(ctx context.Context, id uuid.UUID, requestedAt, expiresAt time.Time) (*domain.AttributedDomain, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, requestReviewSQL,
		id, requestedAt.UTC().Truncate(time.Microsecond), expiresAt.UTC().Truncate(time.Microsecond))

	return r.transitioned(ctx, id, row)
}

// ResolveReview moves a PENDING_CLIENT_REVIEW domain to a terminal status.
// Returns domain.ErrConflict if the domain is not pending review.
func (r *Repo) ResolveReview(ctx context.Context, id uuid.UUID, to domain.ReviewStatus, reviewedAt time.Time, note *string) (*domain.AttributedDomain, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, resolveReviewSQL,
		id, string(to), reviewedAt.UTC().Truncate(time.Microsecond), note)

	return r.transitioned(ctx, id, row)
}

// ExpirePending confirms every pending review whose deadline is at or before
// now and returns how many rows moved.
func (r *Repo) ExpirePending(ctx context.Context, now time.Time) (int, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, expirePendingSQL, now.UTC().Truncate(time.Microsecond))
	if err != nil {
		return 0, fmt.Errorf("attributeddomain.ExpirePending: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

// transitioned scans the result of a conditional update. When no row was
// updated it distinguishes a missing domain from a state mismatch.
func (r *Repo) transitioned(ctx context.Context, id uuid.UUID, row pgx.Row) (*domain.AttributedDomain, error) {
	d, err := scanDomain(row)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "attributed domain", id)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "attributed domain", id)
	}
	if !exists {
		return nil, fmt.Errorf("attributed domain %s: %w", id, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("attributed domain %s: %w", id, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanDomain(row pgx.Row) (*domain.AttributedDomain, error) {
	var (
		d         domain.AttributedDomain
		matchType string
		status    string
	)
	err := row.Scan(
		&d.ID, &d.ClientConfigID, &d.Domain, &d.FirstEmailSentAt, &d.FirstEventAt, &d.FirstAttributedMonth,
		&d.HasPositiveReply, &d.HasSignUp, &d.HasMeetingBooked, &d.HasPayingCustomer, &d.IsWithinWindow, &matchType,
		&status, &d.ReviewRequestedAt, &d.ReviewExpiresAt, &d.ReviewedAt, &d.ReviewNote, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.MatchType = domain.MatchType(matchType)
	d.Status = domain.ReviewStatus(status)
	return &d, nil
}
