// Package emailledger implements read-only lookups over the outbound email
// send ledger. Queries are built with squirrel because the four lookups share
// one shape and differ only in their filters.
package emailledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "client_id", "prospect_id", "recipient_email", "recipient_domain", "sent_at"}

// Repo provides send ledger lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new email ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FindHardMatch returns the earliest email sent to the exact address strictly
// before the given time, or nil when there is none.
func (r *Repo) FindHardMatch(ctx context.Context, clientID, email string, before time.Time) (*domain.EmailSendRecord, error) {
	return r.earliest(ctx, "FindHardMatch", sq.Eq{"client_id": clientID, "recipient_email": email}, before)
}

// FindSoftMatch returns the earliest email sent to any address at the domain
// strictly before the given time, or nil when there is none.
func (r *Repo) FindSoftMatch(ctx context.Context, clientID, emailDomain string, before time.Time) (*domain.EmailSendRecord, error) {
	return r.earliest(ctx, "FindSoftMatch", sq.Eq{"client_id": clientID, "recipient_domain": emailDomain}, before)
}

// FirstSentToAddress returns the first email sent to the address before the
// given time, ignoring any attribution window.
func (r *Repo) FirstSentToAddress(ctx context.Context, clientID, email string, before time.Time) (*domain.EmailSendRecord, error) {
	return r.earliest(ctx, "FirstSentToAddress", sq.Eq{"client_id": clientID, "recipient_email": email}, before)
}

// FirstSentToDomain returns the first email sent to the domain before the
// given time, ignoring any attribution window.
func (r *Repo) FirstSentToDomain(ctx context.Context, clientID, emailDomain string, before time.Time) (*domain.EmailSendRecord, error) {
	return r.earliest(ctx, "FirstSentToDomain", sq.Eq{"client_id": clientID, "recipient_domain": emailDomain}, before)
}

func (r *Repo) earliest(ctx context.Context, op string, filter sq.Eq, before time.Time) (*domain.EmailSendRecord, error) {
	query, args, err := psql.Select(columns...).
		From("email_sends").
		Where(filter).
		Where(sq.Lt{"sent_at": before}).
		OrderBy("sent_at ASC", "id ASC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("emailledger.%s: build query: %w", op, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)

	var rec domain.EmailSendRecord
	err = row.Scan(&rec.ID, &rec.ClientID, &rec.ProspectID, &rec.RecipientEmail, &rec.RecipientDomain, &rec.SentAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("emailledger.%s: %w", op, err)
	}

	return &rec, nil
}
