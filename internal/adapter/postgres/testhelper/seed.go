package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueDomain returns a realistic, lower-cased domain that no other test uses.
func UniqueDomain() string {
	return uniqueSuffix() + "-" + strings.ToLower(gofakeit.DomainName())
}

// SeedClientConfig inserts a client config with a unique client_id and the
// default attribution settings. Options may adjust the row before insert.
func SeedClientConfig(t *testing.T, pool *pgxpool.Pool, opts ...func(*domain.ClientConfig)) domain.ClientConfig {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cfg := domain.ClientConfig{
		ID:                     uuid.New(),
		ClientID:               "client-" + uniqueSuffix(),
		Name:                   gofakeit.Company(),
		AttributionWindowDays:  domain.DefaultAttributionWindowDays,
		SoftMatchEnabled:       true,
		ExcludePersonalDomains: true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO client_configs (id, client_id, name, attribution_window_days, soft_match_enabled,
		                             exclude_personal_domains, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cfg.ID, cfg.ClientID, cfg.Name, cfg.AttributionWindowDays, cfg.SoftMatchEnabled,
		cfg.ExcludePersonalDomains, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClientConfig: %v", err)
	}

	return cfg
}

// SeedEmailSend records an outbound email in the send ledger.
// The recipient domain is derived from the address.
func SeedEmailSend(t *testing.T, pool *pgxpool.Pool, clientID, email string, sentAt time.Time) domain.EmailSendRecord {
	t.Helper()
	ctx := context.Background()

	email = domain.NormalizeEmail(email)
	recipientDomain, ok := domain.ExtractDomain(email)
	if !ok {
		t.Fatalf("testhelper: SeedEmailSend: invalid email %q", email)
	}

	prospectID := "prospect-" + gofakeit.LetterN(10)
	rec := domain.EmailSendRecord{
		ID:              uuid.New(),
		ClientID:        clientID,
		ProspectID:      &prospectID,
		RecipientEmail:  email,
		RecipientDomain: recipientDomain,
		SentAt:          sentAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO email_sends (id, client_id, prospect_id, recipient_email, recipient_domain, sent_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.ClientID, rec.ProspectID, rec.RecipientEmail, rec.RecipientDomain, rec.SentAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmailSend: %v", err)
	}

	return rec
}

// SeedPersonalDomain registers an agency-managed personal email domain.
func SeedPersonalDomain(t *testing.T, pool *pgxpool.Pool, name string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO personal_email_domains (domain) VALUES ($1) ON CONFLICT DO NOTHING`,
		strings.ToLower(name),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPersonalDomain: %v", err)
	}
}
