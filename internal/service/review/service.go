// Package review runs the client dispute workflow on attributed domains:
// NO_STATUS -> PENDING_CLIENT_REVIEW -> ATTRIBUTED | CLIENT_REJECTED.
// The matching engine never writes these columns.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// DefaultExpiryDays is how long a client has to dispute before a pending
// review is confirmed automatically.
const DefaultExpiryDays = 7

// MaxNoteLength bounds the reviewer note.
const MaxNoteLength = 2000

type domainRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AttributedDomain, error)
	GetByKey(ctx context.Context, clientConfigID uuid.UUID, name string) (*domain.AttributedDomain, error)
	RequestReview(ctx context.Context, id uuid.UUID, requestedAt, expiresAt time.Time) (*domain.AttributedDomain, error)
	ResolveReview(ctx context.Context, id uuid.UUID, to domain.ReviewStatus, reviewedAt time.Time, note *string) (*domain.AttributedDomain, error)
	ExpirePending(ctx context.Context, now time.Time) (int, error)
}

type matchRepo interface {
	List(ctx context.Context, f domain.MatchFilter) ([]domain.AttributionMatch, error)
}

type timelineRepo interface {
	ListByDomain(ctx context.Context, attributedDomainID uuid.UUID) ([]domain.DomainEvent, error)
}

type clientRepo interface {
	GetByClientID(ctx context.Context, clientID string) (*domain.ClientConfig, error)
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Service provides review transitions and read access to a domain's audit
// trail and timeline.
type Service struct {
	log        *slog.Logger
	domains    domainRepo
	matches    matchRepo
	timeline   timelineRepo
	clients    clientRepo
	clock      clock
	expiryDays int
}

// NewService creates a new review service. A non-positive expiryDays falls
// back to DefaultExpiryDays.
func NewService(
	log *slog.Logger,
	domains domainRepo,
	matches matchRepo,
	timeline timelineRepo,
	clients clientRepo,
	expiryDays int,
) *Service {
	if expiryDays <= 0 {
		expiryDays = DefaultExpiryDays
	}
	return &Service{
		log:        log.With("service", "review"),
		domains:    domains,
		matches:    matches,
		timeline:   timeline,
		clients:    clients,
		clock:      systemClock{},
		expiryDays: expiryDays,
	}
}
