// Package attribution implements the matching engine: it decides whether a
// business event is credited to an outbound email and records the decision.
package attribution

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

type clientConfigRepo interface {
	GetByClientID(ctx context.Context, clientID string) (*domain.ClientConfig, error)
}

type emailLedger interface {
	FindHardMatch(ctx context.Context, clientID, email string, before time.Time) (*domain.EmailSendRecord, error)
	FindSoftMatch(ctx context.Context, clientID, emailDomain string, before time.Time) (*domain.EmailSendRecord, error)
	FirstSentToAddress(ctx context.Context, clientID, email string, before time.Time) (*domain.EmailSendRecord, error)
	FirstSentToDomain(ctx context.Context, clientID, emailDomain string, before time.Time) (*domain.EmailSendRecord, error)
}

type personalDomainClassifier interface {
	IsPersonal(ctx context.Context, emailDomain string) (bool, error)
}

type domainRepo interface {
	Upsert(ctx context.Context, in domain.AttributedDomainUpsert) (*domain.AttributedDomain, error)
}

type timelineRepo interface {
	Create(ctx context.Context, ev domain.DomainEvent) (bool, error)
}

type matchRepo interface {
	Create(ctx context.Context, m domain.AttributionMatch) (*domain.AttributionMatch, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type domainLocker interface {
	Lock(ctx context.Context, clientID, emailDomain string) (func(), error)
}

// Service is the attribution matching engine.
type Service struct {
	log      *slog.Logger
	clients  clientConfigRepo
	ledger   emailLedger
	personal personalDomainClassifier
	domains  domainRepo
	timeline timelineRepo
	matches  matchRepo
	tx       txManager
	locker   domainLocker

	defaultWindowDays int
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultWindowDays sets the window used for clients that have none
// configured.
func WithDefaultWindowDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.defaultWindowDays = days
		}
	}
}

// NewService creates a new attribution service.
func NewService(
	log *slog.Logger,
	clients clientConfigRepo,
	ledger emailLedger,
	personal personalDomainClassifier,
	domains domainRepo,
	timeline timelineRepo,
	matches matchRepo,
	tx txManager,
	locker domainLocker,
	opts ...Option,
) *Service {
	s := &Service{
		log:      log.With("service", "attribution"),
		clients:  clients,
		ledger:   ledger,
		personal: personal,
		domains:  domains,
		timeline: timeline,
		matches:  matches,
		tx:       tx,
		locker:   locker,

		defaultWindowDays: domain.DefaultAttributionWindowDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
