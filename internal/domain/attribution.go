package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAttributionWindowDays is the contractual window used when a client
// config does not set one.
const DefaultAttributionWindowDays = 31

// AttributionEvent is a business outcome reported for a contact.
// At least one of Email and Domain must resolve to a domain for the event
// to be attributable.
type AttributionEvent struct {
	ID        uuid.UUID
	ClientID  string
	EventType EventType
	Email     *string
	Domain    *string
	EventTime time.Time
	Metadata  map[string]any
}

// Validate checks the fields required to process the event.
func (e AttributionEvent) Validate() error {
	var p Problems

	if e.ID == uuid.Nil {
		p.Add("id", "required")
	}
	if strings.TrimSpace(e.ClientID) == "" {
		p.Add("client_id", "required")
	}
	// Unknown event types are still matched; they only stay off the timeline.
	if strings.TrimSpace(string(e.EventType)) == "" {
		p.Add("event_type", "required")
	}
	if e.EventTime.IsZero() {
		p.Add("event_time", "required")
	}

	return p.Err()
}

// ResolvedDomain returns the normalized explicit domain, falling back to the
// domain of the email address. It is empty when neither resolves.
func (e AttributionEvent) ResolvedDomain() string {
	if e.Domain != nil {
		if d, ok := NormalizeDomain(*e.Domain); ok {
			return d
		}
	}
	if e.Email != nil {
		if d, ok := ExtractDomain(NormalizeEmail(*e.Email)); ok {
			return d
		}
	}
	return ""
}

// ClientConfig holds per-client attribution settings.
type ClientConfig struct {
	ID                     uuid.UUID
	ClientID               string
	Name                   string
	AttributionWindowDays  int
	SoftMatchEnabled       bool
	ExcludePersonalDomains bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// WindowDays returns the configured window, falling back to the default.
func (c ClientConfig) WindowDays() int {
	if c.AttributionWindowDays <= 0 {
		return DefaultAttributionWindowDays
	}
	return c.AttributionWindowDays
}

// EmailSendRecord is one outbound email from the agency's send ledger.
type EmailSendRecord struct {
	ID              uuid.UUID
	ClientID        string
	ProspectID      *string
	RecipientEmail  string
	RecipientDomain string
	SentAt          time.Time
}

// MatchResult is the outcome of matching one event against the send ledger.
// For soft matches MatchedEmail stays nil: the matched identity is the domain.
type MatchResult struct {
	MatchType         MatchType
	AttributionStatus AttributionStatus
	IsWithinWindow    bool
	DaysSinceEmail    *int
	MatchedEmail      *string
	EmailSentAt       *time.Time
	ProspectID        *string
	MatchReason       string
}

// AttributedDomain is the per-client, per-domain rollup of events.
type AttributedDomain struct {
	ID                   uuid.UUID
	ClientConfigID       uuid.UUID
	Domain               string
	FirstEmailSentAt     *time.Time
	FirstEventAt         time.Time
	FirstAttributedMonth string
	HasPositiveReply     bool
	HasSignUp            bool
	HasMeetingBooked     bool
	HasPayingCustomer    bool
	IsWithinWindow       bool
	MatchType            MatchType
	Status               ReviewStatus
	ReviewRequestedAt    *time.Time
	ReviewExpiresAt      *time.Time
	ReviewedAt           *time.Time
	ReviewNote           *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AttributedDomainUpsert carries the engine-owned fields merged into an
// AttributedDomain. Review columns are never part of it.
type AttributedDomainUpsert struct {
	ClientConfigID   uuid.UUID
	Domain           string
	FirstEmailSentAt *time.Time
	EventTime        time.Time
	EventType        EventType
	IsWithinWindow   bool
	MatchType        MatchType
}

// AttributionMatch is the immutable audit row written for every processed event.
type AttributionMatch struct {
	ID                 uuid.UUID
	AttributionEventID uuid.UUID
	ClientConfigID     uuid.UUID
	AttributedDomainID *uuid.UUID
	Domain             string
	EventType          EventType
	EventTime          time.Time
	MatchType          MatchType
	AttributionStatus  AttributionStatus
	IsWithinWindow     bool
	DaysSinceEmail     *int
	MatchedEmail       *string
	EmailSentAt        *time.Time
	ProspectID         *string
	MatchReason        string
	CreatedAt          time.Time
}

// MatchFilter selects audit rows. Nil fields are not applied; a zero Limit
// means the store's default.
type MatchFilter struct {
	AttributedDomainID *uuid.UUID
	AttributionEventID *uuid.UUID
	ClientConfigID     *uuid.UUID
	Limit              int
}

// DomainEvent is one entry in an attributed domain's timeline.
type DomainEvent struct {
	ID                 uuid.UUID
	AttributedDomainID uuid.UUID
	AttributionEventID uuid.UUID
	EventSource        EventSource
	EventTime          time.Time
	Email              *string
	Metadata           map[string]any
	CreatedAt          time.Time
}

// PendingEvent is a queued AttributionEvent awaiting processing.
type PendingEvent struct {
	Event        AttributionEvent
	Status       PendingEventStatus
	Attempts     int
	ErrorMessage *string
	ProcessedAt  *time.Time
	CreatedAt    time.Time
}

// PendingEventStats holds queue counts by status.
type PendingEventStats struct {
	Pending    int
	Processing int
	Done       int
	Failed     int
	Total      int
}
