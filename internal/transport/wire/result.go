package wire

import (
	"time"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// MatchResult is the JSON form of domain.MatchResult.
type MatchResult struct {
	EventID           string     `json:"event_id"`
	MatchType         string     `json:"match_type"`
	AttributionStatus string     `json:"attribution_status"`
	IsWithinWindow    bool       `json:"is_within_window"`
	DaysSinceEmail    *int       `json:"days_since_email"`
	MatchedEmail      *string    `json:"matched_email"`
	EmailSentAt       *time.Time `json:"email_sent_at"`
	ProspectID        *string    `json:"prospect_id"`
	MatchReason       string     `json:"match_reason"`
}

// FromMatchResult converts the engine result for ev.
func FromMatchResult(ev domain.AttributionEvent, r domain.MatchResult) MatchResult {
	return MatchResult{
		EventID:           ev.ID.String(),
		MatchType:         string(r.MatchType),
		AttributionStatus: string(r.AttributionStatus),
		IsWithinWindow:    r.IsWithinWindow,
		DaysSinceEmail:    r.DaysSinceEmail,
		MatchedEmail:      r.MatchedEmail,
		EmailSentAt:       r.EmailSentAt,
		ProspectID:        r.ProspectID,
		MatchReason:       r.MatchReason,
	}
}

// AttributedDomain is the JSON form of domain.AttributedDomain.
type AttributedDomain struct {
	ID                   string     `json:"id"`
	Domain               string     `json:"domain"`
	FirstEmailSentAt     *time.Time `json:"first_email_sent_at"`
	FirstEventAt         time.Time  `json:"first_event_at"`
	FirstAttributedMonth string     `json:"first_attributed_month"`
	HasPositiveReply     bool       `json:"has_positive_reply"`
	HasSignUp            bool       `json:"has_sign_up"`
	HasMeetingBooked     bool       `json:"has_meeting_booked"`
	HasPayingCustomer    bool       `json:"has_paying_customer"`
	IsWithinWindow       bool       `json:"is_within_window"`
	MatchType            string     `json:"match_type"`
	Status               string     `json:"status"`
	ReviewRequestedAt    *time.Time `json:"review_requested_at"`
	ReviewExpiresAt      *time.Time `json:"review_expires_at"`
	ReviewedAt           *time.Time `json:"reviewed_at"`
	ReviewNote           *string    `json:"review_note"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// FromAttributedDomain converts a domain aggregate.
func FromAttributedDomain(d domain.AttributedDomain) AttributedDomain {
	return AttributedDomain{
		ID:                   d.ID.String(),
		Domain:               d.Domain,
		FirstEmailSentAt:     d.FirstEmailSentAt,
		FirstEventAt:         d.FirstEventAt,
		FirstAttributedMonth: d.FirstAttributedMonth,
		HasPositiveReply:     d.HasPositiveReply,
		HasSignUp:            d.HasSignUp,
		HasMeetingBooked:     d.HasMeetingBooked,
		HasPayingCustomer:    d.HasPayingCustomer,
		IsWithinWindow:       d.IsWithinWindow,
		MatchType:            string(d.MatchType),
		Status:               string(d.Status),
		ReviewRequestedAt:    d.ReviewRequestedAt,
		ReviewExpiresAt:      d.ReviewExpiresAt,
		ReviewedAt:           d.ReviewedAt,
		ReviewNote:           d.ReviewNote,
		UpdatedAt:            d.UpdatedAt,
	}
}

// AttributionMatch is the JSON form of one audit row.
type AttributionMatch struct {
	ID                 string     `json:"id"`
	AttributionEventID string     `json:"attribution_event_id"`
	Domain             string     `json:"domain"`
	EventType          string     `json:"event_type"`
	EventTime          time.Time  `json:"event_time"`
	MatchType          string     `json:"match_type"`
	AttributionStatus  string     `json:"attribution_status"`
	IsWithinWindow     bool       `json:"is_within_window"`
	DaysSinceEmail     *int       `json:"days_since_email"`
	MatchedEmail       *string    `json:"matched_email"`
	EmailSentAt        *time.Time `json:"email_sent_at"`
	ProspectID         *string    `json:"prospect_id"`
	MatchReason        string     `json:"match_reason"`
	CreatedAt          time.Time  `json:"created_at"`
}

// FromAttributionMatches converts audit rows.
func FromAttributionMatches(ms []domain.AttributionMatch) []AttributionMatch {
	out := make([]AttributionMatch, 0, len(ms))
	for _, m := range ms {
		out = append(out, AttributionMatch{
			ID:                 m.ID.String(),
			AttributionEventID: m.AttributionEventID.String(),
			Domain:             m.Domain,
			EventType:          string(m.EventType),
			EventTime:          m.EventTime,
			MatchType:          string(m.MatchType),
			AttributionStatus:  string(m.AttributionStatus),
			IsWithinWindow:     m.IsWithinWindow,
			DaysSinceEmail:     m.DaysSinceEmail,
			MatchedEmail:       m.MatchedEmail,
			EmailSentAt:        m.EmailSentAt,
			ProspectID:         m.ProspectID,
			MatchReason:        m.MatchReason,
			CreatedAt:          m.CreatedAt,
		})
	}
	return out
}

// QueueStats is the JSON form of domain.PendingEventStats.
type QueueStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Done       int `json:"done"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// FromQueueStats converts queue counts.
func FromQueueStats(s domain.PendingEventStats) QueueStats {
	return QueueStats(s)
}

// DomainEvent is the JSON form of one timeline entry.
type DomainEvent struct {
	ID                 string         `json:"id"`
	AttributionEventID string         `json:"attribution_event_id"`
	EventSource        string         `json:"event_source"`
	EventTime          time.Time      `json:"event_time"`
	Email              *string        `json:"email"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// FromDomainEvents converts a domain timeline.
func FromDomainEvents(evs []domain.DomainEvent) []DomainEvent {
	out := make([]DomainEvent, 0, len(evs))
	for _, e := range evs {
		out = append(out, DomainEvent{
			ID:                 e.ID.String(),
			AttributionEventID: e.AttributionEventID.String(),
			EventSource:        string(e.EventSource),
			EventTime:          e.EventTime,
			Email:              e.Email,
			Metadata:           e.Metadata,
			CreatedAt:          e.CreatedAt,
		})
	}
	return out
}

// QueuedEvent is the JSON form of a pending queue entry.
type QueuedEvent struct {
	EventID     string     `json:"event_id"`
	ClientID    string     `json:"client_id"`
	EventType   string     `json:"event_type"`
	EventTime   time.Time  `json:"event_time"`
	Status      string     `json:"status"`
	Attempts    int        `json:"attempts"`
	Error       *string    `json:"error"`
	ProcessedAt *time.Time `json:"processed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromPendingEvent converts a queue entry.
func FromPendingEvent(pe domain.PendingEvent) QueuedEvent {
	return QueuedEvent{
		EventID:     pe.Event.ID.String(),
		ClientID:    pe.Event.ClientID,
		EventType:   string(pe.Event.EventType),
		EventTime:   pe.Event.EventTime,
		Status:      string(pe.Status),
		Attempts:    pe.Attempts,
		Error:       pe.ErrorMessage,
		ProcessedAt: pe.ProcessedAt,
		CreatedAt:   pe.CreatedAt,
	}
}
