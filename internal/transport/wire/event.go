// Package wire defines the JSON shapes exchanged over REST and NATS and
// converts them to and from domain types.
package wire

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// eventNamespace seeds ids derived for events that arrive without one, so
// that a redelivered payload maps to the same id.
var eventNamespace = uuid.MustParse("5f0b7a53-94c1-4f1e-9d0c-2f3c1e8a7b10")

// Event is the upstream event payload.
type Event struct {
	ID        string         `json:"id,omitempty"`
	ClientID  string         `json:"client_id"`
	EventType string         `json:"event_type"`
	Email     *string        `json:"email,omitempty"`
	Domain    *string        `json:"domain,omitempty"`
	EventTime string         `json:"event_time"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// DecodeEvent parses a JSON event payload. Malformed JSON and unparsable
// id or event_time fields are reported as domain validation errors.
func DecodeEvent(data []byte) (domain.AttributionEvent, error) {
	var p Event
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return domain.AttributionEvent{}, domain.NewValidationError("body", "invalid JSON")
	}
	return p.ToDomain()
}

// ToDomain converts the payload. Blank optional strings become nil.
func (p Event) ToDomain() (domain.AttributionEvent, error) {
	var problems domain.Problems

	ev := domain.AttributionEvent{
		ClientID:  strings.TrimSpace(p.ClientID),
		EventType: domain.EventType(strings.TrimSpace(p.EventType)),
		Email:     blankToNil(p.Email),
		Domain:    blankToNil(p.Domain),
		Metadata:  p.Metadata,
	}

	if p.EventTime == "" {
		problems.Add("event_time", "required")
	} else if t, err := time.Parse(time.RFC3339Nano, p.EventTime); err != nil {
		problems.Add("event_time", "must be RFC 3339")
	} else {
		ev.EventTime = t.UTC()
	}

	if id := strings.TrimSpace(p.ID); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			problems.Add("id", "must be a UUID")
		}
		ev.ID = parsed
	}

	if err := problems.Err(); err != nil {
		return domain.AttributionEvent{}, err
	}
	if ev.ID == uuid.Nil {
		ev.ID = deriveEventID(ev)
	}
	return ev, nil
}

// deriveEventID hashes the identifying fields of an event.
func deriveEventID(ev domain.AttributionEvent) uuid.UUID {
	var b strings.Builder
	b.WriteString(ev.ClientID)
	b.WriteByte(0)
	b.WriteString(string(ev.EventType))
	b.WriteByte(0)
	if ev.Email != nil {
		b.WriteString(domain.NormalizeEmail(*ev.Email))
	}
	b.WriteByte(0)
	if ev.Domain != nil {
		b.WriteString(strings.ToLower(strings.TrimSpace(*ev.Domain)))
	}
	b.WriteByte(0)
	b.WriteString(ev.EventTime.UTC().Format(time.RFC3339Nano))
	return uuid.NewSHA1(eventNamespace, []byte(b.String()))
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
