package domain

import (
	"strings"
	"time"
)

// NormalizeDomain prepares a raw domain for storage and comparison:
//   - trims whitespace and lower-cases
//   - strips an http(s):// scheme, any path, and a trailing dot
//   - strips a leading "www."
//
// The second return value is false when nothing usable remains or the
// result does not look like a domain (no dot, embedded '@' or whitespace).
func NormalizeDomain(raw string) (string, bool) {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	d = strings.TrimSuffix(d, ".")
	d = strings.TrimPrefix(d, "www.")

	if d == "" || !strings.Contains(d, ".") || strings.ContainsAny(d, "@ \t\r\n") {
		return "", false
	}
	if strings.HasPrefix(d, ".") || strings.Contains(d, "..") {
		return "", false
	}
	return d, true
}

// ExtractDomain returns the normalized domain part of an email address.
func ExtractDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "", false
	}
	return NormalizeDomain(email[at+1:])
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DaysBetween returns the whole days elapsed from earlier to later (floor).
// Callers pass later >= earlier; a negative span is clamped to 0.
func DaysBetween(earlier, later time.Time) int {
	d := later.Sub(earlier)
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

// FormatAttributionMonth returns the "YYYY-MM" reporting bucket of t in UTC.
func FormatAttributionMonth(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// MapEventTypeToSource maps an event type onto the timeline vocabulary.
// Unmapped types return false and are left out of the timeline.
func MapEventTypeToSource(t EventType) (EventSource, bool) {
	switch t {
	case EventTypeSignUp:
		return EventSourceSignUp, true
	case EventTypeMeetingBooked:
		return EventSourceMeetingBooked, true
	case EventTypePayingCustomer:
		return EventSourcePayingCustomer, true
	case EventTypePositiveReply:
		return EventSourcePositiveReply, true
	}
	return "", false
}
