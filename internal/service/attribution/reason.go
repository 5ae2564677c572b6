package attribution

import (
	"fmt"
	"time"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

const reasonClientNotConfigured = "Client not configured in attribution system"

const reasonNoIdentity = "No match: event has no resolvable email or domain."

func matchReason(matchType domain.MatchType, matched string, sentAt time.Time, days, windowDays int, within bool) string {
	prefix := "Hard match: email sent to "
	if matchType == domain.MatchTypeSoft {
		prefix = "Soft match: email sent to domain "
	}

	outcome := "Within"
	if !within {
		outcome = "Outside"
	}

	return fmt.Sprintf("%s%s on %s, %s before event. %s %d-day attribution window.",
		prefix, matched, sentAt.UTC().Format(time.DateOnly), pluralDays(days), outcome, windowDays)
}

// noMatchReason explains a NO_MATCH. personalExcluded is set when soft
// matching was skipped because the domain is a personal provider.
func noMatchReason(id identity, personalExcluded, softAttempted bool) string {
	switch {
	case id.email == "" && id.domain == "":
		return reasonNoIdentity
	case personalExcluded && id.email != "":
		return fmt.Sprintf("No match: %s is a personal email domain, excluded from domain matching, "+
			"and no email was sent to this exact address.", id.domain)
	case personalExcluded:
		return fmt.Sprintf("No match: %s is a personal email domain, excluded from domain matching.", id.domain)
	case id.email != "" && softAttempted:
		return fmt.Sprintf("No match: no outbound email found for %s or domain %s before event.", id.email, id.domain)
	case id.email != "":
		return fmt.Sprintf("No match: no outbound email found for %s before event.", id.email)
	case !softAttempted:
		return fmt.Sprintf("No match: domain matching is disabled for this client and the event for %s has no email address.", id.domain)
	default:
		return fmt.Sprintf("No match: no outbound email found for domain %s before event.", id.domain)
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
