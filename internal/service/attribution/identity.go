package attribution

import "github.com/heartmarshall/attribution-portal/internal/domain"

// identity is the normalized contact an event refers to.
type identity struct {
	email  string // empty when the event carries no email
	domain string // empty when no domain could be resolved
}

// resolveIdentity prefers the explicit domain and falls back to the domain
// of the email address.
func resolveIdentity(ev domain.AttributionEvent) identity {
	id := identity{domain: ev.ResolvedDomain()}
	if ev.Email != nil {
		id.email = domain.NormalizeEmail(*ev.Email)
	}
	return id
}

func (id identity) emailPtr() *string {
	if id.email == "" {
		return nil
	}
	e := id.email
	return &e
}
