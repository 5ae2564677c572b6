// Package personaldomain classifies email domains as personal (free-mail)
// providers, which are excluded from domain-level matching.
package personaldomain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// builtinDomains are consumer providers recognised without configuration.
var builtinDomains = []string{
	"gmail.com", "googlemail.com",
	"yahoo.com", "yahoo.co.uk", "yahoo.fr", "ymail.com", "rocketmail.com",
	"hotmail.com", "hotmail.co.uk", "outlook.com", "live.com", "msn.com",
	"icloud.com", "me.com", "mac.com",
	"aol.com",
	"proton.me", "protonmail.com", "pm.me", "tutanota.com",
	"gmx.com", "gmx.de", "gmx.net", "web.de", "mail.com",
	"zoho.com", "fastmail.com", "hey.com",
	"yandex.com", "yandex.ru", "mail.ru",
	"qq.com", "163.com", "126.com",
	"comcast.net", "verizon.net", "att.net",
}

type domainRepo interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// Classifier checks the built-in list, configured extras and the
// agency-managed table, in that order.
type Classifier struct {
	log   *slog.Logger
	known map[string]struct{}
	repo  domainRepo
}

// NewClassifier creates a classifier. repo may be nil, in which case only the
// built-in list and extra are consulted.
func NewClassifier(log *slog.Logger, repo domainRepo, extra []string) *Classifier {
	known := make(map[string]struct{}, len(builtinDomains)+len(extra))
	for _, d := range builtinDomains {
		known[d] = struct{}{}
	}
	for _, d := range extra {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			known[d] = struct{}{}
		}
	}

	return &Classifier{
		log:   log.With("service", "personaldomain"),
		known: known,
		repo:  repo,
	}
}

// IsPersonal reports whether emailDomain is a personal email provider.
// emailDomain must already be normalized. Repository failures are returned.
func (c *Classifier) IsPersonal(ctx context.Context, emailDomain string) (bool, error) {
	if _, ok := c.known[emailDomain]; ok {
		return true, nil
	}
	if c.repo == nil {
		return false, nil
	}

	ok, err := c.repo.Exists(ctx, emailDomain)
	if err != nil {
		return false, fmt.Errorf("classify %s: %w", emailDomain, err)
	}
	if ok {
		c.log.DebugContext(ctx, "personal domain from table", slog.String("domain", emailDomain))
	}
	return ok, nil
}
