package review

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// ResolveInput holds the parameters for confirming or rejecting a review.
type ResolveInput struct {
	DomainID uuid.UUID
	Note     *string
}

// Validate checks all fields and collects all errors.
func (i ResolveInput) Validate() error {
	var p domain.Problems
	if i.DomainID == uuid.Nil {
		p.Add("domain_id", "required")
	}
	if i.Note != nil && len(strings.TrimSpace(*i.Note)) > MaxNoteLength {
		p.Add("note", fmt.Sprintf("max %d characters", MaxNoteLength))
	}
	return p.Err()
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
