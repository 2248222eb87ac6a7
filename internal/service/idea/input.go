package idea

import (
	"fmt"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// CreateInput holds the parameters for creating an idea.
type CreateInput struct {
	Title       string
	Description string
	Category    domain.IdeaCategory
	Status      domain.IdeaStatus
	UserID      string
	ProjectID   string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Category != "" && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("unknown category %q", i.Category)})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", i.Status)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update of one idea.
type UpdateInput struct {
	ID    int64
	Patch domain.IdeaPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if v, ok := i.Patch.Title.Get(); ok && strings.TrimSpace(v) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if v, ok := i.Patch.Category.Get(); ok && !v.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("unknown category %q", v)})
	}
	if v, ok := i.Patch.Status.Get(); ok && !v.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", v)})
	}
	if v, ok := i.Patch.Votes.Get(); ok && v < 0 {
		errs = append(errs, domain.FieldError{Field: "votes", Message: "must be >= 0"})
	}
	if v, ok := i.Patch.CommentCount.Get(); ok && v < 0 {
		errs = append(errs, domain.FieldError{Field: "commentCount", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
