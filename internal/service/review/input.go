package review

import (
	"fmt"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

func ratingError(r int) *domain.FieldError {
	if r < domain.MinRating || r > domain.MaxRating {
		return &domain.FieldError{Field: "rating", Message: fmt.Sprintf("must be in %d..%d", domain.MinRating, domain.MaxRating)}
	}
	return nil
}

// CreateInput holds the parameters for creating a review.
type CreateInput struct {
	CustomerName string
	Rating       int
	Comment      string
	ProjectID    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.CustomerName) == "" {
		errs = append(errs, domain.FieldError{Field: "customerName", Message: "required"})
	}
	if fe := ratingError(i.Rating); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update of one review.
type UpdateInput struct {
	ID    int64
	Patch domain.ReviewPatch
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
	if v, ok := i.Patch.CustomerName.Get(); ok && strings.TrimSpace(v) == "" {
		errs = append(errs, domain.FieldError{Field: "customerName", Message: "required"})
	}
	if v, ok := i.Patch.Rating.Get(); ok {
		if fe := ratingError(v); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
