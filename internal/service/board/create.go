package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// CreateIdeaInput holds the parameters for submitting an idea.
type CreateIdeaInput struct {
	Title       string
	Description string
	Category    domain.IdeaCategory
}

// Validate checks all fields and collects all errors.
func (i CreateIdeaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if i.Category != "" && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("unknown category %q", i.Category)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create submits an idea and reloads the board so it shows the stored
// record exactly. An invalid input never reaches the repository. When the
// idea is stored but the reload fails, the idea is returned together with
// the load error.
func (b *Board) Create(ctx context.Context, input CreateIdeaInput) (domain.Idea, error) {
	if err := input.Validate(); err != nil {
		return domain.Idea{}, err
	}

	created, err := b.ideas.Create(ctx, domain.Idea{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
	})
	if err != nil {
		return domain.Idea{}, fmt.Errorf("create idea: %w", err)
	}

	b.log.InfoContext(ctx, "idea created",
		slog.Int64("idea_id", created.ID),
		slog.String("category", string(created.Category)),
	)

	b.record(ctx, domain.Activity{
		Type:        domain.ActivityIdeaCreated,
		Description: "New idea submitted",
		IdeaTitle:   created.Title,
		IdeaStatus:  created.Status,
	})

	if err := b.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}
