// Package idea manages ideas outside the board: listing, lookup and the
// admin edits of every field.
package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type ideaRepo interface {
	GetAll(ctx context.Context) ([]domain.Idea, error)
	GetByID(ctx context.Context, id int64) (domain.Idea, error)
	Create(ctx context.Context, idea domain.Idea) (domain.Idea, error)
	Update(ctx context.Context, id int64, patch domain.IdeaPatch) (domain.Idea, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides idea management operations.
type Service struct {
	ideas ideaRepo
	log   *slog.Logger
}

// NewService creates a new idea service.
func NewService(log *slog.Logger, ideas ideaRepo) *Service {
	return &Service{
		ideas: ideas,
		log:   log.With("service", "idea"),
	}
}

// List returns every idea, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Idea, error) {
	ideas, err := s.ideas.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	return ideas, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Idea, error) {
	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("get idea: %w", err)
	}
	return idea, nil
}

// Create stores a new idea. Unset category and status take their defaults.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Idea, error) {
	if err := input.Validate(); err != nil {
		return domain.Idea{}, err
	}

	idea, err := s.ideas.Create(ctx, domain.Idea{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Status:      input.Status,
		UserID:      input.UserID,
		ProjectID:   input.ProjectID,
	})
	if err != nil {
		return domain.Idea{}, fmt.Errorf("create idea: %w", err)
	}

	s.log.InfoContext(ctx, "idea created", slog.Int64("idea_id", idea.ID))
	return idea, nil
}

// Update applies the set fields of the patch.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Idea, error) {
	if err := input.Validate(); err != nil {
		return domain.Idea{}, err
	}

	idea, err := s.ideas.Update(ctx, input.ID, input.Patch)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("update idea: %w", err)
	}

	s.log.InfoContext(ctx, "idea updated", slog.Int64("idea_id", idea.ID))
	return idea, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.ideas.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}

	s.log.InfoContext(ctx, "idea deleted", slog.Int64("idea_id", id))
	return nil
}
