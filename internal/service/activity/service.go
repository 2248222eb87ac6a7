// Package activity serves the activity feed.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type activityRepo interface {
	GetAll(ctx context.Context) ([]domain.Activity, error)
	GetByID(ctx context.Context, id int64) (domain.Activity, error)
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, id int64, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides activity feed operations.
type Service struct {
	activities activityRepo
	log        *slog.Logger
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, activities activityRepo) *Service {
	return &Service{
		activities: activities,
		log:        log.With("service", "activity"),
	}
}

// List returns the feed, newest first. A positive limit truncates it.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	acts, err := s.activities.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if limit > 0 && len(acts) > limit {
		acts = acts[:limit]
	}
	return acts, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("get activity: %w", err)
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if !a.Type.IsValid() {
		return domain.Activity{}, domain.NewValidationError("type", fmt.Sprintf("unknown activity type %q", a.Type))
	}
	if a.VoteCount < 0 {
		return domain.Activity{}, domain.NewValidationError("voteCount", "must be >= 0")
	}

	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}

	s.log.DebugContext(ctx, "activity recorded",
		slog.Int64("activity_id", created.ID),
		slog.String("type", string(created.Type)),
	)
	return created, nil
}

// Update applies the set fields of patch to activity id.
func (s *Service) Update(ctx context.Context, id int64, patch domain.ActivityPatch) (domain.Activity, error) {
	var errs []domain.FieldError
	if id <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if v, ok := patch.Type.Get(); ok && !v.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("unknown activity type %q", v)})
	}
	if len(errs) > 0 {
		return domain.Activity{}, domain.NewValidationErrors(errs)
	}

	a, err := s.activities.Update(ctx, id, patch)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("update activity: %w", err)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}
