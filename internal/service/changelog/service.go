// Package changelog manages published release notes.
package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type changelogRepo interface {
	GetAll(ctx context.Context) ([]domain.ChangelogEntry, error)
	GetByID(ctx context.Context, id int64) (domain.ChangelogEntry, error)
	Create(ctx context.Context, e domain.ChangelogEntry) (domain.ChangelogEntry, error)
	Update(ctx context.Context, id int64, patch domain.ChangelogPatch) (domain.ChangelogEntry, error)
	Delete(ctx context.Context, id int64) error
}

type activityRecorder interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
}

// Service provides changelog operations. Publishing an entry also posts a
// changelog_published activity when a recorder is configured.
type Service struct {
	entries  changelogRepo
	activity activityRecorder
	log      *slog.Logger
}

// NewService creates a new changelog service. activity may be nil.
func NewService(log *slog.Logger, entries changelogRepo, activity activityRecorder) *Service {
	return &Service{
		entries:  entries,
		activity: activity,
		log:      log.With("service", "changelog"),
	}
}

// List returns all entries, latest publication first.
func (s *Service) List(ctx context.Context) ([]domain.ChangelogEntry, error) {
	entries, err := s.entries.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list changelog: %w", err)
	}
	return entries, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.ChangelogEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return domain.ChangelogEntry{}, fmt.Errorf("get changelog entry: %w", err)
	}
	return e, nil
}

// Publish stores a new entry. Version and publish time default when empty.
func (s *Service) Publish(ctx context.Context, input CreateInput) (domain.ChangelogEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.ChangelogEntry{}, err
	}

	e, err := s.entries.Create(ctx, domain.ChangelogEntry{
		Version:     strings.TrimSpace(input.Version),
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		PublishedAt: input.PublishedAt,
		ProjectID:   input.ProjectID,
	})
	if err != nil {
		return domain.ChangelogEntry{}, fmt.Errorf("publish changelog entry: %w", err)
	}

	s.log.InfoContext(ctx, "changelog entry published",
		slog.Int64("entry_id", e.ID),
		slog.String("version", e.Version),
	)

	if s.activity != nil {
		_, err := s.activity.Create(ctx, domain.Activity{
			Type:        domain.ActivityChangelogPublished,
			Description: "Release published",
			Version:     e.Version,
		})
		if err != nil {
			s.log.WarnContext(ctx, "record activity failed", slog.String("error", err.Error()))
		}
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.ChangelogEntry, error) {
	if err := input.Validate(); err != nil {
		return domain.ChangelogEntry{}, err
	}

	e, err := s.entries.Update(ctx, input.ID, input.Patch)
	if err != nil {
		return domain.ChangelogEntry{}, fmt.Errorf("update changelog entry: %w", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete changelog entry: %w", err)
	}

	s.log.InfoContext(ctx, "changelog entry deleted", slog.Int64("entry_id", id))
	return nil
}

// CreateInput holds the parameters for publishing an entry.
type CreateInput struct {
	Version     string
	Title       string
	Content     string
	PublishedAt time.Time
	ProjectID   string
}

// Validate requires a title.
func (i CreateInput) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return domain.NewValidationError("title", "required")
	}
	return nil
}

// UpdateInput holds a partial update of one entry.
type UpdateInput struct {
	ID    int64
	Patch domain.ChangelogPatch
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
	if v, ok := i.Patch.Version.Get(); ok && strings.TrimSpace(v) == "" {
		errs = append(errs, domain.FieldError{Field: "version", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
