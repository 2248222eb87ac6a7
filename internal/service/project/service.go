// Package project manages the workspaces feedback is filed under.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type projectRepo interface {
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	Update(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides project operations.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}

// List returns all projects ordered by Id.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	ps, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return ps, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// CreateInput holds the parameters for creating a project.
type CreateInput struct {
	Name         string
	Logo         string
	PrimaryColor string
	UserID       string
}

func (i CreateInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Project, error) {
	if err := in.Validate(); err != nil {
		return domain.Project{}, err
	}

	p, err := s.projects.Create(ctx, domain.Project{
		Name:         strings.TrimSpace(in.Name),
		Logo:         in.Logo,
		PrimaryColor: in.PrimaryColor,
		UserID:       in.UserID,
	})
	if err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created", slog.Int64("project_id", p.ID), slog.String("name", p.Name))
	return p, nil
}

// UpdateInput holds a partial update of one project.
type UpdateInput struct {
	ID    int64
	Patch domain.ProjectPatch
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
	if v, ok := i.Patch.Name.Get(); ok && strings.TrimSpace(v) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (domain.Project, error) {
	if err := in.Validate(); err != nil {
		return domain.Project{}, err
	}
	p, err := s.projects.Update(ctx, in.ID, in.Patch)
	if err != nil {
		return domain.Project{}, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.log.InfoContext(ctx, "project deleted", slog.Int64("project_id", id))
	return nil
}
