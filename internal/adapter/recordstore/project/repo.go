// Package project implements the Project repository on top of a record store.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

var fields = []string{"Name", "logo", "primaryColor", "userId", "createdAt"}

var orderBy = []recordstore.OrderBy{{FieldName: recordstore.IDField, SortType: recordstore.SortAsc}}

// Repo provides project persistence backed by a record store collection.
type Repo struct {
	coll *recordstore.Collection
	now  func() time.Time
}

// New creates a new project repository.
func New(client recordstore.Client, log *slog.Logger) *Repo {
	return &Repo{
		coll: recordstore.NewCollection(client, recordstore.CollectionProject, fields, orderBy, log.With("repo", "project")),
		now:  time.Now,
	}
}

// GetAll returns every project in Id order.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Project, error) {
	recs, err := r.coll.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]domain.Project, len(recs))
	for i, rec := range recs {
		out[i] = toDomain(rec)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Project, error) {
	rec, err := r.coll.Get(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}
	return toDomain(rec), nil
}

// Create stores a new project owned by DefaultProjectOwner unless set.
func (r *Repo) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.UserID == "" {
		p.UserID = domain.DefaultProjectOwner
	}

	rec := toRecord(domain.ProjectPatch{
		Name:         domain.SetTo(p.Name),
		Logo:         domain.SetTo(p.Logo),
		PrimaryColor: domain.SetTo(p.PrimaryColor),
		UserID:       domain.SetTo(p.UserID),
	})
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	rec.SetTime("createdAt", createdAt)

	saved, err := r.coll.Create(ctx, rec)
	if err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error) {
	rec := toRecord(patch)
	rec[recordstore.IDField] = id

	saved, err := r.coll.Update(ctx, rec)
	if err != nil {
		return domain.Project{}, fmt.Errorf("update project: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func toDomain(rec recordstore.Record) domain.Project {
	return domain.Project{
		ID:           rec.ID(),
		Name:         rec.String("Name"),
		Logo:         rec.String("logo"),
		PrimaryColor: rec.String("primaryColor"),
		UserID:       rec.String("userId"),
		CreatedAt:    rec.Time("createdAt"),
	}
}

func toRecord(p domain.ProjectPatch) recordstore.Record {
	rec := recordstore.Record{}
	if v, ok := p.Name.Get(); ok {
		rec["Name"] = v
	}
	if v, ok := p.Logo.Get(); ok {
		rec["logo"] = v
	}
	if v, ok := p.PrimaryColor.Get(); ok {
		rec["primaryColor"] = v
	}
	if v, ok := p.UserID.Get(); ok {
		rec["userId"] = v
	}
	return rec
}
