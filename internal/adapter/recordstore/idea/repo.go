// Package idea implements the Idea repository on top of a record store.
package idea

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

const defaultName = "New Idea"

var fields = []string{
	"Name", "title", "description", "category", "status", "votes",
	"hasVoted", "commentCount", "createdAt", "user_id", "project_id",
}

var orderBy = []recordstore.OrderBy{{FieldName: "createdAt", SortType: recordstore.SortDesc}}

// Repo provides idea persistence backed by a record store collection.
type Repo struct {
	coll *recordstore.Collection
	now  func() time.Time
}

// New creates a new idea repository.
func New(client recordstore.Client, log *slog.Logger) *Repo {
	return &Repo{
		coll: recordstore.NewCollection(client, recordstore.CollectionIdea, fields, orderBy, log.With("repo", "idea")),
		now:  time.Now,
	}
}

// GetAll returns every idea, newest first.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Idea, error) {
	recs, err := r.coll.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	out := make([]domain.Idea, len(recs))
	for i, rec := range recs {
		out[i] = toDomain(rec)
	}
	return out, nil
}

// GetByID returns the idea with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Idea, error) {
	rec, err := r.coll.Get(ctx, id)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("get idea: %w", err)
	}
	return toDomain(rec), nil
}

// Create stores a new idea with creation defaults applied and returns it
// with the store-assigned Id.
func (r *Repo) Create(ctx context.Context, idea domain.Idea) (domain.Idea, error) {
	idea = idea.WithDefaults(r.now())

	rec := toRecord(domain.IdeaPatchFrom(idea))
	rec["Name"] = idea.Title
	if idea.Title == "" {
		rec["Name"] = defaultName
	}

	saved, err := r.coll.Create(ctx, rec)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("create idea: %w", err)
	}
	return toDomain(saved), nil
}

// Update writes the set fields of patch to idea id.
func (r *Repo) Update(ctx context.Context, id int64, patch domain.IdeaPatch) (domain.Idea, error) {
	rec := toRecord(patch)
	rec[recordstore.IDField] = id

	saved, err := r.coll.Update(ctx, rec)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("update idea: %w", err)
	}
	return toDomain(saved), nil
}

// Delete removes idea id.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	return nil
}

func toDomain(rec recordstore.Record) domain.Idea {
	return domain.Idea{
		ID:           rec.ID(),
		Title:        rec.String("title"),
		Description:  rec.String("description"),
		Category:     domain.IdeaCategory(rec.String("category")),
		Status:       domain.IdeaStatus(rec.String("status")),
		Votes:        rec.Int("votes"),
		HasVoted:     rec.Bool("hasVoted"),
		CommentCount: rec.Int("commentCount"),
		CreatedAt:    rec.Time("createdAt"),
		UserID:       rec.String("user_id"),
		ProjectID:    rec.String("project_id"),
	}
}

// toRecord carries only the set fields of p.
func toRecord(p domain.IdeaPatch) recordstore.Record {
	rec := recordstore.Record{}
	if v, ok := p.Title.Get(); ok {
		rec["title"] = v
	}
	if v, ok := p.Description.Get(); ok {
		rec["description"] = v
	}
	if v, ok := p.Category.Get(); ok {
		rec["category"] = string(v)
	}
	if v, ok := p.Status.Get(); ok {
		rec["status"] = string(v)
	}
	if v, ok := p.Votes.Get(); ok {
		rec["votes"] = v
	}
	if v, ok := p.HasVoted.Get(); ok {
		rec["hasVoted"] = v
	}
	if v, ok := p.CommentCount.Get(); ok {
		rec["commentCount"] = v
	}
	if v, ok := p.CreatedAt.Get(); ok {
		rec.SetTime("createdAt", v)
	}
	if v, ok := p.UserID.Get(); ok {
		rec.SetRef("user_id", v)
	}
	if v, ok := p.ProjectID.Get(); ok {
		rec.SetRef("project_id", v)
	}
	return rec
}
