// Package review implements the Review repository on top of a record store.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

const defaultName = "Customer Review"

var fields = []string{"Name", "customerName", "rating", "comment", "createdAt", "project_id"}

var orderBy = []recordstore.OrderBy{{FieldName: "createdAt", SortType: recordstore.SortDesc}}

// Repo provides review persistence backed by a record store collection.
type Repo struct {
	coll *recordstore.Collection
	now  func() time.Time
}

// New creates a new review repository.
func New(client recordstore.Client, log *slog.Logger) *Repo {
	return &Repo{
		coll: recordstore.NewCollection(client, recordstore.CollectionReview, fields, orderBy, log.With("repo", "review")),
		now:  time.Now,
	}
}

// GetAll returns every review, newest first.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Review, error) {
	recs, err := r.coll.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]domain.Review, len(recs))
	for i, rec := range recs {
		out[i] = toDomain(rec)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	rec, err := r.coll.Get(ctx, id)
	if err != nil {
		return domain.Review{}, fmt.Errorf("get review: %w", err)
	}
	return toDomain(rec), nil
}

// Create stores a new review, stamping createdAt when missing.
func (r *Repo) Create(ctx context.Context, rv domain.Review) (domain.Review, error) {
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = r.now()
	}

	rec := toRecord(domain.ReviewPatch{
		CustomerName: domain.SetTo(rv.CustomerName),
		Rating:       domain.SetTo(rv.Rating),
		Comment:      domain.SetTo(rv.Comment),
		CreatedAt:    domain.SetTo(rv.CreatedAt),
		ProjectID:    domain.SetTo(rv.ProjectID),
	})
	rec["Name"] = rv.CustomerName
	if rv.CustomerName == "" {
		rec["Name"] = defaultName
	}

	saved, err := r.coll.Create(ctx, rec)
	if err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (domain.Review, error) {
	rec := toRecord(patch)
	rec[recordstore.IDField] = id

	saved, err := r.coll.Update(ctx, rec)
	if err != nil {
		return domain.Review{}, fmt.Errorf("update review: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func toDomain(rec recordstore.Record) domain.Review {
	return domain.Review{
		ID:           rec.ID(),
		CustomerName: rec.String("customerName"),
		Rating:       rec.Int("rating"),
		Comment:      rec.String("comment"),
		CreatedAt:    rec.Time("createdAt"),
		ProjectID:    rec.String("project_id"),
	}
}

func toRecord(p domain.ReviewPatch) recordstore.Record {
	rec := recordstore.Record{}
	if v, ok := p.CustomerName.Get(); ok {
		rec["customerName"] = v
	}
	if v, ok := p.Rating.Get(); ok {
		rec["rating"] = v
	}
	if v, ok := p.Comment.Get(); ok {
		rec["comment"] = v
	}
	if v, ok := p.CreatedAt.Get(); ok {
		rec.SetTime("createdAt", v)
	}
	if v, ok := p.ProjectID.Get(); ok {
		rec.SetRef("project_id", v)
	}
	return rec
}
