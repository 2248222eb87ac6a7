// Package activity implements the activity feed repository on top of a record store.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

const defaultName = "Activity"

var fields = []string{
	"Name", "type", "description", "ideaTitle", "ideaStatus",
	"newStatus", "voteCount", "version", "createdAt",
}

var orderBy = []recordstore.OrderBy{{FieldName: "createdAt", SortType: recordstore.SortDesc}}

// Repo provides activity persistence backed by a record store collection.
type Repo struct {
	coll *recordstore.Collection
	now  func() time.Time
}

// New creates a new activity repository.
func New(client recordstore.Client, log *slog.Logger) *Repo {
	return &Repo{
		coll: recordstore.NewCollection(client, recordstore.CollectionActivity, fields, orderBy, log.With("repo", "activity")),
		now:  time.Now,
	}
}

// GetAll returns the feed, newest first.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Activity, error) {
	recs, err := r.coll.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]domain.Activity, len(recs))
	for i, rec := range recs {
		out[i] = toDomain(rec)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Activity, error) {
	rec, err := r.coll.Get(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("get activity: %w", err)
	}
	return toDomain(rec), nil
}

func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.now()
	}

	rec := toRecord(domain.ActivityPatch{
		Type:        domain.SetTo(a.Type),
		Description: domain.SetTo(a.Description),
		IdeaTitle:   domain.SetTo(a.IdeaTitle),
		IdeaStatus:  domain.SetTo(a.IdeaStatus),
		NewStatus:   domain.SetTo(a.NewStatus),
		VoteCount:   domain.SetTo(a.VoteCount),
		Version:     domain.SetTo(a.Version),
		CreatedAt:   domain.SetTo(a.CreatedAt),
	})
	rec["Name"] = string(a.Type)
	if a.Type == "" {
		rec["Name"] = defaultName
	}

	saved, err := r.coll.Create(ctx, rec)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Update(ctx context.Context, id int64, patch domain.ActivityPatch) (domain.Activity, error) {
	rec := toRecord(patch)
	rec[recordstore.IDField] = id

	saved, err := r.coll.Update(ctx, rec)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("update activity: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func toDomain(rec recordstore.Record) domain.Activity {
	return domain.Activity{
		ID:          rec.ID(),
		Type:        domain.ActivityType(rec.String("type")),
		Description: rec.String("description"),
		IdeaTitle:   rec.String("ideaTitle"),
		IdeaStatus:  domain.IdeaStatus(rec.String("ideaStatus")),
		NewStatus:   domain.IdeaStatus(rec.String("newStatus")),
		VoteCount:   rec.Int("voteCount"),
		Version:     rec.String("version"),
		CreatedAt:   rec.Time("createdAt"),
	}
}

func toRecord(p domain.ActivityPatch) recordstore.Record {
	rec := recordstore.Record{}
	if v, ok := p.Type.Get(); ok {
		rec["type"] = string(v)
	}
	if v, ok := p.Description.Get(); ok {
		rec["description"] = v
	}
	if v, ok := p.IdeaTitle.Get(); ok {
		rec["ideaTitle"] = v
	}
	if v, ok := p.IdeaStatus.Get(); ok {
		rec["ideaStatus"] = string(v)
	}
	if v, ok := p.NewStatus.Get(); ok {
		rec["newStatus"] = string(v)
	}
	if v, ok := p.VoteCount.Get(); ok {
		rec["voteCount"] = v
	}
	if v, ok := p.Version.Get(); ok {
		rec["version"] = v
	}
	if v, ok := p.CreatedAt.Get(); ok {
		rec.SetTime("createdAt", v)
	}
	return rec
}
