// Package changelog implements the changelog repository on top of a record store.
package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

const defaultName = "New Release"

var fields = []string{"Name", "version", "title", "content", "publishedAt", "project_id"}

var orderBy = []recordstore.OrderBy{{FieldName: "publishedAt", SortType: recordstore.SortDesc}}

// Repo provides changelog persistence backed by a record store collection.
type Repo struct {
	coll *recordstore.Collection
	now  func() time.Time
}

// New creates a new changelog repository.
func New(client recordstore.Client, log *slog.Logger) *Repo {
	return &Repo{
		coll: recordstore.NewCollection(client, recordstore.CollectionChangelog, fields, orderBy, log.With("repo", "changelog")),
		now:  time.Now,
	}
}

// GetAll returns every entry, latest publication first.
func (r *Repo) GetAll(ctx context.Context) ([]domain.ChangelogEntry, error) {
	recs, err := r.coll.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("list changelog: %w", err)
	}

	out := make([]domain.ChangelogEntry, len(recs))
	for i, rec := range recs {
		out[i] = toDomain(rec)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.ChangelogEntry, error) {
	rec, err := r.coll.Get(ctx, id)
	if err != nil {
		return domain.ChangelogEntry{}, fmt.Errorf("get changelog entry: %w", err)
	}
	return toDomain(rec), nil
}

// Create stores a new entry; version and publishedAt default when empty.
func (r *Repo) Create(ctx context.Context, e domain.ChangelogEntry) (domain.ChangelogEntry, error) {
	e = e.WithDefaults(r.now())

	rec := toRecord(domain.ChangelogPatch{
		Version:     domain.SetTo(e.Version),
		Title:       domain.SetTo(e.Title),
		Content:     domain.SetTo(e.Content),
		PublishedAt: domain.SetTo(e.PublishedAt),
		ProjectID:   domain.SetTo(e.ProjectID),
	})
	rec["Name"] = e.Title
	if e.Title == "" {
		rec["Name"] = defaultName
	}

	saved, err := r.coll.Create(ctx, rec)
	if err != nil {
		return domain.ChangelogEntry{}, fmt.Errorf("create changelog entry: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Update(ctx context.Context, id int64, patch domain.ChangelogPatch) (domain.ChangelogEntry, error) {
	rec := toRecord(patch)
	rec[recordstore.IDField] = id

	saved, err := r.coll.Update(ctx, rec)
	if err != nil {
		return domain.ChangelogEntry{}, fmt.Errorf("update changelog entry: %w", err)
	}
	return toDomain(saved), nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	if err := r.coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete changelog entry: %w", err)
	}
	return nil
}

func toDomain(rec recordstore.Record) domain.ChangelogEntry {
	return domain.ChangelogEntry{
		ID:          rec.ID(),
		Version:     rec.String("version"),
		Title:       rec.String("title"),
		Content:     rec.String("content"),
		PublishedAt: rec.Time("publishedAt"),
		ProjectID:   rec.String("project_id"),
	}
}

func toRecord(p domain.ChangelogPatch) recordstore.Record {
	rec := recordstore.Record{}
	if v, ok := p.Version.Get(); ok {
		rec["version"] = v
	}
	if v, ok := p.Title.Get(); ok {
		rec["title"] = v
	}
	if v, ok := p.Content.Get(); ok {
		rec["content"] = v
	}
	if v, ok := p.PublishedAt.Get(); ok {
		rec.SetTime("publishedAt", v)
	}
	if v, ok := p.ProjectID.Get(); ok {
		rec.SetRef("project_id", v)
	}
	return rec
}
