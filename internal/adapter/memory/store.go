package memory

import (
	"cmp"
	"context"
	"log/slog"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// Store groups the repositories of one in-memory data set.
type Store struct {
	Ideas      *IdeaRepo
	Reviews    *ReviewRepo
	Changelog  *ChangelogRepo
	Activities *ActivityRepo
	Projects   *ProjectRepo
}

// New creates repositories owning copies of the seed collections.
func New(seed Seed, log *slog.Logger, opts ...Option) *Store {
	o := buildOptions(opts)
	return &Store{
		Ideas:      newIdeaRepo(seed.Ideas, log, o),
		Reviews:    newReviewRepo(seed.Reviews, log, o),
		Changelog:  newChangelogRepo(seed.Changelog, log, o),
		Activities: newActivityRepo(seed.Activities, log, o),
		Projects:   newProjectRepo(seed.Projects, log, o),
	}
}

// NewSeeded creates a Store from the embedded mock data.
func NewSeeded(log *slog.Logger, opts ...Option) (*Store, error) {
	seed, err := LoadSeed()
	if err != nil {
		return nil, err
	}
	return New(seed, log, opts...), nil
}

// ---------------------------------------------------------------------------
// Ideas
// ---------------------------------------------------------------------------

// IdeaRepo stores ideas, newest first.
type IdeaRepo struct {
	c *collection[domain.Idea]
}

func newIdeaRepo(items []domain.Idea, log *slog.Logger, o options) *IdeaRepo {
	return &IdeaRepo{c: newCollection("idea", items, log, o,
		func(i domain.Idea) int64 { return i.ID },
		func(i *domain.Idea, id int64) { i.ID = id },
		func(i domain.Idea) domain.Idea { i.CreatedAt = domain.NormalizeTime(i.CreatedAt); return i },
		func(a, b domain.Idea) int { return newestFirst(a.CreatedAt, b.CreatedAt) },
	)}
}

func (r *IdeaRepo) GetAll(ctx context.Context) ([]domain.Idea, error) { return r.c.list(ctx) }

func (r *IdeaRepo) GetByID(ctx context.Context, id int64) (domain.Idea, error) {
	return r.c.get(ctx, id)
}

func (r *IdeaRepo) Create(ctx context.Context, idea domain.Idea) (domain.Idea, error) {
	return r.c.create(ctx, idea.WithDefaults(r.c.opts.now()))
}

func (r *IdeaRepo) Update(ctx context.Context, id int64, patch domain.IdeaPatch) (domain.Idea, error) {
	return r.c.update(ctx, id, patch.Apply)
}

func (r *IdeaRepo) Delete(ctx context.Context, id int64) error { return r.c.delete(ctx, id) }

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

// ReviewRepo stores reviews, newest first.
type ReviewRepo struct {
	c *collection[domain.Review]
}

func newReviewRepo(items []domain.Review, log *slog.Logger, o options) *ReviewRepo {
	return &ReviewRepo{c: newCollection("review", items, log, o,
		func(r domain.Review) int64 { return r.ID },
		func(r *domain.Review, id int64) { r.ID = id },
		func(r domain.Review) domain.Review { r.CreatedAt = domain.NormalizeTime(r.CreatedAt); return r },
		func(a, b domain.Review) int { return newestFirst(a.CreatedAt, b.CreatedAt) },
	)}
}

func (r *ReviewRepo) GetAll(ctx context.Context) ([]domain.Review, error) { return r.c.list(ctx) }

func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	return r.c.get(ctx, id)
}

func (r *ReviewRepo) Create(ctx context.Context, rv domain.Review) (domain.Review, error) {
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = r.c.opts.now()
	}
	return r.c.create(ctx, rv)
}

func (r *ReviewRepo) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (domain.Review, error) {
	return r.c.update(ctx, id, patch.Apply)
}

func (r *ReviewRepo) Delete(ctx context.Context, id int64) error { return r.c.delete(ctx, id) }

// ---------------------------------------------------------------------------
// Changelog
// ---------------------------------------------------------------------------

// ChangelogRepo stores release notes, latest publication first.
type ChangelogRepo struct {
	c *collection[domain.ChangelogEntry]
}

func newChangelogRepo(items []domain.ChangelogEntry, log *slog.Logger, o options) *ChangelogRepo {
	return &ChangelogRepo{c: newCollection("changelog", items, log, o,
		func(e domain.ChangelogEntry) int64 { return e.ID },
		func(e *domain.ChangelogEntry, id int64) { e.ID = id },
		func(e domain.ChangelogEntry) domain.ChangelogEntry {
			e.PublishedAt = domain.NormalizeTime(e.PublishedAt)
			return e
		},
		func(a, b domain.ChangelogEntry) int { return newestFirst(a.PublishedAt, b.PublishedAt) },
	)}
}

func (r *ChangelogRepo) GetAll(ctx context.Context) ([]domain.ChangelogEntry, error) {
	return r.c.list(ctx)
}

func (r *ChangelogRepo) GetByID(ctx context.Context, id int64) (domain.ChangelogEntry, error) {
	return r.c.get(ctx, id)
}

func (r *ChangelogRepo) Create(ctx context.Context, e domain.ChangelogEntry) (domain.ChangelogEntry, error) {
	return r.c.create(ctx, e.WithDefaults(r.c.opts.now()))
}

func (r *ChangelogRepo) Update(ctx context.Context, id int64, patch domain.ChangelogPatch) (domain.ChangelogEntry, error) {
	return r.c.update(ctx, id, patch.Apply)
}

func (r *ChangelogRepo) Delete(ctx context.Context, id int64) error { return r.c.delete(ctx, id) }

// ---------------------------------------------------------------------------
// Activities
// ---------------------------------------------------------------------------

// ActivityRepo stores the activity feed, newest first.
type ActivityRepo struct {
	c *collection[domain.Activity]
}

func newActivityRepo(items []domain.Activity, log *slog.Logger, o options) *ActivityRepo {
	return &ActivityRepo{c: newCollection("activity", items, log, o,
		func(a domain.Activity) int64 { return a.ID },
		func(a *domain.Activity, id int64) { a.ID = id },
		func(a domain.Activity) domain.Activity { a.CreatedAt = domain.NormalizeTime(a.CreatedAt); return a },
		func(a, b domain.Activity) int { return newestFirst(a.CreatedAt, b.CreatedAt) },
	)}
}

func (r *ActivityRepo) GetAll(ctx context.Context) ([]domain.Activity, error) { return r.c.list(ctx) }

func (r *ActivityRepo) GetByID(ctx context.Context, id int64) (domain.Activity, error) {
	return r.c.get(ctx, id)
}

func (r *ActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.c.opts.now()
	}
	return r.c.create(ctx, a)
}

func (r *ActivityRepo) Update(ctx context.Context, id int64, patch domain.ActivityPatch) (domain.Activity, error) {
	return r.c.update(ctx, id, patch.Apply)
}

func (r *ActivityRepo) Delete(ctx context.Context, id int64) error { return r.c.delete(ctx, id) }

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// ProjectRepo stores projects in Id order.
type ProjectRepo struct {
	c *collection[domain.Project]
}

func newProjectRepo(items []domain.Project, log *slog.Logger, o options) *ProjectRepo {
	return &ProjectRepo{c: newCollection("project", items, log, o,
		func(p domain.Project) int64 { return p.ID },
		func(p *domain.Project, id int64) { p.ID = id },
		func(p domain.Project) domain.Project { p.CreatedAt = domain.NormalizeTime(p.CreatedAt); return p },
		func(a, b domain.Project) int { return cmp.Compare(a.ID, b.ID) },
	)}
}

func (r *ProjectRepo) GetAll(ctx context.Context) ([]domain.Project, error) { return r.c.list(ctx) }

func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (domain.Project, error) {
	return r.c.get(ctx, id)
}

func (r *ProjectRepo) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.UserID == "" {
		p.UserID = domain.DefaultProjectOwner
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.c.opts.now()
	}
	return r.c.create(ctx, p)
}

func (r *ProjectRepo) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error) {
	return r.c.update(ctx, id, patch.Apply)
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error { return r.c.delete(ctx, id) }
