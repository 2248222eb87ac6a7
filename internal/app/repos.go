package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/memory"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/postgres"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore/activity"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore/changelog"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore/httpstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore/idea"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore/project"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore/review"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/config"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type IdeaRepo interface {
	GetAll(ctx context.Context) ([]domain.Idea, error)
	GetByID(ctx context.Context, id int64) (domain.Idea, error)
	Create(ctx context.Context, i domain.Idea) (domain.Idea, error)
	Update(ctx context.Context, id int64, patch domain.IdeaPatch) (domain.Idea, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewRepo interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
	GetByID(ctx context.Context, id int64) (domain.Review, error)
	Create(ctx context.Context, r domain.Review) (domain.Review, error)
	Update(ctx context.Context, id int64, patch domain.ReviewPatch) (domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

type ChangelogRepo interface {
	GetAll(ctx context.Context) ([]domain.ChangelogEntry, error)
	GetByID(ctx context.Context, id int64) (domain.ChangelogEntry, error)
	Create(ctx context.Context, e domain.ChangelogEntry) (domain.ChangelogEntry, error)
	Update(ctx context.Context, id int64, patch domain.ChangelogPatch) (domain.ChangelogEntry, error)
	Delete(ctx context.Context, id int64) error
}

type ActivityRepo interface {
	GetAll(ctx context.Context) ([]domain.Activity, error)
	GetByID(ctx context.Context, id int64) (domain.Activity, error)
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, id int64, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

type ProjectRepo interface {
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	Update(ctx context.Context, id int64, patch domain.ProjectPatch) (domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Repos is the set of entity repositories of one backend.
type Repos struct {
	Backend    string
	Ideas      IdeaRepo
	Reviews    ReviewRepo
	Changelog  ChangelogRepo
	Activities ActivityRepo
	Projects   ProjectRepo

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks that the backend answers.
func (r *Repos) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// Close releases backend connections.
func (r *Repos) Close() {
	if r.close != nil {
		r.close()
	}
}

// OpenRepos builds the repositories of the configured backend. The mock
// backend is seeded from the embedded data; postgres migrates first when
// auto_migrate is on.
func OpenRepos(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Repos, error) {
	switch cfg.Store.Backend {
	case config.BackendMock:
		store, err := memory.NewSeeded(log, memory.WithLatency(cfg.Store.MockLatency))
		if err != nil {
			return nil, fmt.Errorf("seed mock store: %w", err)
		}
		return &Repos{
			Backend:    config.BackendMock,
			Ideas:      store.Ideas,
			Reviews:    store.Reviews,
			Changelog:  store.Changelog,
			Activities: store.Activities,
			Projects:   store.Projects,
		}, nil

	case config.BackendRemote:
		repos := recordStoreRepos(httpstore.New(cfg.RecordStore, nil), log)
		repos.Backend = config.BackendRemote
		repos.ping = func(ctx context.Context) error {
			_, err := repos.Projects.GetAll(ctx)
			return err
		}
		return repos, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, err
			}
		}
		store := postgres.NewStore(pool, log)
		repos := recordStoreRepos(store, log)
		repos.Backend = config.BackendPostgres
		repos.ping = store.Ping
		repos.close = pool.Close
		return repos, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func recordStoreRepos(client recordstore.Client, log *slog.Logger) *Repos {
	return &Repos{
		Ideas:      idea.New(client, log),
		Reviews:    review.New(client, log),
		Changelog:  changelog.New(client, log),
		Activities: activity.New(client, log),
		Projects:   project.New(client, log),
	}
}
