// Package seeder copies the embedded demo data into a record store.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/memory"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// AllPhases is the canonical execution order. Projects go first so ideas
// can refer to them.
var AllPhases = []string{"projects", "ideas", "reviews", "changelog", "activities"}

// Repo is the slice of a repository the seeder writes through.
type Repo[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, v T) (T, error)
}

// Targets are the repositories to seed.
type Targets struct {
	Projects   Repo[domain.Project]
	Ideas      Repo[domain.Idea]
	Reviews    Repo[domain.Review]
	Changelog  Repo[domain.ChangelogEntry]
	Activities Repo[domain.Activity]
}

// Config controls a run.
type Config struct {
	// DryRun counts what would be written without writing.
	DryRun bool
	// Force seeds collections that already hold records.
	Force bool
}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds one collection per phase.
type Pipeline struct {
	log     *slog.Logger
	targets Targets
	data    memory.Seed
	cfg     Config
	results map[string]PhaseResult
}

func NewPipeline(log *slog.Logger, targets Targets, data memory.Seed, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		targets: targets,
		data:    data,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors reports whether any phase failed or lost records.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the phases in canonical order. A non-empty phases list
// restricts the run; unknown names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	for _, ph := range phases {
		if !slices.Contains(AllPhases, ph) {
			return fmt.Errorf("unknown phase %q", ph)
		}
	}

	for _, phase := range AllPhases {
		if len(phases) > 0 && !slices.Contains(phases, phase) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		var result PhaseResult
		switch phase {
		case "projects":
			result = runPhase(ctx, p, p.targets.Projects, p.data.Projects, func(v domain.Project) domain.Project { v.ID = 0; return v })
		case "ideas":
			result = runPhase(ctx, p, p.targets.Ideas, p.data.Ideas, func(v domain.Idea) domain.Idea { v.ID = 0; return v })
		case "reviews":
			result = runPhase(ctx, p, p.targets.Reviews, p.data.Reviews, func(v domain.Review) domain.Review { v.ID = 0; return v })
		case "changelog":
			result = runPhase(ctx, p, p.targets.Changelog, p.data.Changelog, func(v domain.ChangelogEntry) domain.ChangelogEntry { v.ID = 0; return v })
		case "activities":
			result = runPhase(ctx, p, p.targets.Activities, p.data.Activities, func(v domain.Activity) domain.Activity { v.ID = 0; return v })
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}
	return nil
}

// runPhase creates every item through repo. A collection that already has
// records is skipped unless Force is set; individual failures are counted
// and the phase carries on.
func runPhase[T any](ctx context.Context, p *Pipeline, repo Repo[T], items []T, fresh func(T) T) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(items)}
	}

	existing, err := repo.GetAll(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("check existing records: %w", err)}
	}
	if len(existing) > 0 && !p.cfg.Force {
		p.log.Info("collection not empty, skipping", slog.Int("existing", len(existing)))
		return PhaseResult{Skipped: len(items)}
	}

	var result PhaseResult
	for i, item := range items {
		if _, err := repo.Create(ctx, fresh(item)); err != nil {
			p.log.Warn("create record failed", slog.Int("index", i), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Inserted++
	}
	return result
}
