// Package dashboard computes the overview metrics.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

const (
	// RecentWindow bounds the "new ideas" metric.
	RecentWindow = 7 * 24 * time.Hour
	// FeedSize is the number of activities shown.
	FeedSize = 10
)

type ideaLister interface {
	GetAll(ctx context.Context) ([]domain.Idea, error)
}

type activityLister interface {
	GetAll(ctx context.Context) ([]domain.Activity, error)
}

// Metrics is the dashboard payload.
type Metrics struct {
	TotalIdeas     int
	NewIdeas       int
	TotalVotes     int
	CompletedIdeas int
	ByStatus       map[domain.IdeaStatus]int
	Activities     []domain.Activity
}

type Service struct {
	ideas      ideaLister
	activities activityLister
	log        *slog.Logger
	now        func() time.Time
}

func NewService(log *slog.Logger, ideas ideaLister, activities activityLister) *Service {
	return &Service{
		ideas:      ideas,
		activities: activities,
		log:        log.With("service", "dashboard"),
		now:        time.Now,
	}
}

// Metrics fetches ideas and activities concurrently and summarizes them.
// Either fetch failing fails the whole call.
func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	var (
		ideas []domain.Idea
		acts  []domain.Activity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ideas, err = s.ideas.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("list ideas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		acts, err = s.activities.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("list activities: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "dashboard fetch failed", slog.String("error", err.Error()))
		return Metrics{}, fmt.Errorf("dashboard: %w", err)
	}

	return Summarize(ideas, acts, s.now()), nil
}

// Summarize computes metrics relative to now. acts is expected newest first.
func Summarize(ideas []domain.Idea, acts []domain.Activity, now time.Time) Metrics {
	m := Metrics{
		TotalIdeas: len(ideas),
		ByStatus:   make(map[domain.IdeaStatus]int, len(domain.IdeaStatuses)),
	}
	for _, st := range domain.IdeaStatuses {
		m.ByStatus[st] = 0
	}

	cutoff := now.Add(-RecentWindow)
	for _, idea := range ideas {
		m.TotalVotes += idea.Votes
		m.ByStatus[idea.Status]++
		if idea.Status == domain.IdeaStatusCompleted {
			m.CompletedIdeas++
		}
		if idea.CreatedAt.After(cutoff) {
			m.NewIdeas++
		}
	}

	n := min(len(acts), FeedSize)
	m.Activities = make([]domain.Activity, n)
	copy(m.Activities, acts[:n])
	return m
}
