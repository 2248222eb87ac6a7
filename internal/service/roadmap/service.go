// Package roadmap groups ideas into status columns.
package roadmap

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type ideaRepo interface {
	GetAll(ctx context.Context) ([]domain.Idea, error)
	GetByID(ctx context.Context, id int64) (domain.Idea, error)
	Update(ctx context.Context, id int64, patch domain.IdeaPatch) (domain.Idea, error)
}

type activityRecorder interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
}

// Column is one roadmap lane.
type Column struct {
	Status domain.IdeaStatus
	Ideas  []domain.Idea
	Count  int
}

type Service struct {
	ideas    ideaRepo
	activity activityRecorder
	log      *slog.Logger
}

func NewService(log *slog.Logger, ideas ideaRepo, activity activityRecorder) *Service {
	return &Service{
		ideas:    ideas,
		activity: activity,
		log:      log.With("service", "roadmap"),
	}
}

// Columns returns one column per status in roadmap order. Empty columns are
// kept so the layout never shifts.
func (s *Service) Columns(ctx context.Context) ([]Column, error) {
	ideas, err := s.ideas.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("roadmap columns: %w", err)
	}
	return Group(ideas), nil
}

// Group buckets ideas by status, newest first within a column. Ideas with a
// status outside the roadmap are left out.
func Group(ideas []domain.Idea) []Column {
	cols := make([]Column, len(domain.IdeaStatuses))
	pos := make(map[domain.IdeaStatus]int, len(cols))
	for i, st := range domain.IdeaStatuses {
		cols[i] = Column{Status: st, Ideas: []domain.Idea{}}
		pos[st] = i
	}

	for _, idea := range ideas {
		i, ok := pos[idea.Status]
		if !ok {
			continue
		}
		cols[i].Ideas = append(cols[i].Ideas, idea)
	}

	for i := range cols {
		slices.SortStableFunc(cols[i].Ideas, func(a, b domain.Idea) int {
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		cols[i].Count = len(cols[i].Ideas)
	}
	return cols
}

// Move puts idea id into the column for status. Any status may follow any
// other.
func (s *Service) Move(ctx context.Context, id int64, status domain.IdeaStatus) (domain.Idea, error) {
	if !status.IsValid() {
		return domain.Idea{}, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	before, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("move idea: %w", err)
	}
	if before.Status == status {
		return before, nil
	}

	moved, err := s.ideas.Update(ctx, id, domain.IdeaPatch{Status: domain.SetTo(status)})
	if err != nil {
		return domain.Idea{}, fmt.Errorf("move idea: %w", err)
	}

	s.log.InfoContext(ctx, "idea moved",
		slog.Int64("idea_id", id),
		slog.String("from", string(before.Status)),
		slog.String("to", string(status)),
	)

	if _, err := s.activity.Create(ctx, domain.Activity{
		Type:       domain.ActivityStatusChanged,
		IdeaTitle:  moved.Title,
		IdeaStatus: before.Status,
		NewStatus:  moved.Status,
	}); err != nil {
		s.log.WarnContext(ctx, "record activity failed", slog.Int64("idea_id", id), slog.String("error", err.Error()))
	}
	return moved, nil
}
