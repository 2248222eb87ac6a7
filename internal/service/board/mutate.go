package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type mutationState int

const (
	mutationPending mutationState = iota
	mutationConfirmed
	mutationRolledBack
	mutationSuperseded
)

func (s mutationState) String() string {
	switch s {
	case mutationPending:
		return "pending"
	case mutationConfirmed:
		return "confirmed"
	case mutationRolledBack:
		return "rolled_back"
	case mutationSuperseded:
		return "superseded"
	}
	return "unknown"
}

// mutation is one optimistic change of a single idea.
type mutation struct {
	op    string
	prev  domain.Idea
	next  domain.Idea
	gen   uint64
	state mutationState
}

// ToggleVote flips the viewer's vote on idea id and persists the full record.
// Calling it twice restores the original votes and hasVoted.
func (b *Board) ToggleVote(ctx context.Context, id int64) (domain.Idea, error) {
	return b.mutate(ctx, "toggle vote", id, func(i domain.Idea) domain.Idea {
		return i.WithVoteToggled()
	})
}

// ChangeStatus moves idea id to status. Any status may follow any other.
func (b *Board) ChangeStatus(ctx context.Context, id int64, status domain.IdeaStatus) (domain.Idea, error) {
	if !status.IsValid() {
		return domain.Idea{}, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	saved, err := b.mutate(ctx, "change status", id, func(i domain.Idea) domain.Idea {
		i.Status = status
		return i
	})
	if err != nil {
		return domain.Idea{}, err
	}

	b.record(ctx, domain.Activity{
		Type:        domain.ActivityStatusChanged,
		Description: "Status updated",
		IdeaTitle:   saved.Title,
		IdeaStatus:  saved.Status,
		NewStatus:   status,
	})
	return saved, nil
}

// mutate applies change to the local idea at once, then persists it while
// holding the idea's lock. On failure the previous value is restored unless
// a newer load or change has replaced the idea in the meantime.
func (b *Board) mutate(ctx context.Context, op string, id int64, change func(domain.Idea) domain.Idea) (domain.Idea, error) {
	unlock, err := b.locks.lock(ctx, id)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("%s: %w", op, err)
	}
	defer unlock()

	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return domain.Idea{}, fmt.Errorf("%s: idea %d: %w", op, id, domain.ErrNotFound)
	}
	m := &mutation{op: op, prev: b.source[i], gen: b.gen}
	m.next = change(m.prev)
	b.source[i] = m.next
	b.mu.Unlock()

	saved, err := b.ideas.Update(ctx, id, domain.IdeaPatchFrom(m.next))
	if err != nil {
		b.settle(ctx, m, nil)
		return domain.Idea{}, fmt.Errorf("%s: %w", op, err)
	}

	b.settle(ctx, m, &saved)
	return saved, nil
}

// settle writes the outcome of m back. A confirmed record always replaces the
// local idea, since the store now holds it. A failure restores the previous
// value unless a load has replaced the collection in the meantime.
func (b *Board) settle(ctx context.Context, m *mutation, saved *domain.Idea) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(m.next.ID)
	switch {
	case saved != nil:
		b.mutSeq++
		b.confirmed[saved.ID] = confirmedIdea{seq: b.mutSeq, idea: *saved}
		if i >= 0 {
			b.source[i] = *saved
		}
		m.state = mutationConfirmed
	case m.gen != b.gen || i < 0 || b.source[i] != m.next:
		m.state = mutationSuperseded
	default:
		b.source[i] = m.prev
		m.state = mutationRolledBack
	}

	level := slog.LevelDebug
	if m.state == mutationRolledBack {
		level = slog.LevelWarn
	}
	b.log.Log(ctx, level, "mutation settled",
		slog.String("op", m.op),
		slog.Int64("idea_id", m.next.ID),
		slog.String("state", m.state.String()),
	)
}

// record appends to the activity feed. Failures are logged, not returned:
// the idea change itself already succeeded.
func (b *Board) record(ctx context.Context, a domain.Activity) {
	if b.activity == nil {
		return
	}
	if _, err := b.activity.Create(ctx, a); err != nil {
		b.log.WarnContext(ctx, "record activity failed",
			slog.String("type", string(a.Type)),
			slog.String("error", err.Error()),
		)
	}
}
