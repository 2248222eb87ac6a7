package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// Load replaces the collection with a fresh fetch. When loads overlap, only
// the most recently requested one is applied; an outrun load returns nil and
// leaves the state to the newer one. A failed load keeps the previous ideas
// and moves the board to LoadStateFailed with a *domain.LoadError.
//
// Changes the store confirmed after the fetch began are laid over the
// fetched ideas.
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	b.loadSeq++
	seq := b.loadSeq
	startMut := b.mutSeq
	b.state = LoadStateLoading
	b.mu.Unlock()

	ideas, err := b.ideas.GetAll(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.loadSeq {
		b.log.DebugContext(ctx, "discarding outrun load",
			slog.Uint64("seq", seq),
			slog.Uint64("latest", b.loadSeq),
		)
		return nil
	}

	if err != nil {
		loadErr := &domain.LoadError{Err: err}
		b.state = LoadStateFailed
		b.loadErr = loadErr
		b.log.WarnContext(ctx, "load ideas failed", slog.String("error", err.Error()))
		return fmt.Errorf("load ideas: %w", loadErr)
	}

	for id, c := range b.confirmed {
		if c.seq <= startMut {
			delete(b.confirmed, id)
			continue
		}
		if i := slices.IndexFunc(ideas, func(x domain.Idea) bool { return x.ID == id }); i >= 0 {
			ideas[i] = c.idea
		}
	}

	b.source = ideas
	b.gen++
	b.state = LoadStateReady
	b.loadErr = nil
	return nil
}
