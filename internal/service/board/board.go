// Package board is the idea list view-model: it owns the loaded ideas of one
// viewer and derives the searched, filtered and sorted projection shown to
// them. Vote and status changes are applied optimistically and rolled back
// when the repository rejects them.
package board

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type ideaRepo interface {
	GetAll(ctx context.Context) ([]domain.Idea, error)
	Create(ctx context.Context, idea domain.Idea) (domain.Idea, error)
	Update(ctx context.Context, id int64, patch domain.IdeaPatch) (domain.Idea, error)
}

type activityRecorder interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
}

// LoadState is the lifecycle of the idea collection.
type LoadState string

const (
	LoadStateIdle    LoadState = "idle"
	LoadStateLoading LoadState = "loading"
	LoadStateReady   LoadState = "ready"
	LoadStateFailed  LoadState = "failed"
)

// EmptyState tells an empty board apart from an over-filtered one.
type EmptyState string

const (
	EmptyNone      EmptyState = "none"
	EmptyNoIdeas   EmptyState = "no-ideas"
	EmptyNoMatches EmptyState = "no-matches"
)

// Board is one viewer's idea list. It is safe for concurrent use.
type Board struct {
	ideas    ideaRepo
	activity activityRecorder
	log      *slog.Logger
	locks    *keyedLock

	mu      sync.Mutex
	source  []domain.Idea
	term    string
	filters Filters
	state   LoadState
	loadErr error
	loadSeq uint64 // latest requested load
	gen     uint64 // bumped each time a load replaces source

	// confirmed holds ideas the store acknowledged, keyed by Id, so a load
	// that fetched before the acknowledgement cannot revert them.
	confirmed map[int64]confirmedIdea
	mutSeq    uint64
}

type confirmedIdea struct {
	seq  uint64
	idea domain.Idea
}

// New creates an idle Board. activity may be nil.
func New(log *slog.Logger, ideas ideaRepo, activity activityRecorder) *Board {
	return &Board{
		ideas:    ideas,
		activity: activity,
		log:      log.With("service", "board"),
		locks:    newKeyedLock(),
		filters:  DefaultFilters(),
		state:    LoadStateIdle,

		confirmed: make(map[int64]confirmedIdea),
	}
}

// SetSearchTerm replaces the search term. An empty term matches everything.
func (b *Board) SetSearchTerm(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.term = term
}

// SetFilters replaces status, category and sort after validating them.
func (b *Board) SetFilters(f Filters) error {
	if err := f.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters = f.normalized()
	return nil
}

// ClearFilters resets filters and search term.
func (b *Board) ClearFilters() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters = DefaultFilters()
	b.term = ""
}

// Projection returns the current display sequence.
func (b *Board) Projection() []domain.Idea {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Project(b.source, b.term, b.filters)
}

// Ideas returns a copy of the source-of-truth collection in load order.
func (b *Board) Ideas() []domain.Idea {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.source)
}

// EmptyState reports why the projection is empty, if it is.
func (b *Board) EmptyState() EmptyState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return emptyState(b.source, Project(b.source, b.term, b.filters))
}

func emptyState(source, projection []domain.Idea) EmptyState {
	switch {
	case len(source) == 0:
		return EmptyNoIdeas
	case len(projection) == 0:
		return EmptyNoMatches
	default:
		return EmptyNone
	}
}

// Snapshot is a consistent view of the board at one instant.
type Snapshot struct {
	Ideas      []domain.Idea
	Total      int
	SearchTerm string
	Filters    Filters
	State      LoadState
	LoadErr    error
	Empty      EmptyState
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	proj := Project(b.source, b.term, b.filters)
	return Snapshot{
		Ideas:      proj,
		Total:      len(b.source),
		SearchTerm: b.term,
		Filters:    b.filters,
		State:      b.state,
		LoadErr:    b.loadErr,
		Empty:      emptyState(b.source, proj),
	}
}

// indexOf must be called with b.mu held.
func (b *Board) indexOf(id int64) int {
	return slices.IndexFunc(b.source, func(i domain.Idea) bool { return i.ID == id })
}
