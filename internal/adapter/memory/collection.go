// Package memory implements every repository in process memory, seeded from
// embedded mock data. It backs the mock store mode used for local development
// and tests; contents are lost on restart.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// Option configures the repositories of a Store.
type Option func(*options)

type options struct {
	latency time.Duration
	now     func() time.Time
}

// WithLatency delays every call by d, imitating a network hop.
// A cancelled context interrupts the wait.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = d }
}

// WithClock overrides the time source for creation defaults.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// collection owns the items of one entity type.
type collection[T any] struct {
	name    string
	log     *slog.Logger
	opts    options
	idOf    func(T) int64
	setID   func(*T, int64)
	norm    func(T) T
	compare func(a, b T) int

	mu     sync.RWMutex
	items  []T
	lastID int64 // highest Id ever held; deleted Ids are not handed out again
}

func newCollection[T any](
	name string,
	items []T,
	log *slog.Logger,
	opts options,
	idOf func(T) int64,
	setID func(*T, int64),
	norm func(T) T,
	compare func(a, b T) int,
) *collection[T] {
	var lastID int64
	for _, it := range items {
		lastID = max(lastID, idOf(it))
	}
	return &collection[T]{
		name:    name,
		log:     log.With("repo", name),
		opts:    opts,
		idOf:    idOf,
		setID:   setID,
		norm:    norm,
		compare: compare,
		items:   slices.Clone(items),
		lastID:  lastID,
	}
}

func (c *collection[T]) wait(ctx context.Context) error {
	if c.opts.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.opts.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// list returns normalized copies in collection order, ties broken by Id.
func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.norm(it)
	}
	c.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b T) int {
		if n := c.compare(a, b); n != 0 {
			return n
		}
		return cmp.Compare(c.idOf(a), c.idOf(b))
	})
	return out, nil
}

func (c *collection[T]) get(ctx context.Context, id int64) (T, error) {
	var zero T
	if err := c.wait(ctx); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, c.notFound(ctx, id)
	}
	return c.norm(c.items[i]), nil
}

// create assigns the next Id: max(existing) + 1, or 1 when empty, and never
// an Id that was deleted before.
func (c *collection[T]) create(ctx context.Context, v T) (T, error) {
	var zero T
	if err := c.wait(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	c.setID(&v, c.lastID)
	c.items = append(c.items, v)
	return c.norm(v), nil
}

func (c *collection[T]) update(ctx context.Context, id int64, apply func(T) T) (T, error) {
	var zero T
	if err := c.wait(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, c.notFound(ctx, id)
	}
	c.items[i] = apply(c.items[i])
	return c.norm(c.items[i]), nil
}

func (c *collection[T]) delete(ctx context.Context, id int64) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return c.notFound(ctx, id)
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

func (c *collection[T]) indexOf(id int64) int {
	return slices.IndexFunc(c.items, func(it T) bool { return c.idOf(it) == id })
}

func (c *collection[T]) notFound(ctx context.Context, id int64) error {
	c.log.DebugContext(ctx, "record not found", slog.Int64("id", id))
	return fmt.Errorf("%s %d: %w", c.name, id, domain.ErrNotFound)
}

func newestFirst(a, b time.Time) int { return b.Compare(a) }
