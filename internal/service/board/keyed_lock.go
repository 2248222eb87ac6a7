package board

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// keyedLock serializes work per idea Id. Entries live only while someone
// holds or waits for them.
type keyedLock struct {
	mu    sync.Mutex
	locks map[int64]*idLock
}

type idLock struct {
	sem  *semaphore.Weighted
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[int64]*idLock)}
}

// lock blocks until id is free or ctx is done.
func (k *keyedLock) lock(ctx context.Context, id int64) (unlock func(), err error) {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &idLock{sem: semaphore.NewWeighted(1)}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	if err := l.sem.Acquire(ctx, 1); err != nil {
		k.release(id, l)
		return nil, err
	}

	return func() {
		l.sem.Release(1)
		k.release(id, l)
	}, nil
}

func (k *keyedLock) release(id int64, l *idLock) {
	k.mu.Lock()
	defer k.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(k.locks, id)
	}
}

func (k *keyedLock) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
