package console

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Exclusive serializes writers to a console. Synchronous callers use
// Lock/Unlock and wait as long as it takes. Cooperative callers use Acquire,
// which gives up when their context is done and hands back a leased context;
// presenting a leased context again re-enters without blocking, so nested
// calls on the same logical call stack do not deadlock.
type Exclusive struct {
	sem *semaphore.Weighted
}

type leaseKey struct{ owner *Exclusive }

// lease stays attached to its context after release, so it records whether
// it still grants entry
type lease struct {
	active atomic.Bool
}

// NewExclusive returns an unheld primitive
func NewExclusive() *Exclusive {
	return &Exclusive{sem: semaphore.NewWeighted(1)}
}

// Lock blocks until the primitive is free
func (e *Exclusive) Lock() {
	// Acquire with a background context only fails on a weight larger than
	// the semaphore, which cannot happen here.
	_ = e.sem.Acquire(context.Background(), 1)
}

// Unlock releases a Lock
func (e *Exclusive) Unlock() {
	e.sem.Release(1)
}

// TryLock takes the primitive if it is free
func (e *Exclusive) TryLock() bool {
	return e.sem.TryAcquire(1)
}

// Held reports whether ctx carries a lease on e
func (e *Exclusive) Held(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	l, _ := ctx.Value(leaseKey{owner: e}).(*lease)
	return l != nil && l.active.Load()
}

// Acquire waits for the primitive or for ctx to be done. The returned
// context carries the lease and release must be called at least once; extra
// calls are ignored. When ctx already holds a live lease, Acquire returns it
// unchanged with a no-op release. A released lease grants nothing, so a
// context kept past release goes through the normal wait again.
func (e *Exclusive) Acquire(ctx context.Context) (context.Context, func(), error) {
	if e.Held(ctx) {
		return ctx, func() {}, nil
	}
	if err := ctx.Err(); err != nil {
		return ctx, func() {}, err
	}
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return ctx, func() {}, err
	}
	l := &lease{}
	l.active.Store(true)
	var once sync.Once
	release := func() {
		once.Do(func() {
			l.active.Store(false)
			e.sem.Release(1)
		})
	}
	return context.WithValue(ctx, leaseKey{owner: e}, l), release, nil
}
