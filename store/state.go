package store

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// State is a point-in-time snapshot of a store's collection.
type State[T any] struct {
	Items     []T
	IsLoading bool
	Err       string
}

// collection is the shared skeleton behind every resource store: a
// mutex-guarded snapshot of the last successful fetch, plus a
// single-flight group so concurrent fetch triggers collapse into one
// request instead of racing.
//
// Flights are keyed by a generation counter that mutations bump on
// commit. A reconcile fetch issued after a mutation therefore starts a
// fresh flight rather than joining one that began before the mutation,
// and a flight from an older generation can no longer write its stale
// result into items.
type collection[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	err     string
	gen     uint64
	group   singleflight.Group
}

// Snapshot returns a copy of the current state. The items slice is cloned
// so callers can range over it without holding the store's lock.
func (c *collection[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return State[T]{
		Items:     items,
		IsLoading: c.loading,
		Err:       c.err,
	}
}

// fetch runs load, replacing items on success and recording failMsg on
// failure. The loading flag is raised before load starts and dropped once
// it settles either way. Prior items survive a failed fetch; only a
// successful load replaces them. Results from a flight older than the
// current generation are discarded.
func (c *collection[T]) fetch(ctx context.Context, failMsg string, load func(context.Context) ([]T, error)) error {
	c.mu.Lock()
	c.loading = true
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		return load(ctx)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if gen != c.gen {
		// A mutation committed while this flight was in the air; its
		// reconcile fetch owns the state now.
		return err
	}
	if err != nil {
		c.err = failMsg
		return err
	}
	c.items = v.([]T)
	c.err = ""
	return nil
}

// invalidate marks all in-flight fetches stale. Mutations call it after
// the backend accepts the change, so the follow-up reconcile fetch never
// shares a flight with a pre-mutation fetch.
func (c *collection[T]) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
}

// fail records a mutation failure without touching items.
func (c *collection[T]) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = msg
}
