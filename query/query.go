// Package query re-evaluates an async fetch whenever its key changes and
// makes sure only the latest issued fetch can set the result.
package query

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by Call.Do when a newer Issue or a Reset happened
// while the call was in flight. The result was discarded.
var ErrSuperseded = errors.New("query superseded")

// Fetcher loads the value for a key.
type Fetcher[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Query holds the value of the most recently issued key.
type Query[K comparable, V any] struct {
	fetch Fetcher[K, V]

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	key     K
	issued  bool
	pending bool
	value   V
	err     error
}

// New creates a Query backed by fetch.
func New[K comparable, V any](fetch Fetcher[K, V]) *Query[K, V] {
	return &Query[K, V]{fetch: fetch}
}

// Call is one issued fetch.
type Call[K comparable, V any] struct {
	q   *Query[K, V]
	gen uint64
	key K
	ctx context.Context
}

// Issue starts a new generation for key and cancels the previous in-flight
// call. The fetch itself runs in Do.
func (q *Query[K, V]) Issue(ctx context.Context, key K) *Call[K, V] {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cancel != nil {
		q.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	q.gen++
	q.cancel = cancel
	q.key = key
	q.issued = true
	q.pending = true

	return &Call[K, V]{q: q, gen: q.gen, key: key, ctx: ctx}
}

// Reset cancels any in-flight call and clears the value without fetching.
func (q *Query[K, V]) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cancel != nil {
		q.cancel()
		q.cancel = nil
	}
	var zeroK K
	var zeroV V
	q.gen++
	q.key = zeroK
	q.issued = false
	q.pending = false
	q.value = zeroV
	q.err = nil
}

// Key returns the key of the latest Issue, and false after a Reset or before
// any Issue.
func (q *Query[K, V]) Key() (K, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.key, q.issued
}

// Pending reports whether the latest issued call has not completed.
func (q *Query[K, V]) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}

// Value returns the committed value and error.
func (q *Query[K, V]) Value() (V, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.value, q.err
}

// Key is the key the call was issued for.
func (c *Call[K, V]) Key() K {
	return c.key
}

// Do runs the fetch and commits the result if the call is still current.
// A superseded call returns ErrSuperseded and leaves the query untouched.
func (c *Call[K, V]) Do() (V, error) {
	v, err := c.q.fetch(c.ctx, c.key)

	q := c.q
	q.mu.Lock()
	defer q.mu.Unlock()

	if c.gen != q.gen {
		var zero V
		return zero, ErrSuperseded
	}
	q.cancel()
	q.cancel = nil
	q.pending = false
	q.value = v
	q.err = err
	return v, err
}
