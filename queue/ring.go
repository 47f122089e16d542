// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/containers"
	"github.com/ava-labs/containers/intmath"
)

// A Ring is a FIFO queue that indexes its buffer modulo its capacity, so slots
// freed by [Ring.Dequeue] are reused without reallocation. The zero value is
// an empty ring with no capacity, ready for use.
type Ring[T any] struct {
	ring  []T // len(ring) MUST == cap(ring)
	start int // 0 <= start < len(ring)
	n     int // 0 <= n <= len(ring)
	log   logging.Logger
}

// NewRing returns an empty ring with the specified capacity.
func NewRing[T any](capacity int, opts ...containers.Option) (*Ring[T], error) {
	if err := containers.CheckCapacity(capacity); err != nil {
		return nil, fmt.Errorf("queue: ring: %w", err)
	}
	return &Ring[T]{
		ring: make([]T, capacity),
		log:  containers.NewConfig(opts...).Log,
	}, nil
}

func (r *Ring[T]) logger() logging.Logger {
	if r.log == nil {
		return logging.NoLog{}
	}
	return r.log
}

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.ring)
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int {
	return r.n
}

// IsEmpty reports whether [Ring.Len] is zero.
func (r *Ring[T]) IsEmpty() bool {
	return r.n == 0
}

func (r *Ring[T]) ringIndex(i int) int {
	return (r.start + i) % len(r.ring)
}

// Enqueue appends `x` to the back of the ring. If the ring is full, its
// capacity is doubled, or set to 1 if there is no current capacity.
func (r *Ring[T]) Enqueue(x T) {
	if r.n == len(r.ring) {
		size, err := intmath.GrowCapacity(len(r.ring), len(r.ring))
		if err != nil {
			panic(fmt.Sprintf("queue: growing ring of %d elements: %v", r.n, err))
		}
		r.Grow(size)
	}
	r.ring[r.ringIndex(r.n)] = x
	r.n++
}

// Grow increases the ring's capacity to `n`, if necessary. It is O(r.Cap()).
func (r *Ring[T]) Grow(n int) {
	if n <= len(r.ring) {
		return
	}
	r.logger().Debug("Growing queue ring",
		zap.Int("from", len(r.ring)),
		zap.Int("to", n),
		zap.Int("len", r.n),
	)

	b := make([]T, n)
	copy(b, r.ring[r.start:])
	copy(b[len(r.ring)-r.start:], r.ring[:r.start])
	r.ring = b
	r.start = 0
}

// Peek returns the first element without removing it. It returns an error
// wrapping [containers.ErrEmpty] if there is none.
func (r *Ring[T]) Peek() (T, error) {
	if r.n == 0 {
		var zero T
		return zero, fmt.Errorf("queue: ring: peek: %w", containers.ErrEmpty)
	}
	return r.ring[r.start], nil
}

// Dequeue removes and returns the first element. It returns an error wrapping
// [containers.ErrEmpty] if there is none.
func (r *Ring[T]) Dequeue() (T, error) {
	var zero T
	if r.n == 0 {
		return zero, fmt.Errorf("queue: ring: dequeue: %w", containers.ErrEmpty)
	}
	x := r.ring[r.start]
	r.ring[r.start] = zero
	r.start = (r.start + 1) % len(r.ring)
	r.n--
	return x, nil
}

// Clear zeroes the ring, retaining its capacity.
func (r *Ring[T]) Clear() {
	r.logger().Verbo("Clearing queue ring", zap.Int("len", r.n), zap.Int("cap", len(r.ring)))
	clear(r.ring)
	r.start = 0
	r.n = 0
}

// CopyTo copies all elements, front first, into `dst` starting at
// `dst[start]`. See [containers.CheckCopyTo] for the errors returned.
func (r *Ring[T]) CopyTo(dst []T, start int) error {
	if err := containers.CheckCopyTo(dst, start, r.n); err != nil {
		return fmt.Errorf("queue: ring: %w", err)
	}
	for i := range r.n {
		dst[start+i] = r.ring[r.ringIndex(i)]
	}
	return nil
}

// All returns a live view of the ring, front first. As with [Iterator], the
// length is re-read before every element.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(r.ring[r.ringIndex(i)]) {
				return
			}
		}
	}
}

// String returns the elements in iteration order, formatted as a slice.
func (r *Ring[T]) String() string {
	return fmt.Sprint(slices.Collect(r.All()))
}
