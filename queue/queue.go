// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue implements array-backed FIFO queues.
//
// [Queue] keeps monotonically increasing head and tail cursors and only
// reclaims the space before the head when it reallocates. [Ring] reuses freed
// slots by indexing its buffer modulo the capacity. Both have the same
// FIFO-order and amortised O(1) guarantees.
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

// A Queue is a FIFO queue backed by a single buffer. Construct one with [New],
// [NewDefault], [FromSlice] or [FromSeq]; the zero value is not valid.
type Queue[T any] struct {
	buf  []T // len(buf) MUST == cap(buf) and is the queue's capacity
	head int // 0 <= head <= tail <= len(buf)
	tail int // next enqueue target
	n    int // n == tail-head
	log  logging.Logger
}

func newQueue[T any](capacity int, opts []containers.Option) *Queue[T] {
	return &Queue[T]{
		buf: make([]T, capacity),
		log: containers.NewConfig(opts...).Log,
	}
}

// New returns an empty queue with the specified capacity.
func New[T any](capacity int, opts ...containers.Option) (*Queue[T], error) {
	if err := containers.CheckCapacity(capacity); err != nil {
		return nil, fmt.Errorf("queue: %w", err)
	}
	return newQueue[T](capacity, opts), nil
}

// NewDefault returns an empty queue with [containers.DefaultCapacity].
func NewDefault[T any](opts ...containers.Option) *Queue[T] {
	return newQueue[T](containers.DefaultCapacity, opts)
}

// FromSlice returns a queue holding a copy of `src`, with `src[0]` at the
// front. The queue's capacity is `len(src)`. A nil `src` is rejected but an
// empty, non-nil one is not.
func FromSlice[T any](src []T, opts ...containers.Option) (*Queue[T], error) {
	if src == nil {
		return nil, fmt.Errorf("queue: %w: source slice", containers.ErrNilInput)
	}
	q := newQueue[T](len(src), opts)
	copy(q.buf, src)
	q.tail = len(src)
	q.n = len(src)
	return q, nil
}

// FromSeq returns a queue populated by enqueuing every value yielded by `seq`,
// in order.
func FromSeq[T any](seq iter.Seq[T], opts ...containers.Option) (*Queue[T], error) {
	if seq == nil {
		return nil, fmt.Errorf("queue: %w: source sequence", containers.ErrNilInput)
	}
	q := NewDefault[T](opts...)
	for x := range seq {
		q.Enqueue(x)
	}
	return q, nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.n
}

// Cap returns the length of the queue's buffer. Slots before the head are
// included even though they can't be used until the next reallocation.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

// IsEmpty reports whether [Queue.Len] is zero.
func (q *Queue[T]) IsEmpty() bool {
	return q.n == 0
}

// Enqueue appends `x` to the back of the queue, reallocating if the tail has
// reached the end of the buffer.
func (q *Queue[T]) Enqueue(x T) {
	if q.tail == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = x
	q.tail++
	q.n++
}

// grow moves the live elements to the front of a new buffer of length
// `max(2*n, cap, 1)`. If dequeues have freed enough of the front, this is a
// same-size compaction.
func (q *Queue[T]) grow() {
	size, err := intmath.GrowCapacity(q.n, len(q.buf))
	if err != nil {
		panic(fmt.Sprintf("queue: growing buffer for %d elements: %v", q.n, err))
	}
	msg := "Growing queue buffer"
	if size == len(q.buf) {
		msg = "Compacting queue buffer"
	}
	q.log.Debug(msg,
		zap.Int("from", len(q.buf)),
		zap.Int("to", size),
		zap.Int("len", q.n),
		zap.Int("head", q.head),
	)

	b := make([]T, size)
	copy(b, q.buf[q.head:q.tail])
	q.buf = b
	q.head = 0
	q.tail = q.n
}

// Dequeue removes and returns the element at the front of the queue. It
// returns an error wrapping [containers.ErrEmpty] if there is none.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.n == 0 {
		return zero, fmt.Errorf("queue: dequeue: %w", containers.ErrEmpty)
	}
	x := q.buf[q.head]
	q.buf[q.head] = zero
	q.head++
	q.n--
	return x, nil
}

// Peek returns the element at the front of the queue without removing it. It
// returns an error wrapping [containers.ErrEmpty] if there is none.
func (q *Queue[T]) Peek() (T, error) {
	if q.n == 0 {
		var zero T
		return zero, fmt.Errorf("queue: peek: %w", containers.ErrEmpty)
	}
	return q.buf[q.head], nil
}

// Clear zeroes the entire buffer and resets the cursors. The capacity is
// retained.
func (q *Queue[T]) Clear() {
	q.log.Verbo("Clearing queue", zap.Int("len", q.n), zap.Int("cap", len(q.buf)))
	clear(q.buf)
	q.head = 0
	q.tail = 0
	q.n = 0
}

// CopyTo copies all elements, front first, into `dst` starting at
// `dst[start]`. See [containers.CheckCopyTo] for the errors returned.
func (q *Queue[T]) CopyTo(dst []T, start int) error {
	if err := containers.CheckCopyTo(dst, start, q.n); err != nil {
		return fmt.Errorf("queue: %w", err)
	}
	copy(dst[start:], q.buf[q.head:q.tail])
	return nil
}

// All returns a live view of the queue, front first. Every call to the
// returned [iter.Seq] starts a new, independent pass with [Queue.Iter].
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := q.Iter(); it.Next(); {
			if !yield(it.q.buf[it.i]) {
				return
			}
		}
	}
}

// String returns the elements in iteration order, formatted as a slice.
func (q *Queue[T]) String() string {
	return fmt.Sprint(slices.Collect(q.All()))
}
