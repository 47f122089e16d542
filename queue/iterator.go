// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"fmt"

	"github.com/ava-labs/containers"
)

// An Iterator walks a [Queue] from front to back.
//
// Iterators are live views, not snapshots. The tail is re-read on every call
// to [Iterator.Next] so elements enqueued during iteration are visited. Any
// reallocation of the queue (see [Queue.Enqueue]) moves elements to new
// indices, after which the iterator MAY skip or repeat elements. Callers that
// need isolation SHOULD copy out with [Queue.CopyTo] first.
type Iterator[T any] struct {
	q     *Queue[T]
	start int // the queue's head at construction or last Reset
	i     int // start-1 before the first Next
}

// Iter returns a new [Iterator], positioned before the queue's current front.
func (q *Queue[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{q: q}
	it.Reset()
	return it
}

// Next advances the iterator and reports whether it is positioned on an
// element.
func (it *Iterator[T]) Next() bool {
	if it.i < it.q.tail {
		it.i++
	}
	return it.i < it.q.tail
}

// Value returns the element at the iterator's position. It returns an error
// wrapping [containers.ErrIteratorState] before the first call to
// [Iterator.Next] and after Next has returned false.
func (it *Iterator[T]) Value() (T, error) {
	if it.i < it.start || it.i >= it.q.tail {
		var zero T
		return zero, fmt.Errorf("queue: iterator index %d outside [%d,%d): %w", it.i, it.start, it.q.tail, containers.ErrIteratorState)
	}
	return it.q.buf[it.i], nil
}

// Reset repositions the iterator before the queue's current front.
func (it *Iterator[T]) Reset() {
	it.start = it.q.head
	it.i = it.start - 1
}
