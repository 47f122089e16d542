// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package set implements an array-backed, linear-scan collection with
// set-algebra views.
package set

import (
	"fmt"
	"iter"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/containers"
	"github.com/ava-labs/containers/intmath"
)

// A Linear set holds its elements contiguously, in insertion order, and finds
// them by linear scan using [containers.Equatable]. Membership is O(n).
//
// Despite the name, uniqueness is NOT enforced: [Linear.Add] stores
// duplicates, which makes a Linear an ordered multiset. Only the results of
// [Linear.Union], [Linear.Intersect] and [Linear.Except] are distinct.
type Linear[T containers.Equatable[T]] struct {
	buf []T // live elements are buf[:n]
	n   int
	log logging.Logger
}

func newLinear[T containers.Equatable[T]](capacity int, opts []containers.Option) *Linear[T] {
	return &Linear[T]{
		buf: make([]T, capacity),
		log: containers.NewConfig(opts...).Log,
	}
}

// Of returns a set holding `elems`, verbatim and in order. Called with no
// arguments it is equivalent to [NewDefault].
func Of[T containers.Equatable[T]](elems ...T) *Linear[T] {
	if len(elems) == 0 {
		return NewDefault[T]()
	}
	s := newLinear[T](len(elems), nil)
	copy(s.buf, elems)
	s.n = len(elems)
	return s
}

// FromSlice returns a set holding a copy of `elems`, verbatim and in order,
// with a capacity of exactly len(elems). A nil slice returns an error wrapping
// [containers.ErrNilInput]; an empty, non-nil one returns an empty set.
func FromSlice[T containers.Equatable[T]](elems []T, opts ...containers.Option) (*Linear[T], error) {
	if elems == nil {
		return nil, fmt.Errorf("set: %w: elements", containers.ErrNilInput)
	}
	s := newLinear[T](len(elems), opts)
	copy(s.buf, elems)
	s.n = len(elems)
	return s, nil
}

// New returns an empty set with the specified capacity.
func New[T containers.Equatable[T]](capacity int, opts ...containers.Option) (*Linear[T], error) {
	if err := containers.CheckCapacity(capacity); err != nil {
		return nil, fmt.Errorf("set: %w", err)
	}
	return newLinear[T](capacity, opts), nil
}

// NewDefault returns an empty set with [containers.DefaultCapacity].
func NewDefault[T containers.Equatable[T]](opts ...containers.Option) *Linear[T] {
	return newLinear[T](containers.DefaultCapacity, opts)
}

// FromSeq returns a set populated by passing every value yielded by `seq` to
// [Linear.Add].
func FromSeq[T containers.Equatable[T]](seq iter.Seq[T], opts ...containers.Option) (*Linear[T], error) {
	if seq == nil {
		return nil, fmt.Errorf("set: %w: source sequence", containers.ErrNilInput)
	}
	s := NewDefault[T](opts...)
	for x := range seq {
		s.Add(x)
	}
	return s, nil
}

// Len returns the number of stored elements, duplicates included.
func (s *Linear[T]) Len() int {
	return s.n
}

// Cap returns the length of the set's buffer.
func (s *Linear[T]) Cap() int {
	return len(s.buf)
}

// Add appends `x`, doubling the buffer if it is full. It does not check for an
// existing equal element.
func (s *Linear[T]) Add(x T) {
	if s.n >= len(s.buf) {
		s.grow()
	}
	s.buf[s.n] = x
	s.n++
}

func (s *Linear[T]) grow() {
	size, err := intmath.GrowCapacity(len(s.buf), len(s.buf))
	if err != nil {
		panic(fmt.Sprintf("set: growing buffer of %d elements: %v", len(s.buf), err))
	}
	s.log.Debug("Growing set buffer",
		zap.Int("from", len(s.buf)),
		zap.Int("to", size),
		zap.Int("len", s.n),
	)
	b := make([]T, size)
	copy(b, s.buf[:s.n])
	s.buf = b
}

// Remove removes the first element equal to `x`, shifting all later elements
// one position to the left. It reports whether such an element was found.
func (s *Linear[T]) Remove(x T) bool {
	i := containers.Index(s.buf[:s.n], x)
	if i == -1 {
		return false
	}
	copy(s.buf[i:], s.buf[i+1:s.n])
	var zero T
	s.buf[s.n-1] = zero
	s.n--
	return true
}

// Contains reports whether any element is equal to `x`.
func (s *Linear[T]) Contains(x T) bool {
	return containers.Index(s.buf[:s.n], x) != -1
}

// Clear zeroes the buffer, retaining its capacity.
func (s *Linear[T]) Clear() {
	s.log.Verbo("Clearing set", zap.Int("len", s.n), zap.Int("cap", len(s.buf)))
	clear(s.buf)
	s.n = 0
}

// Snapshot returns a copy of the live elements, in insertion order. The
// returned slice is never nil.
func (s *Linear[T]) Snapshot() []T {
	out := make([]T, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// All returns a sequence over the live elements. Each iteration ranges over a
// fresh [Linear.Snapshot] so it is unaffected by modifications made during
// iteration, e.g. by the loop body.
func (s *Linear[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.Snapshot() {
			if !yield(x) {
				return
			}
		}
	}
}

// CopyTo copies the live elements, in insertion order, into `dst` starting at
// `dst[start]`. See [containers.CheckCopyTo] for the errors returned.
func (s *Linear[T]) CopyTo(dst []T, start int) error {
	if err := containers.CheckCopyTo(dst, start, s.n); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	copy(dst[start:], s.buf[:s.n])
	return nil
}

// String returns the live elements formatted as a slice.
func (s *Linear[T]) String() string {
	return fmt.Sprint(s.buf[:s.n])
}
