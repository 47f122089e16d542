// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"fmt"
	"iter"

	"github.com/ava-labs/containers"
)

// The set-algebra methods all operate on a [Linear.Snapshot] of the receiver,
// taken when the method is called, and on `other` exactly as it is yielded. To
// use another [Linear] as the operand, pass its [Linear.All] method, which
// yields a snapshot of its own.
//
// Sequences returned by Union, Intersect and Except are lazy: `other` is only
// consumed while ranging over them, and is consumed afresh on every range.
// Their elements are distinct under [containers.Equatable], the first
// occurrence of every value being the one yielded.

func nilOperand(op string) error {
	return fmt.Errorf("set: %s: %w: other", op, containers.ErrNilInput)
}

// distinct returns a function that reports, for every value passed to it,
// whether it is the first value of its equivalence class.
func distinct[T containers.Equatable[T]]() func(T) bool {
	seen := NewDefault[T]()
	return func(x T) bool {
		if seen.Contains(x) {
			return false
		}
		seen.Add(x)
		return true
	}
}

// collect materialises `seq` as a new [Linear], without logging.
func collect[T containers.Equatable[T]](seq iter.Seq[T]) *Linear[T] {
	s := NewDefault[T]()
	for x := range seq {
		s.Add(x)
	}
	return s
}

// Union returns the distinct elements of the receiver followed by the distinct
// elements of `other` that aren't already in the receiver.
func (s *Linear[T]) Union(other iter.Seq[T]) (iter.Seq[T], error) {
	if other == nil {
		return nil, nilOperand("union")
	}
	left := s.Snapshot()
	return func(yield func(T) bool) {
		first := distinct[T]()
		for _, x := range left {
			if first(x) && !yield(x) {
				return
			}
		}
		for x := range other {
			if first(x) && !yield(x) {
				return
			}
		}
	}, nil
}

// Intersect returns the distinct elements of the receiver that are also in
// `other`, in the receiver's order.
func (s *Linear[T]) Intersect(other iter.Seq[T]) (iter.Seq[T], error) {
	if other == nil {
		return nil, nilOperand("intersect")
	}
	left := s.Snapshot()
	return func(yield func(T) bool) {
		right := collect(other)
		first := distinct[T]()
		for _, x := range left {
			if right.Contains(x) && first(x) && !yield(x) {
				return
			}
		}
	}, nil
}

// Except returns the distinct elements of the receiver that are not in
// `other`, in the receiver's order.
func (s *Linear[T]) Except(other iter.Seq[T]) (iter.Seq[T], error) {
	if other == nil {
		return nil, nilOperand("except")
	}
	left := s.Snapshot()
	return func(yield func(T) bool) {
		// Yielded values are excluded too, so they can't repeat.
		excluded := collect(other)
		for _, x := range left {
			if excluded.Contains(x) {
				continue
			}
			excluded.Add(x)
			if !yield(x) {
				return
			}
		}
	}, nil
}

// Overlaps reports whether any element yielded by `other` is in the receiver.
// It stops consuming `other` at the first match.
func (s *Linear[T]) Overlaps(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, nilOperand("overlaps")
	}
	left := s.Snapshot()
	for x := range other {
		if containers.Index(left, x) != -1 {
			return true, nil
		}
	}
	return false, nil
}

// SetEquals reports whether `other` yields exactly the receiver's elements, in
// the same order. It is a sequence comparison, NOT mathematical set equality:
// `{1,2}` and `{2,1}` are not equal, nor are `{1}` and `{1,1}`.
func (s *Linear[T]) SetEquals(other iter.Seq[T]) (bool, error) {
	if other == nil {
		return false, nilOperand("set equals")
	}
	left := s.Snapshot()
	i := 0
	for x := range other {
		if i >= len(left) || !left[i].Equal(x) {
			return false, nil
		}
		i++
	}
	return i == len(left), nil
}
