// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fibonacci provides bounded, lazily evaluated Fibonacci sequences.
package fibonacci

import (
	"iter"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/containers/intmath"
)

// Sequence returns the Fibonacci sequence `0, 1, 1, 2, 3, 5, ...` over `T`.
// It yields every value representable by `T` and then stops, without error,
// instead of wrapping around.
func Sequence[T constraints.Integer]() iter.Seq[T] {
	return func(yield func(T) bool) {
		var last, prev T = 0, 1
		for {
			if !yield(last) {
				return
			}
			next, overflow := intmath.AddOverflow(last, prev)
			if overflow {
				return
			}
			prev, last = last, next
		}
	}
}

// Nth returns the n-th (0-based) element of [Sequence], and false if `T` can't
// represent it or `n` is negative.
func Nth[T constraints.Integer](n int) (T, bool) {
	if n < 0 {
		return 0, false
	}
	i := 0
	for x := range Sequence[T]() {
		if i == n {
			return x, true
		}
		i++
	}
	return 0, false
}

// Sequence256 is equivalent to [Sequence] over 256-bit unsigned integers.
// Every yielded value is a new [uint256.Int] owned by the caller.
func Sequence256() iter.Seq[*uint256.Int] {
	return func(yield func(*uint256.Int) bool) {
		last, prev := uint256.NewInt(0), uint256.NewInt(1)
		for {
			if !yield(last.Clone()) {
				return
			}
			next, overflow := new(uint256.Int).AddOverflow(last, prev)
			if overflow {
				return
			}
			prev, last = last, next
		}
	}
}
