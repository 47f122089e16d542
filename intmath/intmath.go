// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
package intmath

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned if a return value would have overflowed its type.
var ErrOverflow = errors.New("overflow")

// AddOverflow returns `a+b` and a boolean indicating whether the sum wrapped
// around the range of `T`. It is valid for both signed and unsigned types.
func AddOverflow[T constraints.Integer](a, b T) (T, bool) {
	s := a + b
	// A positive addend can only wrap downwards and a negative one only
	// upwards. For unsigned types the second clause is always false.
	return s, (b > 0 && s < a) || (b < 0 && s > a)
}

// Double returns `2*x`, or [ErrOverflow] if that is not representable in `T`.
func Double[T constraints.Integer](x T) (T, error) {
	d, overflow := AddOverflow(x, x)
	if overflow {
		return 0, ErrOverflow
	}
	return d, nil
}

// GrowCapacity returns the buffer length to allocate when a collection of
// current buffer length `cur` must grow based on `base` elements. It is
// `max(2*base, cur, 1)`, i.e. it never shrinks and never returns zero.
func GrowCapacity(base, cur int) (int, error) {
	d, err := Double(base)
	if err != nil {
		return 0, err
	}
	return max(d, cur, 1), nil
}
