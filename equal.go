// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package containers

// An Equatable type defines value equality with other values of the same type.
// Implementations MUST be reflexive and symmetric.
type Equatable[T any] interface {
	Equal(T) bool
}

// Index returns the index of the first element of `xs` that is equal to `x`,
// or -1 if there is none.
func Index[T Equatable[T]](xs []T, x T) int {
	for i, y := range xs {
		if y.Equal(x) {
			return i
		}
	}
	return -1
}
