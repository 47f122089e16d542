// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package containerstest

import "github.com/ava-labs/containers"

var (
	_ containers.Equatable[Int]  = Int(0)
	_ containers.Equatable[Name] = Name("")
)

// Int is an integer satisfying [containers.Equatable].
type Int int

// Equal returns `i == j`.
func (i Int) Equal(j Int) bool { return i == j }

// Ints converts its arguments to [Int]s.
func Ints(xs ...int) []Int {
	out := make([]Int, len(xs))
	for i, x := range xs {
		out[i] = Int(x)
	}
	return out
}

// Name is a string satisfying [containers.Equatable] by case-sensitive
// comparison.
type Name string

// Equal returns `n == m`.
func (n Name) Equal(m Name) bool { return n == m }
