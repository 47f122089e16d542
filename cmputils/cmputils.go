// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

// Package cmputils provides [cmp] options for comparing collections by their
// contents, and utilities for creating such options.
package cmputils

import (
	"iter"
	"reflect"
	"slices"

	"github.com/google/go-cmp/cmp"
)

// IfIn returns a filtered equivalent of `opt` such that it is only evaluated if
// the [cmp.Path] includes at least one `T`. This is typically used for struct
// fields (and sub-fields).
func IfIn[T any](opt cmp.Option) cmp.Option {
	return cmp.FilterPath(pathIncludes[T], opt)
}

func pathIncludes[T any](p cmp.Path) bool {
	t := reflect.TypeFor[T]()
	for _, step := range p {
		if step.Type() == t {
			return true
		}
	}
	return false
}

// contents returns a [cmp.Transformer] that replaces a collection pointer with
// a slice of its elements in iteration order. A nil pointer is transformed to
// a nil slice.
func contents[C interface {
	*E
	All() iter.Seq[T]
}, E, T any](name string) cmp.Option {
	return cmp.Transformer(name, func(c C) []T {
		if c == nil {
			return nil
		}
		return slices.Collect(c.All())
	})
}
