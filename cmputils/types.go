// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package cmputils

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/containers"
	"github.com/ava-labs/containers/queue"
	"github.com/ava-labs/containers/set"
)

// Queues returns a [cmp.Option] comparing [queue.Queue] pointers by their
// elements, front first, ignoring capacity and cursor positions.
func Queues[T any]() cmp.Option {
	return contents[*queue.Queue[T], queue.Queue[T], T]("queue.Queue")
}

// Rings returns the equivalent of [Queues] for [queue.Ring] pointers.
func Rings[T any]() cmp.Option {
	return contents[*queue.Ring[T], queue.Ring[T], T]("queue.Ring")
}

// LinearSets returns a [cmp.Option] comparing [set.Linear] pointers by their
// live elements, in insertion order. Duplicates and order are significant, as
// with [set.Linear.SetEquals].
func LinearSets[T containers.Equatable[T]]() cmp.Option {
	return contents[*set.Linear[T], set.Linear[T], T]("set.Linear")
}
