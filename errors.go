// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package containers

import "errors"

// Errors returned by collection constructors and operations. They signal
// contract violations by the caller and are never retried internally. Returned
// errors wrap one of these and MUST be matched with [errors.Is].
var (
	// ErrNilInput is returned when a required slice, sequence or collection is
	// nil.
	ErrNilInput = errors.New("nil input")
	// ErrNegativeCapacity is returned when a constructor is asked for a
	// capacity < 0.
	ErrNegativeCapacity = errors.New("negative capacity")
	// ErrEmpty is returned when reading from a collection with no live
	// elements.
	ErrEmpty = errors.New("collection is empty")
	// ErrIteratorState is returned when an iterator's value is read before the
	// first advance or after exhaustion.
	ErrIteratorState = errors.New("iterator not positioned on an element")
	// ErrIndexOutOfRange is returned when a copy-out start index is outside
	// of the destination.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInsufficientCapacity is returned when a copy-out destination is too
	// short to hold every live element.
	ErrInsufficientCapacity = errors.New("insufficient capacity")
)
