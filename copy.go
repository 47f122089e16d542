// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package containers

import "fmt"

// CheckCopyTo validates a bulk copy of `n` elements into `dst`, starting at
// `dst[start]`. It returns an error wrapping [ErrNilInput],
// [ErrIndexOutOfRange] or [ErrInsufficientCapacity], in that order of
// precedence.
//
// Note that `start` MUST be in `[0, len(dst))` even if `n == 0`, so an empty
// destination is always rejected.
func CheckCopyTo[T any](dst []T, start, n int) error {
	switch {
	case dst == nil:
		return fmt.Errorf("%w: copy destination", ErrNilInput)
	case start < 0 || start >= len(dst):
		return fmt.Errorf("%w: start %d with destination length %d", ErrIndexOutOfRange, start, len(dst))
	case len(dst)-start < n:
		return fmt.Errorf("%w: %d elements from index %d of destination length %d", ErrInsufficientCapacity, n, start, len(dst))
	}
	return nil
}

// CheckCapacity returns an error wrapping [ErrNegativeCapacity] if `c < 0`.
func CheckCapacity(c int) error {
	if c < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, c)
	}
	return nil
}
