// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package containers holds the contract shared by the array-backed
// collections in [github.com/ava-labs/containers/queue] and
// [github.com/ava-labs/containers/set]: the error taxonomy, the [Equatable]
// capability, bulk copy-out validation and constructor options.
//
// None of the collections are safe for concurrent use.
package containers

// DefaultCapacity is the initial buffer length used by constructors that are
// not given an explicit capacity.
const DefaultCapacity = 4
