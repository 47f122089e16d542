// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/containers"
)

func TestIteratorState(t *testing.T) {
	q, err := FromSlice([]int{10, 20})
	require.NoError(t, err, "FromSlice()")
	_, err = q.Dequeue()
	require.NoError(t, err, "Dequeue()")
	q.Enqueue(30)

	it := q.Iter()
	_, err = it.Value()
	require.ErrorIs(t, err, containers.ErrIteratorState, "Value() before Next()")

	var got []int
	for it.Next() {
		x, err := it.Value()
		require.NoError(t, err, "Value() after Next() == true")
		got = append(got, x)
	}
	assert.Equal(t, []int{20, 30}, got, "iterated values")

	_, err = it.Value()
	require.ErrorIs(t, err, containers.ErrIteratorState, "Value() after exhaustion")
	assert.False(t, it.Next(), "Next() after exhaustion")

	it.Reset()
	_, err = it.Value()
	require.ErrorIs(t, err, containers.ErrIteratorState, "Value() after Reset()")
	require.True(t, it.Next(), "Next() after Reset()")
	x, err := it.Value()
	require.NoError(t, err, "Value()")
	assert.Equal(t, 20, x, "first Value() after Reset()")
}

func TestIteratorEmptyQueue(t *testing.T) {
	q := NewDefault[int]()
	it := q.Iter()
	assert.False(t, it.Next(), "Next() on empty queue")
	_, err := it.Value()
	assert.ErrorIs(t, err, containers.ErrIteratorState, "Value() on empty queue")
}

func TestIteratorIsLiveView(t *testing.T) {
	q := NewDefault[int]()
	q.Enqueue(0)

	// Enqueuing within capacity is observed by an in-flight iterator.
	var got []int
	for x := range q.All() {
		got = append(got, x)
		if x < 3 {
			q.Enqueue(x + 1)
		}
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, got); diff != "" {
		t.Errorf("All() with Enqueue() during iteration; diff (-want +got):\n%s", diff)
	}
	require.Equal(t, containers.DefaultCapacity, q.Cap(), "Cap() must not have grown for this test to be meaningful")
}

func TestAllIndependentPasses(t *testing.T) {
	q, err := FromSeq(slices.Values([]string{"a", "b", "c"}))
	require.NoError(t, err, "FromSeq()")

	seq := q.All()
	want := []string{"a", "b", "c"}
	for range 2 {
		if diff := cmp.Diff(want, slices.Collect(seq)); diff != "" {
			t.Errorf("slices.Collect(All()) diff (-want +got):\n%s", diff)
		}
	}

	for x := range seq {
		assert.Equal(t, "a", x, "first element")
		break
	}
	assert.Equal(t, 3, q.Len(), "Len() after early break from All()")
}
