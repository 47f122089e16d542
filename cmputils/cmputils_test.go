// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package cmputils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/containers/containerstest"
	"github.com/ava-labs/containers/queue"
	"github.com/ava-labs/containers/set"
)

func TestQueues(t *testing.T) {
	a, err := queue.FromSlice([]int{0, 1, 2, 3})
	require.NoError(t, err, "queue.FromSlice()")
	_, err = a.Dequeue()
	require.NoError(t, err, "Dequeue()")

	b, err := queue.New[int](16)
	require.NoError(t, err, "queue.New()")
	for i := 1; i <= 3; i++ {
		b.Enqueue(i)
	}

	if diff := cmp.Diff(a, b, Queues[int]()); diff != "" {
		t.Errorf("cmp.Diff(%v, %v, Queues()) = %s; want empty", a, b, diff)
	}
	b.Enqueue(4)
	if cmp.Equal(a, b, Queues[int]()) {
		t.Errorf("cmp.Equal(%v, %v, Queues()) = true; want false", a, b)
	}

	var nilQ *queue.Queue[int]
	if !cmp.Equal(nilQ, nilQ, Queues[int]()) {
		t.Error("cmp.Equal(nil, nil, Queues()) = false; want true")
	}
}

func TestRings(t *testing.T) {
	var a, b queue.Ring[string]
	a.Enqueue("x")
	a.Enqueue("y")
	b.Grow(8)
	b.Enqueue("x")
	b.Enqueue("y")

	if diff := cmp.Diff(&a, &b, Rings[string]()); diff != "" {
		t.Errorf("cmp.Diff(%v, %v, Rings()) = %s; want empty", &a, &b, diff)
	}
}

func TestLinearSets(t *testing.T) {
	type holder struct {
		S *set.Linear[containerstest.Int]
	}
	a := set.Of(containerstest.Ints(1, 2)...)
	b := set.NewDefault[containerstest.Int]()
	b.Add(1)
	b.Add(2)

	opt := IfIn[holder](LinearSets[containerstest.Int]())
	if diff := cmp.Diff(holder{a}, holder{b}, opt); diff != "" {
		t.Errorf("cmp.Diff(holder{%v}, holder{%v}) = %s; want empty", a, b, diff)
	}

	b.Remove(1)
	b.Add(1)
	if cmp.Equal(holder{a}, holder{b}, opt) {
		t.Errorf("cmp.Equal(holder{%v}, holder{%v}) = true; want false as order differs", a, b)
	}
}
