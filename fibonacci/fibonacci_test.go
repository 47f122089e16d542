// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fibonacci

import (
	"iter"
	"math"
	"math/big"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNth(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 3, want: 2},
		{n: 4, want: 3},
		{n: 50, want: 12586269025},
		{n: 92, want: 7540113804746346429},
	}

	for _, tt := range tests {
		got, ok := Nth[int64](tt.n)
		if !ok || got != tt.want {
			t.Errorf("Nth[int64](%d) got (%d, %t); want (%d, true)", tt.n, got, ok, tt.want)
		}
	}

	for _, n := range []int{-1, 93, 1000} {
		if got, ok := Nth[int64](n); ok {
			t.Errorf("Nth[int64](%d) got (%d, true); want (_, false)", n, got)
		}
	}
}

func TestSequencePrefix(t *testing.T) {
	var got []int
	for x := range Sequence[int]() {
		if len(got) == 10 {
			break
		}
		got = append(got, x)
	}
	if diff := cmp.Diff([]int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, got); diff != "" {
		t.Errorf("first 10 of Sequence[int]() diff (-want +got):\n%s", diff)
	}
}

// lengthAndLast returns the number of elements in the sequence and its last
// value.
func lengthAndLast[T any](tb testing.TB, seq iter.Seq[T]) (int, T) {
	tb.Helper()
	var (
		n    int
		last T
	)
	for x := range seq {
		n++
		last = x
	}
	return n, last
}

func TestSequenceTerminates(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		got := slices.Collect(Sequence[int8]())
		want := []int8{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Sequence[int8]() diff (-want +got):\n%s", diff)
		}
	})

	t.Run("uint8", func(t *testing.T) {
		n, last := lengthAndLast[uint8](t, Sequence[uint8]())
		assert.Equal(t, 14, n, "length")
		assert.Equal(t, uint8(233), last, "last value")
	})

	t.Run("int64", func(t *testing.T) {
		n, last := lengthAndLast[int64](t, Sequence[int64]())
		assert.Equal(t, 93, n, "length")
		assert.Equal(t, int64(7540113804746346429), last, "last value")
		assert.Positive(t, last, "no wraparound")
	})

	t.Run("uint64", func(t *testing.T) {
		n, last := lengthAndLast[uint64](t, Sequence[uint64]())
		assert.Equal(t, 94, n, "length")
		assert.Equal(t, uint64(12200160415121876738), last, "last value")
		assert.Greater(t, last, uint64(math.MaxUint64/2), "last value exceeds half of range")
	})
}

func TestSequence256(t *testing.T) {
	// The reference is computed with unbounded integers.
	limit := new(big.Int).Lsh(big.NewInt(1), 256)
	a, b := big.NewInt(0), big.NewInt(1)

	var n int
	for x := range Sequence256() {
		require.Equalf(t, a.String(), x.Dec(), "Sequence256()[%d]", n)
		a, b = b, new(big.Int).Add(a, b)
		n++
	}
	assert.Equal(t, 371, n, "length")
	assert.GreaterOrEqual(t, a.Cmp(limit), 0, "first omitted value overflows 256 bits")

	t.Run("caller_owns_values", func(t *testing.T) {
		var got []*uint256.Int
		for x := range Sequence256() {
			if len(got) == 5 {
				break
			}
			got = append(got, x)
		}
		got[0].SetUint64(42)
		var want []*uint256.Int
		for _, x := range []uint64{42, 1, 1, 2, 3} {
			want = append(want, uint256.NewInt(x))
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("diff (-want +got):\n%s", diff)
		}
	})
}
