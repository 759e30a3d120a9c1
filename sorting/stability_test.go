package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqkit/sorting"
)

// record is a keyed payload: stability is only observable when equal keys
// carry distinct tags.
type record struct {
	key int
	tag string
}

func byKey(a, b record) bool { return a.key < b.key }

// TestMergeFuncStable verifies that MergeFunc preserves the input order of
// equal keys: (1,"a") must still precede (1,"b") after sorting.
func TestMergeFuncStable(t *testing.T) {
	in := []record{
		{2, "x"}, {1, "a"}, {3, "m"}, {1, "b"}, {2, "y"}, {1, "c"},
	}
	want := []record{
		{1, "a"}, {1, "b"}, {1, "c"}, {2, "x"}, {2, "y"}, {3, "m"},
	}

	require.Equal(t, want, sorting.MergeFunc(in, byKey))
}

// TestInsertionFuncStable verifies the same property for InsertionFunc.
func TestInsertionFuncStable(t *testing.T) {
	in := []record{
		{5, "p"}, {1, "a"}, {5, "q"}, {1, "b"}, {5, "r"},
	}
	want := []record{
		{1, "a"}, {1, "b"}, {5, "p"}, {5, "q"}, {5, "r"},
	}

	require.Equal(t, want, sorting.InsertionFunc(in, byKey))
}

// TestRadixExercisesCountingStability sorts multi-digit numbers sharing
// digit values; a correct result is only possible if each counting-by-digit
// pass is stable, so this pins the counting layer's stability indirectly.
func TestRadixExercisesCountingStability(t *testing.T) {
	in := []int{170, 45, 75, 90, 802, 24, 2, 66}
	want := []int{2, 24, 45, 66, 75, 90, 170, 802}

	require.Equal(t, want, sorting.Radix(in))
}
