// Package sorting_test contains unit tests for all sorting variants.
// Every variant is checked against the standard-library sort as a reference
// oracle, plus the boundary and guard behaviors each variant documents.
package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/seqkit/sorting"
)

// intSorts enumerates every variant that sorts []int, so cross-variant
// agreement can be asserted in one sweep.
var intSorts = map[string]func([]int) []int{
	"Bubble":    sorting.Bubble[int],
	"Selection": sorting.Selection[int],
	"Insertion": sorting.Insertion[int],
	"Merge":     sorting.Merge[int],
	"Quick":     sorting.Quick[int],
	"Heap":      sorting.Heap[int],
	"Counting":  sorting.Counting,
	"Radix":     sorting.Radix,
}

// SortSuite exercises the sorting variants under shared scenarios.
type SortSuite struct {
	suite.Suite
}

func TestSortSuite(t *testing.T) {
	suite.Run(t, new(SortSuite))
}

// TestAgainstReference verifies that every variant's output equals the
// standard-library sort on fixed and pseudo-random inputs.
func (s *SortSuite) TestAgainstReference() {
	rng := rand.New(rand.NewSource(42))

	cases := [][]int{
		{64, 34, 25, 12, 22, 11, 90},
		{5, 2, 8, 1, 9},
		{1, 1, 1, 1, 1},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{2, 1},
	}
	// A reversed run and three random slices with duplicates.
	rev := make([]int, 100)
	for i := range rev {
		rev[i] = 100 - i
	}
	cases = append(cases, rev)
	for i := 0; i < 3; i++ {
		rnd := make([]int, 200)
		for j := range rnd {
			rnd[j] = rng.Intn(500)
		}
		cases = append(cases, rnd)
	}

	for _, in := range cases {
		want := slices.Clone(in)
		slices.Sort(want)
		for name, sortFn := range intSorts {
			require.Equal(s.T(), want, sortFn(in), "%s on %v", name, in)
		}
	}
}

// TestInputNotMutated verifies the copy-on-write contract: the caller's
// slice is byte-identical after every variant runs.
func (s *SortSuite) TestInputNotMutated() {
	in := []int{3, -1, 4, 1, -5, 9, 2, 6}
	orig := slices.Clone(in)

	for name, sortFn := range intSorts {
		_ = sortFn(in)
		require.Equal(s.T(), orig, in, "%s mutated its input", name)
	}
}

// TestIdempotence verifies sort(sort(S)) == sort(S) for every variant.
func (s *SortSuite) TestIdempotence() {
	in := []int{7, 3, 3, 0, 12, 7, 1}
	for name, sortFn := range intSorts {
		once := sortFn(in)
		require.Equal(s.T(), once, sortFn(once), "%s is not idempotent", name)
	}
}

// TestEmptyAndSingle verifies the shared base case: empty in, empty out;
// single element in, same single element out.
func (s *SortSuite) TestEmptyAndSingle() {
	for name, sortFn := range intSorts {
		require.Empty(s.T(), sortFn(nil), "%s on empty", name)
		require.Equal(s.T(), []int{42}, sortFn([]int{42}), "%s on single", name)
	}
	require.Empty(s.T(), sorting.Bucket(nil))
	require.Equal(s.T(), []float64{1.5}, sorting.Bucket([]float64{1.5}))
}

// TestCountingNegatives pins the min-offset guard: counting sort handles
// negative values by offsetting the count table.
func (s *SortSuite) TestCountingNegatives() {
	got := sorting.Counting([]int{-3, 5, 0, -1, 2, -3})
	require.Equal(s.T(), []int{-3, -3, -1, 0, 2, 5}, got)
}

// TestRadixNegatives pins the normalization guard: negative values are
// shifted into the digit domain and shifted back, so they sort correctly
// instead of indexing a count bucket below zero.
func (s *SortSuite) TestRadixNegatives() {
	got := sorting.Radix([]int{-170, 45, 75, -90, 802, -24, 2, 66})
	require.Equal(s.T(), []int{-170, -90, -24, 2, 45, 66, 75, 802}, got)
}

// TestBucketReference checks Bucket against the reference sort on floats.
func (s *SortSuite) TestBucketReference() {
	rng := rand.New(rand.NewSource(7))
	in := make([]float64, 150)
	for i := range in {
		in[i] = rng.Float64() * 100
	}

	want := slices.Clone(in)
	slices.Sort(want)
	require.Equal(s.T(), want, sorting.Bucket(in))
}

// TestBucketZeroRange pins the max==min guard: all-equal input must not
// divide by zero and comes back unchanged.
func (s *SortSuite) TestBucketZeroRange() {
	in := []float64{3.3, 3.3, 3.3, 3.3}
	require.Equal(s.T(), in, sorting.Bucket(in))
}

// TestBucketCountOption verifies WithBucketCount changes partitioning but
// not the result, and that an invalid count panics with the sentinel text.
func (s *SortSuite) TestBucketCountOption() {
	in := []float64{0.9, 0.1, 0.5, 0.3, 0.7}
	want := []float64{0.1, 0.3, 0.5, 0.7, 0.9}

	require.Equal(s.T(), want, sorting.Bucket(in, sorting.WithBucketCount(1)))
	require.Equal(s.T(), want, sorting.Bucket(in, sorting.WithBucketCount(25)))

	require.PanicsWithValue(s.T(), sorting.ErrBadBucketCount.Error(), func() {
		sorting.Bucket(in, sorting.WithBucketCount(0))
	})
}

// TestBubbleEarlyExitSortedInput gives Bubble an already-sorted slice; the
// result must be identical (the adaptive path returns after one pass).
func TestBubbleEarlyExitSortedInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	require.Equal(t, in, sorting.Bubble(in))
}

// TestStringElements verifies the comparison sorts over a non-numeric
// ordered element type.
func TestStringElements(t *testing.T) {
	in := []string{"pear", "apple", "fig", "banana", "fig"}
	want := []string{"apple", "banana", "fig", "fig", "pear"}

	require.Equal(t, want, sorting.Merge(in))
	require.Equal(t, want, sorting.Quick(in))
	require.Equal(t, want, sorting.Heap(in))
	require.Equal(t, want, sorting.Insertion(in))
}
