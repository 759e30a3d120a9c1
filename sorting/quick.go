package sorting

import "cmp"

// Quick sorts seq with a three-way quicksort: pick the middle element as
// pivot, partition into {< pivot, = pivot, > pivot}, and recurse into the
// strict partitions only.
//
// Grouping the equal band in one pass means duplicate-heavy input shrinks
// fast instead of degrading toward the quadratic worst case. The middle
// pivot keeps already-sorted input off the worst case as well.
//
// Complexity:
//
//	Time:  O(n log n) average, O(n²) worst (adversarial orderings)
//	Space: O(log n) recursion average, O(n) worst
//
// Quick is not stable. Returns a new non-decreasing slice; seq itself is
// never mutated.
func Quick[T cmp.Ordered](seq []T) []T {
	out := clone(seq)
	quickSort(out, 0, len(out)-1)

	return out
}

// quickSort sorts s[lo..hi] in place.
func quickSort[T cmp.Ordered](s []T, lo, hi int) {
	if lo >= hi {
		return
	}

	pivot := s[lo+(hi-lo)/2]
	lt, gt := partition3(s, lo, hi, pivot)

	// The equal band s[lt..gt] is final; recurse into the strict sides.
	quickSort(s, lo, lt-1)
	quickSort(s, gt+1, hi)
}

// partition3 rearranges s[lo..hi] into s[lo..lt-1] < pivot,
// s[lt..gt] == pivot, s[gt+1..hi] > pivot and returns (lt, gt).
func partition3[T cmp.Ordered](s []T, lo, hi int, pivot T) (int, int) {
	lt, i, gt := lo, lo, hi
	for i <= gt {
		switch {
		case s[i] < pivot:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > pivot:
			s[i], s[gt] = s[gt], s[i]
			gt--
		default:
			i++
		}
	}

	return lt, gt
}
