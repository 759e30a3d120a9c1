package searching

import "cmp"

// PeakElement returns the index of SOME local peak: an element not smaller
// than its existing neighbors (boundary elements need only dominate their
// single neighbor). The descent halves the range toward whichever side has
// an ascending neighbor, so it terminates at a peak in O(log n) — but which
// peak, and whether it is the global maximum, is deliberately unspecified.
//
// Returns NotFound for an empty sequence.
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(1)
func PeakElement[T cmp.Ordered](seq []T) int {
	if len(seq) == 0 {
		return NotFound
	}

	left, right := 0, len(seq)-1

	var mid int
	for left < right {
		mid = left + (right-left)/2

		if seq[mid] > seq[mid+1] {
			// Descending to the right: a peak exists at mid or to its left.
			right = mid
		} else {
			// Ascending to the right: a peak exists strictly to the right.
			left = mid + 1
		}
	}

	return left
}
