package searching

import "cmp"

// Binary searches a sorted (non-decreasing) sequence by repeatedly halving
// the candidate range. Returns an index i with seq[i] == target, or NotFound.
//
// When the target occurs more than once, which occurrence is returned is
// implementation-defined; use FirstOccurrence or LastOccurrence when the
// boundary matters.
//
// Precondition: seq sorted ascending. On unsorted input the result is
// unspecified (undefined behavior, not validated).
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(1)
func Binary[T cmp.Ordered](seq []T, target T) int {
	left, right := 0, len(seq)-1

	var mid int
	for left <= right {
		// Midpoint via left + (right-left)/2 to avoid index overflow.
		mid = left + (right-left)/2

		switch {
		case seq[mid] == target:
			return mid
		case seq[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound
}

// BinaryRecursive is Binary in recursive form: identical probe sequence,
// O(log n) call-stack frames instead of a loop. Prefer Binary for large
// inputs; this form exists for callers composing on recursive descent.
//
// Precondition: seq sorted ascending (same undefined-behavior caveat).
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(log n) recursion depth
func BinaryRecursive[T cmp.Ordered](seq []T, target T) int {
	return binaryBetween(seq, target, 0, len(seq)-1)
}

// binaryBetween searches seq[left..right] inclusive.
func binaryBetween[T cmp.Ordered](seq []T, target T, left, right int) int {
	if left > right {
		return NotFound
	}

	mid := left + (right-left)/2
	switch {
	case seq[mid] == target:
		return mid
	case seq[mid] < target:
		return binaryBetween(seq, target, mid+1, right)
	default:
		return binaryBetween(seq, target, left, mid-1)
	}
}
