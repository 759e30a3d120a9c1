package searching

import "cmp"

// Exponential searches a sorted sequence by doubling a probe index (1, 2,
// 4, 8, ...) until it overshoots the target, then binary-searching the
// bracketed range [i/2, min(i, n−1)]. Efficient when the target sits near
// the front, and the natural choice for unbounded-feeling inputs.
//
// Precondition: seq sorted ascending. On unsorted input the result is
// unspecified.
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(1)
func Exponential[T cmp.Ordered](seq []T, target T) int {
	n := len(seq)
	if n == 0 {
		return NotFound
	}
	if seq[0] == target {
		return 0
	}

	// Double the probe until it passes the target or the end.
	i := 1
	for i < n && seq[i] <= target {
		i *= 2
	}

	// Binary search inside the bracket the doubling identified.
	left, right := i/2, min(i, n-1)

	var mid int
	for left <= right {
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
