package searching

import "cmp"

// RotatedArray searches an ascending sequence that has been cyclically
// shifted by an unknown offset, e.g. [4 5 6 7 0 1 2]. Each step compares
// the endpoints of the current range to decide which half is internally
// sorted, then keeps whichever half can contain the target.
//
// Preconditions: the underlying sequence is sorted ascending and contains
// no duplicate values — duplicates make the endpoint comparison ambiguous
// and are out of contract. On violating input the result is unspecified.
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(1)
func RotatedArray[T cmp.Ordered](seq []T, target T) int {
	left, right := 0, len(seq)-1

	var mid int
	for left <= right {
		mid = left + (right-left)/2

		if seq[mid] == target {
			return mid
		}

		if seq[left] <= seq[mid] {
			// Left half is internally sorted.
			if seq[left] <= target && target < seq[mid] {
				right = mid - 1
			} else {
				left = mid + 1
			}
		} else {
			// Right half is internally sorted.
			if seq[mid] < target && target <= seq[right] {
				left = mid + 1
			} else {
				right = mid - 1
			}
		}
	}

	return NotFound
}
