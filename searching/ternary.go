package searching

import "cmp"

// Ternary searches a sorted sequence by splitting the candidate range into
// three parts at two probe points per step. Each step costs two comparisons
// but discards two thirds of the range.
//
// Precondition: seq sorted ascending. On unsorted input the result is
// unspecified.
//
// Complexity:
//
//	Time:  O(log₃ n), two comparisons per step
//	Space: O(1)
func Ternary[T cmp.Ordered](seq []T, target T) int {
	left, right := 0, len(seq)-1

	var mid1, mid2 int
	for left <= right {
		mid1 = left + (right-left)/3
		mid2 = right - (right-left)/3

		if seq[mid1] == target {
			return mid1
		}
		if seq[mid2] == target {
			return mid2
		}

		switch {
		case target < seq[mid1]:
			right = mid1 - 1
		case target > seq[mid2]:
			left = mid2 + 1
		default:
			// Target lies strictly between the two probes.
			left = mid1 + 1
			right = mid2 - 1
		}
	}

	return NotFound
}
