package searching

import "cmp"

// FirstOccurrence returns the lowest index holding target in a sorted
// sequence that may contain duplicates, or NotFound. After a hit the search
// keeps probing the left half, so the result is the boundary, not an
// arbitrary match.
//
// Precondition: seq sorted ascending. On unsorted input the result is
// unspecified.
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(1)
func FirstOccurrence[T cmp.Ordered](seq []T, target T) int {
	left, right := 0, len(seq)-1
	result := NotFound

	var mid int
	for left <= right {
		mid = left + (right-left)/2

		switch {
		case seq[mid] == target:
			result = mid
			// Keep searching left for an earlier occurrence.
			right = mid - 1
		case seq[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return result
}

// LastOccurrence returns the highest index holding target in a sorted
// sequence that may contain duplicates, or NotFound. The mirror image of
// FirstOccurrence: after a hit the search continues right.
//
// Precondition: seq sorted ascending. On unsorted input the result is
// unspecified.
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(1)
func LastOccurrence[T cmp.Ordered](seq []T, target T) int {
	left, right := 0, len(seq)-1
	result := NotFound

	var mid int
	for left <= right {
		mid = left + (right-left)/2

		switch {
		case seq[mid] == target:
			result = mid
			// Keep searching right for a later occurrence.
			left = mid + 1
		case seq[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return result
}

// CountOccurrences returns how many times target occurs in a sorted
// sequence: last − first + 1, or 0 when absent.
//
// Precondition: seq sorted ascending.
//
// Complexity:
//
//	Time:  O(log n) (two boundary searches)
//	Space: O(1)
func CountOccurrences[T cmp.Ordered](seq []T, target T) int {
	first := FirstOccurrence(seq, target)
	if first == NotFound {
		return 0
	}

	return LastOccurrence(seq, target) - first + 1
}
