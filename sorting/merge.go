package sorting

import "cmp"

// Merge sorts seq by divide and conquer: split in half, sort each half
// recursively, then merge the two sorted runs.
//
// The merge emits the left run's element whenever the heads compare equal,
// so equal elements retain the left operand's relative order — the sort is
// stable with deterministic tie handling.
//
// Complexity:
//
//	Time:  O(n log n) in all cases
//	Space: O(n) auxiliary (each merge allocates its output run)
//
// Returns a new non-decreasing slice; seq itself is never mutated.
func Merge[T cmp.Ordered](seq []T) []T {
	return MergeFunc(seq, cmp.Less[T])
}

// MergeFunc is Merge under a caller-supplied strict ordering.
// less must be a strict weak ordering; elements that compare equal under
// less retain their input order.
func MergeFunc[T any](seq []T, less func(a, b T) bool) []T {
	if len(seq) <= 1 {
		return clone(seq)
	}

	mid := len(seq) / 2
	left := MergeFunc(seq[:mid], less)
	right := MergeFunc(seq[mid:], less)

	return mergeRuns(left, right, less)
}

// mergeRuns merges two sorted runs into a fresh slice.
// On ties (neither head is less than the other) the left head is emitted,
// which is what makes the overall sort stable.
func mergeRuns[T any](left, right []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}

	// One of the runs is exhausted; the remainder of the other is sorted.
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
