package sorting

import "cmp"

// Selection sorts seq by dividing it into a sorted prefix and an unsorted
// remainder, repeatedly selecting the minimum of the remainder and swapping
// it into place.
//
// Unlike Bubble, Selection always scans the full unsorted remainder on every
// pass — it is not adaptive, and the long-range swaps make it unstable.
//
// Complexity:
//
//	Time:  O(n²) in all cases
//	Space: O(1) beyond the returned copy
//
// Returns a new non-decreasing slice; seq itself is never mutated.
func Selection[T cmp.Ordered](seq []T) []T {
	out := clone(seq)
	n := len(out)

	var minIdx int
	for i := 0; i < n; i++ {
		minIdx = i
		for j := i + 1; j < n; j++ {
			if out[j] < out[minIdx] {
				minIdx = j
			}
		}
		out[i], out[minIdx] = out[minIdx], out[i]
	}

	return out
}
