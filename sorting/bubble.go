package sorting

import "cmp"

// Bubble sorts seq by repeatedly stepping through the slice, comparing
// adjacent elements and exchanging them when out of order. After pass i the
// largest i elements occupy their final positions at the tail.
//
// The pass loop exits early when a full pass performs no exchange, which
// makes the variant adaptive: nearly-sorted input finishes in near O(n).
//
// Complexity:
//
//	Time:  O(n²) worst, O(n) on already-sorted input
//	Space: O(1) beyond the returned copy
//
// Returns a new non-decreasing slice; seq itself is never mutated.
func Bubble[T cmp.Ordered](seq []T) []T {
	out := clone(seq)
	n := len(out)

	var swapped bool
	for i := 0; i < n; i++ {
		swapped = false
		// Elements beyond n-i-1 are already in final position.
		for j := 0; j < n-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		// A swap-free pass proves the slice is sorted; stop.
		if !swapped {
			break
		}
	}

	return out
}
