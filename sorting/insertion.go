package sorting

import "cmp"

// Insertion sorts seq by growing a sorted prefix one element at a time:
// each element is shifted left past every strictly greater predecessor and
// dropped into its slot.
//
// Shifting stops at the first predecessor that is not strictly greater, so
// equal elements keep their relative order — the sort is stable. On
// nearly-sorted input almost no shifting happens and the run approaches O(n).
//
// Complexity:
//
//	Time:  O(n²) worst, near O(n) on nearly-sorted input
//	Space: O(1) beyond the returned copy
//
// Returns a new non-decreasing slice; seq itself is never mutated.
func Insertion[T cmp.Ordered](seq []T) []T {
	return InsertionFunc(seq, cmp.Less[T])
}

// InsertionFunc is Insertion under a caller-supplied strict ordering.
// less must be a strict weak ordering; elements that compare equal under
// less retain their input order. Useful for keyed records, where stability
// is actually observable.
func InsertionFunc[T any](seq []T, less func(a, b T) bool) []T {
	out := clone(seq)
	n := len(out)

	var key T
	var j int
	for i := 1; i < n; i++ {
		key = out[i]
		// Shift strictly greater predecessors one slot right.
		for j = i - 1; j >= 0 && less(key, out[j]); j-- {
			out[j+1] = out[j]
		}
		out[j+1] = key
	}

	return out
}
