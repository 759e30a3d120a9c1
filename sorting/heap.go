package sorting

import "cmp"

// Heap sorts seq by building a max-heap over the copy in place, then
// repeatedly swapping the root (current maximum) behind the shrinking heap
// boundary and sifting the new root down.
//
// Complexity:
//
//	Time:  O(n log n) in all cases (O(n) heap build + n extractions)
//	Space: O(1) beyond the returned copy
//
// Heap is not stable. Returns a new non-decreasing slice; seq itself is
// never mutated.
func Heap[T cmp.Ordered](seq []T) []T {
	out := clone(seq)
	n := len(out)

	// Build the max-heap bottom-up from the last internal node.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, n, i)
	}

	// Extract the maximum n-1 times; the heap shrinks, the sorted suffix grows.
	for i := n - 1; i > 0; i-- {
		out[0], out[i] = out[i], out[0]
		siftDown(out, i, 0)
	}

	return out
}

// siftDown restores the max-heap property for the subtree rooted at i,
// considering only s[0..n-1] as heap storage.
func siftDown[T cmp.Ordered](s []T, n, i int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n && s[left] > s[largest] {
			largest = left
		}
		if right < n && s[right] > s[largest] {
			largest = right
		}
		if largest == i {
			return
		}

		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
