package dp

// LIS returns the length of the longest strictly increasing subsequence of
// seq by O(n²) tabulation: table[i] is the best length of a subsequence
// ending at i, extended from every smaller predecessor.
//
// Complexity:
//
//	Time:  O(n²)
//	Space: O(n)
func LIS(seq []int) int {
	n := len(seq)
	if n == 0 {
		return 0
	}

	table := make([]int, n)
	best := 1
	for i := 0; i < n; i++ {
		table[i] = 1
		for j := 0; j < i; j++ {
			if seq[j] < seq[i] && table[j]+1 > table[i] {
				table[i] = table[j] + 1
			}
		}
		if table[i] > best {
			best = table[i]
		}
	}

	return best
}

// LISBinarySearch returns the same length in O(n log n) using the tails
// technique: tails[k] holds the smallest possible tail value of an
// increasing subsequence of length k+1. Each element either extends the
// longest subsequence or lowers the tail found by a lower-bound search.
//
// The tails array is NOT a subsequence itself — only its length is
// meaningful, and it always equals what LIS computes.
//
// Complexity:
//
//	Time:  O(n log n)
//	Space: O(n)
func LISBinarySearch(seq []int) int {
	tails := make([]int, 0, len(seq))

	for _, v := range seq {
		// Lower bound: first tail ≥ v.
		left, right := 0, len(tails)
		for left < right {
			mid := (left + right) / 2
			if tails[mid] < v {
				left = mid + 1
			} else {
				right = mid
			}
		}

		if left == len(tails) {
			tails = append(tails, v) // extends the longest subsequence
		} else {
			tails[left] = v // lowers an existing tail
		}
	}

	return len(tails)
}
