package sorting

// Counting sorts seq without comparisons by counting how many times each
// value occurs, turning the counts into cumulative positions, and placing
// each element at its final index.
//
// Values are offset by the minimum, so negative integers sort correctly;
// the value range k = max − min + 1 drives both time and space, so the
// variant is only sensible when k is not much larger than n. Placement
// walks the input in reverse, which makes the sort stable by construction.
//
// Complexity:
//
//	Time:  O(n + k)
//	Space: O(n + k) (count table + output)
//
// Returns a new non-decreasing slice; seq itself is never mutated.
func Counting(seq []int) []int {
	if len(seq) <= 1 {
		return clone(seq)
	}

	minVal, maxVal := seq[0], seq[0]
	for _, v := range seq {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rangeSize := maxVal - minVal + 1

	// Count occurrences per offset value.
	count := make([]int, rangeSize)
	for _, v := range seq {
		count[v-minVal]++
	}

	// Cumulative counts: count[i] becomes the number of elements ≤ value i.
	for i := 1; i < rangeSize; i++ {
		count[i] += count[i-1]
	}

	// Reverse scan places equal values in input order — stability.
	out := make([]int, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		v := seq[i]
		count[v-minVal]--
		out[count[v-minVal]] = v
	}

	return out
}
