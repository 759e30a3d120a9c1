package sorting

// Radix sorts integers digit by digit, least-significant first, using one
// stable counting pass per decimal digit. Because each pass is stable, the
// ordering established by lower digits survives higher-digit passes.
//
// The classic contract assumes non-negative integers (a digit extracted
// from a negative value would index a count bucket below zero). Rather than
// leave negative input to crash, Radix normalizes: when the minimum value is
// negative, every value is shifted up by −min before the digit passes and
// shifted back afterwards, so negative input sorts correctly.
//
// Complexity:
//
//	Time:  O(d · (n + 10)) for d = digit count of the largest (shifted) value
//	Space: O(n)
//
// Returns a new non-decreasing slice; seq itself is never mutated.
func Radix(seq []int) []int {
	out := clone(seq)
	if len(out) <= 1 {
		return out
	}

	minVal, maxVal := out[0], out[0]
	for _, v := range out {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	// Normalize negatives into the non-negative digit domain.
	shift := 0
	if minVal < 0 {
		shift = -minVal
		for i := range out {
			out[i] += shift
		}
		maxVal += shift
	}

	for exp := 1; maxVal/exp > 0; exp *= 10 {
		out = countingByDigit(out, exp)
	}

	if shift > 0 {
		for i := range out {
			out[i] -= shift
		}
	}

	return out
}

// countingByDigit stably sorts seq by the decimal digit selected by exp
// (1 = ones, 10 = tens, ...). All values must be non-negative.
func countingByDigit(seq []int, exp int) []int {
	var count [10]int
	for _, v := range seq {
		count[(v/exp)%10]++
	}
	for i := 1; i < 10; i++ {
		count[i] += count[i-1]
	}

	out := make([]int, len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		d := (seq[i] / exp) % 10
		count[d]--
		out[count[d]] = seq[i]
	}

	return out
}
