package searching

// Interpolation searches a sorted sequence of roughly uniformly distributed
// integers by probing the position a linear interpolation between the range
// bounds predicts, instead of the midpoint.
//
// The bounds-equal case (seq[left] == seq[right]) is guarded explicitly
// before the interpolation divide — the loop condition alone does not rule
// out a zero denominator when the range holds a run of equal values.
//
// Preconditions: seq sorted ascending; values roughly uniform for the
// average-case bound to hold. On unsorted input the result is unspecified.
//
// Complexity:
//
//	Time:  O(log log n) average on uniform data, O(n) worst
//	Space: O(1)
func Interpolation(seq []int, target int) int {
	left, right := 0, len(seq)-1

	var pos int
	for left <= right && target >= seq[left] && target <= seq[right] {
		// Equal bounds: the denominator below would be zero. Inside this loop
		// the target is within [seq[left], seq[right]], so equality decides.
		if seq[left] == seq[right] {
			if seq[left] == target {
				return left
			}

			return NotFound
		}

		// Probe where a straight line between the bounds predicts the target.
		pos = left + (target-seq[left])*(right-left)/(seq[right]-seq[left])

		switch {
		case seq[pos] == target:
			return pos
		case seq[pos] < target:
			left = pos + 1
		default:
			right = pos - 1
		}
	}

	return NotFound
}
