package searching

import (
	"cmp"
	"math"
)

// Jump searches a sorted sequence by jumping ahead in blocks of ⌊√n⌋
// elements until a block that could contain the target is found, then
// scanning that block linearly.
//
// Precondition: seq sorted ascending. On unsorted input the result is
// unspecified.
//
// Complexity:
//
//	Time:  O(√n)
//	Space: O(1)
func Jump[T cmp.Ordered](seq []T, target T) int {
	n := len(seq)
	if n == 0 {
		return NotFound
	}

	step := int(math.Sqrt(float64(n)))
	prev := 0

	// Jump until the block's last element is no longer below the target.
	for seq[min(step, n)-1] < target {
		prev = step
		step += int(math.Sqrt(float64(n)))
		if prev >= n {
			return NotFound
		}
	}

	// Linear scan inside the identified block.
	for seq[prev] < target {
		prev++
		if prev == min(step, n) {
			return NotFound
		}
	}

	if seq[prev] == target {
		return prev
	}

	return NotFound
}
