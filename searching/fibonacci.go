package searching

import "cmp"

// Fibonacci searches a sorted sequence using Fibonacci-number-sized steps
// instead of halving: the range is cut at an offset fib(m−2) ahead, and the
// three tracked Fibonacci numbers are rolled down after each probe. No
// division is needed — only additions and subtractions.
//
// Precondition: seq sorted ascending. On unsorted input the result is
// unspecified.
//
// Complexity:
//
//	Time:  O(log n)
//	Space: O(1)
func Fibonacci[T cmp.Ordered](seq []T, target T) int {
	n := len(seq)
	if n == 0 {
		return NotFound
	}

	// Find the smallest Fibonacci number ≥ n.
	fibM2 := 0 // fib(m-2)
	fibM1 := 1 // fib(m-1)
	fibM := fibM2 + fibM1
	for fibM < n {
		fibM2 = fibM1
		fibM1 = fibM
		fibM = fibM2 + fibM1
	}

	// offset marks the front of the still-eligible range.
	offset := -1

	var i int
	for fibM > 1 {
		// Probe fib(m-2) ahead of the offset, clamped to the last index.
		i = min(offset+fibM2, n-1)

		switch {
		case seq[i] < target:
			// Discard the front third: roll the window down one Fibonacci step.
			fibM = fibM1
			fibM1 = fibM2
			fibM2 = fibM - fibM1
			offset = i
		case seq[i] > target:
			// Discard the back two thirds: roll down two Fibonacci steps.
			fibM = fibM2
			fibM1 -= fibM2
			fibM2 = fibM - fibM1
		default:
			return i
		}
	}

	// One candidate may remain just past the offset.
	if fibM1 == 1 && offset+1 < n && seq[offset+1] == target {
		return offset + 1
	}

	return NotFound
}
