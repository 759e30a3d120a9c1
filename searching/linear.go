package searching

// Linear scans seq left to right and returns the index of the first element
// equal to target, or NotFound. The only variant with no precondition.
//
// Complexity:
//
//	Time:  O(n)
//	Space: O(1)
func Linear[T comparable](seq []T, target T) int {
	for i, v := range seq {
		if v == target {
			return i
		}
	}

	return NotFound
}
