package dp

// SubsetSum reports whether some subset of nums sums exactly to target.
// A 1-D reachability table is folded over the elements; the target index
// runs DESCENDING so each element is used at most once per subset
// (ascending order would allow reuse, which is a different problem).
//
// target 0 is always reachable (the empty subset); negative targets never.
// Non-positive elements are skipped — the table indexes by remaining
// target, which must stay non-negative.
//
// Complexity:
//
//	Time:  O(n·T)
//	Space: O(T)
func SubsetSum(nums []int, target int) bool {
	if target < 0 {
		return false
	}

	table := make([]bool, target+1)
	table[0] = true

	for _, num := range nums {
		if num <= 0 {
			continue
		}
		for t := target; t >= num; t-- {
			table[t] = table[t] || table[t-num]
		}
	}

	return table[target]
}
