package dp

// Knapsack01 returns the maximum total value achievable by picking items —
// each at most once — whose weights fit within capacity.
//
// table[i][w] is the best value using the first i items under capacity w:
// either skip item i, or take it and fall back to the remaining capacity on
// the previous row.
//
// Items are paired by index; if the slices differ in length the extra
// entries of the longer one are ignored. capacity < 0 yields 0.
//
// Complexity:
//
//	Time:  O(n·W)
//	Space: O(n·W)
func Knapsack01(weights, values []int, capacity int) int {
	n := min(len(weights), len(values))
	if n == 0 || capacity <= 0 {
		return 0
	}

	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		for w := 1; w <= capacity; w++ {
			if weights[i-1] <= w {
				table[i][w] = max(
					values[i-1]+table[i-1][w-weights[i-1]],
					table[i-1][w],
				)
			} else {
				table[i][w] = table[i-1][w]
			}
		}
	}

	return table[n][capacity]
}

// Knapsack01Optimized computes the same maximum with a single O(W) row.
// Capacity is iterated DESCENDING so that each item is counted at most
// once: ascending order would let row[w-weight] already include the item
// being placed.
//
// Complexity:
//
//	Time:  O(n·W)
//	Space: O(W)
func Knapsack01Optimized(weights, values []int, capacity int) int {
	n := min(len(weights), len(values))
	if n == 0 || capacity <= 0 {
		return 0
	}

	row := make([]int, capacity+1)
	for i := 0; i < n; i++ {
		for w := capacity; w >= weights[i]; w-- {
			row[w] = max(row[w], values[i]+row[w-weights[i]])
		}
	}

	return row[capacity]
}
