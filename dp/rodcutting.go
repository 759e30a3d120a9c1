package dp

// RodCutting returns the maximum revenue obtainable by cutting a rod of
// the given length into pieces, where prices[j] is the price of a piece of
// length j+1. Pieces longer than the price list are unsellable and simply
// never chosen.
//
// table[l] is the best revenue for a rod of length l: for each first-cut
// size, the piece's price plus the best revenue for the remainder.
//
// Complexity:
//
//	Time:  O(L²)
//	Space: O(L)
func RodCutting(prices []int, length int) int {
	if length <= 0 || len(prices) == 0 {
		return 0
	}

	table := make([]int, length+1)
	for l := 1; l <= length; l++ {
		// First cut of size j+1; only sizes with a listed price qualify.
		for j := 0; j < l && j < len(prices); j++ {
			if prices[j]+table[l-j-1] > table[l] {
				table[l] = prices[j] + table[l-j-1]
			}
		}
	}

	return table[length]
}
