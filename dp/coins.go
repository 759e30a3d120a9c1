package dp

import "math"

// CoinChangeMinCoins returns the minimum number of coins (unlimited supply
// per denomination) summing to amount, or Impossible when no combination
// reaches it. Infeasibility is an ordinary outcome here, never an error.
//
// Unreachable amounts carry a +∞ sentinel inside the table; the sentinel is
// translated to Impossible only at the end. Non-positive denominations are
// skipped — they cannot contribute to a positive amount.
//
// Complexity:
//
//	Time:  O(amount · |coins|)
//	Space: O(amount)
func CoinChangeMinCoins(coins []int, amount int) int {
	if amount < 0 {
		return Impossible
	}

	const unreachable = math.MaxInt

	table := make([]int, amount+1)
	for i := range table {
		table[i] = unreachable
	}
	table[0] = 0 // zero coins reach amount zero

	for _, coin := range coins {
		if coin <= 0 {
			continue
		}
		for a := coin; a <= amount; a++ {
			// Guard the +∞ sentinel before the +1 arithmetic.
			if table[a-coin] != unreachable && table[a-coin]+1 < table[a] {
				table[a] = table[a-coin] + 1
			}
		}
	}

	if table[amount] == unreachable {
		return Impossible
	}

	return table[amount]
}

// CoinChangeWays returns how many DISTINCT coin combinations sum to amount.
// The coin loop is the OUTER loop on purpose: processing one denomination
// completely before the next means each combination is built in canonical
// coin order, so permutations of the same multiset are never counted twice.
//
// amount 0 has exactly one way (take nothing); negative amounts have none.
//
// Complexity:
//
//	Time:  O(amount · |coins|)
//	Space: O(amount)
func CoinChangeWays(coins []int, amount int) int {
	if amount < 0 {
		return 0
	}

	table := make([]int, amount+1)
	table[0] = 1

	for _, coin := range coins {
		if coin <= 0 {
			continue
		}
		for a := coin; a <= amount; a++ {
			table[a] += table[a-coin]
		}
	}

	return table[amount]
}
