// Package dp_test provides runnable examples for the dynamic-programming
// solvers. Each example is runnable via “go test -run Example”, showing
// both code and expected output.
package dp_test

import (
	"fmt"

	"github.com/katalvlaran/seqkit/dp"
)

// ExampleFibonacci demonstrates the O(1)-space iterative form.
func ExampleFibonacci() {
	fmt.Println(dp.Fibonacci(10))
	// Output: 55
}

// ExampleLCS demonstrates the longest-common-subsequence length: GTAB is
// the longest sequence appearing in both strings in order.
func ExampleLCS() {
	fmt.Println(dp.LCS("AGGTAB", "GXTXAYB"))
	// Output: 4
}

// ExampleKnapsack01 demonstrates the 0/1 knapsack maximum: items of weight
// 20 and 30 fill capacity 50 for value 100 + 120.
func ExampleKnapsack01() {
	weights := []int{10, 20, 30}
	values := []int{60, 100, 120}

	fmt.Println(dp.Knapsack01(weights, values, 50))
	// Output: 220
}

// ExampleCoinChangeMinCoins demonstrates both coin-change flavors and the
// Impossible sentinel.
func ExampleCoinChangeMinCoins() {
	coins := []int{1, 2, 5}

	fmt.Println(dp.CoinChangeMinCoins(coins, 11)) // 5+5+1
	fmt.Println(dp.CoinChangeWays(coins, 11))
	fmt.Println(dp.CoinChangeMinCoins([]int{2}, 3))
	// Output:
	// 3
	// 11
	// -1
}

// ExampleLISBinarySearch demonstrates the O(n log n) longest-increasing-
// subsequence length; 2,3,7,101 is one witness of length 4.
func ExampleLISBinarySearch() {
	fmt.Println(dp.LISBinarySearch([]int{10, 9, 2, 5, 3, 7, 101, 18}))
	// Output: 4
}

// ExampleEditDistance demonstrates the Levenshtein distance: sunday →
// saturday takes three edits.
func ExampleEditDistance() {
	fmt.Println(dp.EditDistance("sunday", "saturday"))
	// Output: 3
}

// ExampleMaxSubarraySum demonstrates Kadane's algorithm; the best run is
// [4 -1 2 1].
func ExampleMaxSubarraySum() {
	fmt.Println(dp.MaxSubarraySum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}))
	// Output: 6
}

// ExampleSubsetSum demonstrates subset feasibility: 4 + 5 reaches 9.
func ExampleSubsetSum() {
	fmt.Println(dp.SubsetSum([]int{3, 34, 4, 12, 5, 2}, 9))
	// Output: true
}
