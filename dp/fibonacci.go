package dp

// Fibonacci returns f(n) with f(0)=0, f(1)=1, keeping only the last two
// values. This is the preferred form: same O(n) time as the tabulated
// variant with O(1) extra space and no recursion.
//
// n must be ≥ 0; n ≤ 1 is returned as-is (the base case).
//
// Complexity:
//
//	Time:  O(n)
//	Space: O(1)
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}

	prev2, prev1 := 0, 1
	for i := 2; i <= n; i++ {
		prev2, prev1 = prev1, prev1+prev2
	}

	return prev1
}

// FibonacciTabulated returns f(n) by filling a full bottom-up table.
// Functionally identical to Fibonacci; kept for the tabulation shape, where
// every subproblem value remains addressable while the call runs.
//
// Complexity:
//
//	Time:  O(n)
//	Space: O(n)
func FibonacciTabulated(n int) int {
	if n <= 1 {
		return n
	}

	table := make([]int, n+1)
	table[1] = 1
	for i := 2; i <= n; i++ {
		table[i] = table[i-1] + table[i-2]
	}

	return table[n]
}

// FibonacciMemo returns f(n) by top-down memoized recursion. The cache is
// allocated here, per call, and handed explicitly to the recursive helper —
// nothing survives the invocation.
//
// Complexity:
//
//	Time:  O(n)
//	Space: O(n) cache + O(n) recursion depth
func FibonacciMemo(n int) int {
	return fibMemo(n, make(map[int]int, n+1))
}

// fibMemo resolves f(n) against the per-call cache.
func fibMemo(n int, memo map[int]int) int {
	if n <= 1 {
		return n
	}
	if v, ok := memo[n]; ok {
		return v
	}

	v := fibMemo(n-1, memo) + fibMemo(n-2, memo)
	memo[n] = v

	return v
}
