// Package dp computes optimal values, counts and feasibility over problems
// with overlapping subproblems and optimal substructure, by bottom-up
// tabulation or top-down memoized recursion.
//
// Overview:
//
//   - Every solver is a pure function: inputs are never mutated, and the DP
//     table (or memo cache) is allocated inside the call and discarded with
//     it. No state survives an invocation, so concurrent calls are safe.
//   - Where the source tradition passes a memo dictionary as a mutable
//     default parameter or hides one in an lru_cache decorator, this package
//     allocates the cache at the exported entry point and threads it
//     explicitly through an unexported recursive helper — memo state can
//     never leak across calls.
//   - Ordinary infeasibility is a sentinel VALUE, not an error: an amount no
//     coin combination reaches reports Impossible (−1). Errors are reserved
//     for structurally invalid arguments (ErrBadDims).
//
// Problems:
//
//   - Fibonacci / FibonacciTabulated / FibonacciMemo — f(n) in O(n); the
//     default form keeps only the last two values (O(1) space).
//   - LCS / LCSMemo — longest common subsequence length, O(m·n).
//   - Knapsack01 / Knapsack01Optimized — 0/1 knapsack maximum value in
//     O(n·W); the optimized form keeps a single O(W) row by iterating
//     capacity descending.
//   - CoinChangeMinCoins — fewest coins reaching an amount, Impossible when
//     unreachable. O(A·|coins|).
//   - CoinChangeWays — number of DISTINCT combinations reaching an amount;
//     the coin-outer loop order is what keeps permutations of the same
//     multiset from being counted twice. O(A·|coins|).
//   - LIS / LISBinarySearch — longest strictly increasing subsequence
//     length; O(n²) tabulated and O(n log n) via the tails array. Both
//     agree on every input.
//   - EditDistance — Levenshtein distance (insert, delete, replace), O(m·n).
//   - MatrixChain — minimum scalar multiplications to evaluate a matrix
//     chain, O(n³) over intervals.
//   - MaxSubarraySum — Kadane's maximum contiguous subarray sum, O(n)/O(1).
//   - SubsetSum — subset-with-given-sum feasibility, O(n·T) time, O(T)
//     space, target iterated descending so each element is used at most once.
//   - RodCutting — maximum revenue from cutting a rod, O(L²).
//
// Errors (sentinel):
//
//   - ErrBadDims — MatrixChain needs at least two dimensions to describe
//     one matrix.
//
// All results are deterministic given their inputs; ties in optimal value
// are resolved by the transitions' evaluation order, and no decision path
// is reconstructed — the contracts are about values.
package dp
