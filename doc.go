// Package seqkit is your in-memory toolbox for ordering, locating and
// optimizing over sequences — from classic sorts to binary-search variants
// and dynamic-programming solvers.
//
// 🚀 What is seqkit?
//
//	A modern, zero-dependency library that brings together:
//		• Sorting: bubble, selection, insertion, merge, quick, heap,
//		  counting, radix, bucket — all pure, input never mutated
//		• Searching: linear, binary (iterative & recursive), jump,
//		  interpolation, exponential, ternary, fibonacci, occurrence
//		  bounds, peak finding, rotated-array search
//		• Dynamic programming: Fibonacci, LCS, 0/1 knapsack, coin change,
//		  LIS, edit distance, matrix chain, Kadane, subset sum, rod cutting
//
// ✨ Why choose seqkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – documented complexity & preconditions per call
//   - Pure Go – no cgo, no hidden deps
//   - Pure functions – every call allocates its own working memory, so
//     concurrent callers never contend
//
// Everything is organized under three subpackages:
//
//	sorting/   — nine sorting variants with explicit complexity contracts
//	searching/ — index location under structural assumptions (sortedness,
//	             rotation, uniform distribution)
//	dp/        — optimal-value computations by memoization or tabulation
//
// Quick ASCII example:
//
//	    [64 34 25 12 22 11 90]
//	              │ sorting.Merge
//	              ▼
//	    [11 12 22 25 34 64 90]
//	              │ searching.Binary(…, 25)
//	              ▼
//	              3
//
// Dive into each package's doc.go for complexity tables, edge policies and
// runnable examples.
//
//	go get github.com/katalvlaran/seqkit
package seqkit
