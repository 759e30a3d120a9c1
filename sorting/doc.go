// Package sorting provides nine classic sorting algorithms over sequences,
// each with an explicit complexity contract and a pure, copy-on-write API.
//
// Overview:
//
//   - Every sort takes a slice and returns a NEW slice holding the same
//     multiset of elements in non-decreasing order. The caller's slice is
//     never mutated; internal copies are mutated freely.
//   - Empty and single-element inputs are returned (as a copy) unchanged —
//     they are the valid base case of every variant.
//   - Comparison-based variants are generic over cmp.Ordered. Counting and
//     radix require integers; bucket requires float64 values.
//
// When to use which:
//
//   - Bubble    — O(n²)/O(1). Adaptive: exits early when a full pass makes
//     no exchange, so nearly-sorted input approaches O(n).
//   - Selection — O(n²)/O(1). Always scans the full unsorted remainder; not
//     adaptive, not stable. Minimal number of swaps.
//   - Insertion — O(n²) worst, near O(n) on nearly-sorted input. Stable.
//   - Merge     — O(n log n)/O(n). Stable: on ties the left operand's
//     elements are emitted first during the merge.
//   - Quick     — O(n log n) average, O(n²) worst. Pivot is the middle
//     element; a three-way {<, =, >} partition keeps duplicate-heavy input
//     away from the quadratic worst case.
//   - Heap      — O(n log n)/O(1). Builds a max-heap in place, then
//     repeatedly extracts the maximum. Not stable.
//   - Counting  — O(n + k)/O(k) for value range k = max − min + 1. Values
//     are offset by the minimum, so negative integers are handled; placement
//     is a reverse scan, so the sort is stable by construction.
//   - Radix     — O(d · (n + 10)) for d = max digit count. Least-significant
//     digit first, one stable counting pass per digit. Classic contract
//     assumes non-negative integers; this implementation normalizes by the
//     minimum value so negative input still sorts correctly (see Radix).
//   - Bucket    — O(n + k) average, O(n²) worst. Distributes values into k
//     buckets by value range (k defaults to DefaultBucketCount, tunable via
//     WithBucketCount), insertion-sorts each bucket, and concatenates.
//     Degrades when values are far from uniformly distributed.
//
// Stability:
//
//	Insertion, Merge and Counting are stable. Stability is only observable
//	when equal keys carry distinct payloads, so the package also exposes
//	InsertionFunc and MergeFunc, which accept a caller-supplied less
//	function over arbitrary element types.
//
// Errors:
//
//   - ErrBadBucketCount — panicked by WithBucketCount when the requested
//     bucket count is below 1. Sorting itself never returns an error:
//     absence of a result is not a possible outcome, and precondition
//     violations on the distribution sorts are guarded (counting/radix
//     offset by the minimum; bucket guards the zero-range division).
//
// Thread safety:
//
//	All functions are pure: they share no state and allocate their own
//	working memory, so concurrent calls are safe as long as callers do not
//	mutate a shared input slice mid-call.
package sorting
