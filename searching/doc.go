// Package searching locates a target's index — or a structural property
// such as an occurrence boundary, a peak, or a rotated match — inside a
// sequence, exploiting structural assumptions when they hold.
//
// Overview:
//
//   - Every function is read-only: the input slice is never mutated.
//   - Indices are 0-based. A miss is reported with the NotFound sentinel
//     (−1), never an error: absence is an ordinary outcome here.
//   - Preconditions are contracts, not runtime checks. Sortedness cannot be
//     verified without defeating the sub-linear complexity that justifies
//     these algorithms, so calling a variant on input that violates its
//     stated precondition yields an unspecified (but non-panicking) result.
//
// Variants:
//
//   - Linear          — no precondition. O(n). Returns the first matching
//     index scanning left to right.
//   - Binary          — sorted ascending. O(log n). When the target occurs
//     more than once, the returned index is implementation-defined (use
//     FirstOccurrence/LastOccurrence for deterministic boundaries).
//   - BinaryRecursive — same probes as Binary, recursive form. O(log n)
//     time, O(log n) call stack; prefer Binary for large inputs.
//   - Jump            — sorted ascending. O(√n). Jumps in blocks of ⌊√n⌋,
//     then scans linearly inside the identified block.
//   - Interpolation   — sorted ascending, roughly uniform values. O(log log n)
//     average, O(n) worst. Probes the position a linear interpolation of the
//     bounds predicts; equal bounds are guarded explicitly before the
//     division.
//   - Exponential     — sorted ascending. O(log n). Doubles the probe index
//     until it overshoots, then binary-searches the bracket. Suited to
//     unbounded-feeling inputs where the target sits near the front.
//   - Ternary         — sorted ascending. O(log₃ n), two comparisons per
//     step. Splits the range into three parts.
//   - Fibonacci       — sorted ascending. O(log n). Steps by Fibonacci
//     numbers instead of halving, so no division is needed.
//   - FirstOccurrence / LastOccurrence — sorted ascending, duplicates
//     allowed. O(log n) each. Binary search biased to keep probing toward
//     the boundary after a hit.
//   - CountOccurrences — sorted ascending. O(log n). last − first + 1, or 0
//     when the target is absent.
//   - PeakElement     — no sortedness required. O(log n). Descends toward an
//     ascending neighbor and terminates at SOME local peak — not necessarily
//     the global maximum; that weaker contract is deliberate.
//   - RotatedArray    — an ascending sequence cyclically shifted by an
//     unknown offset, duplicate-free. O(log n). Each step identifies the
//     internally-sorted half by comparing endpoints, then keeps the half
//     that can contain the target. Duplicates make the endpoint test
//     ambiguous and are out of contract.
//
// Thread safety:
//
//	All functions are pure and read-only; concurrent calls are safe as long
//	as no caller mutates a shared input slice mid-call.
package searching
