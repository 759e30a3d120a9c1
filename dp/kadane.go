package dp

// MaxSubarraySum returns the maximum sum over all non-empty contiguous
// subarrays of seq (Kadane's algorithm): the running sum ending at each
// index either extends the previous run or restarts at the element,
// whichever is larger.
//
// An empty sequence returns 0. With all-negative input the answer is the
// largest single element — the subarray may not be empty.
//
// Complexity:
//
//	Time:  O(n)
//	Space: O(1)
func MaxSubarraySum(seq []int) int {
	if len(seq) == 0 {
		return 0
	}

	maxSum, curSum := seq[0], seq[0]
	for _, v := range seq[1:] {
		curSum = max(v, curSum+v)
		maxSum = max(maxSum, curSum)
	}

	return maxSum
}
