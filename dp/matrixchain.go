package dp

import "math"

// MatrixChain returns the minimum number of scalar multiplications needed
// to evaluate the product of a matrix chain, where matrix i has dimensions
// dims[i-1] × dims[i]. The order of multiplication is free; the product
// itself is not.
//
// table[i][j] is the cheapest cost of multiplying matrices i..j; every
// split point k between them is tried, interval length ascending so both
// sub-intervals are already solved.
//
// Returns ErrBadDims when dims describes no matrix (fewer than two
// dimensions). A single matrix costs zero.
//
// Complexity:
//
//	Time:  O(n³)
//	Space: O(n²)
func MatrixChain(dims []int) (int, error) {
	if len(dims) < 2 {
		return 0, ErrBadDims
	}

	n := len(dims) - 1 // number of matrices
	if n == 1 {
		return 0, nil
	}

	table := make([][]int, n)
	for i := range table {
		table[i] = make([]int, n)
	}

	var i, j, k, cost int
	for length := 2; length <= n; length++ {
		for i = 0; i <= n-length; i++ {
			j = i + length - 1
			table[i][j] = math.MaxInt

			for k = i; k < j; k++ {
				cost = table[i][k] + table[k+1][j] + dims[i]*dims[k+1]*dims[j+1]
				if cost < table[i][j] {
					table[i][j] = cost
				}
			}
		}
	}

	return table[0][n-1], nil
}
