package dp

// LCS returns the length of the longest common subsequence of a and b:
// the longest sequence of bytes appearing in both strings in order, not
// necessarily contiguously.
//
// Transition over table[i][j] = LCS length of a[:i] and b[:j]:
// matching tail bytes extend the diagonal; otherwise take the better of
// dropping a byte from either string.
//
// Complexity:
//
//	Time:  O(m·n)
//	Space: O(m·n)
func LCS(a, b string) int {
	m, n := len(a), len(b)

	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = 1 + table[i-1][j-1]
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	return table[m][n]
}

// LCSMemo returns the same length by top-down memoized recursion on the
// (i, j) prefix-length pair. The cache is allocated per call and threaded
// explicitly; prefer LCS for long inputs — the recursion is m+n deep.
//
// Complexity:
//
//	Time:  O(m·n)
//	Space: O(m·n) cache + O(m+n) recursion depth
func LCSMemo(a, b string) int {
	return lcsMemo(a, b, len(a), len(b), make(map[[2]int]int))
}

// lcsMemo resolves the (i, j) subproblem against the per-call cache.
func lcsMemo(a, b string, i, j int, memo map[[2]int]int) int {
	if i == 0 || j == 0 {
		return 0
	}

	key := [2]int{i, j}
	if v, ok := memo[key]; ok {
		return v
	}

	var v int
	if a[i-1] == b[j-1] {
		v = 1 + lcsMemo(a, b, i-1, j-1, memo)
	} else {
		v = max(lcsMemo(a, b, i-1, j, memo), lcsMemo(a, b, i, j-1, memo))
	}
	memo[key] = v

	return v
}
