package dp

// EditDistance returns the Levenshtein distance between a and b: the
// minimum number of single-byte insertions, deletions and replacements
// transforming a into b.
//
// table[i][j] is the distance between a[:i] and b[:j]; the first row and
// column are the pure-insert / pure-delete base cases.
//
// Complexity:
//
//	Time:  O(m·n)
//	Space: O(m·n)
func EditDistance(a, b string) int {
	m, n := len(a), len(b)

	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}

	// Transforming a prefix into the empty string takes i deletions;
	// building a prefix from nothing takes j insertions.
	for i := 0; i <= m; i++ {
		table[i][0] = i
	}
	for j := 0; j <= n; j++ {
		table[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1]
			} else {
				table[i][j] = 1 + min(
					table[i-1][j],   // delete from a
					table[i][j-1],   // insert into a
					table[i-1][j-1], // replace
				)
			}
		}
	}

	return table[m][n]
}
