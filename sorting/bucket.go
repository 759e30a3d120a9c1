package sorting

// Bucket sorts floating-point values by distributing them into k buckets
// across the value range [min, max], insertion-sorting each bucket, and
// concatenating the buckets in order. k defaults to DefaultBucketCount and
// can be tuned with WithBucketCount.
//
// The bucket index is a linear map of the value into [0, k−1]; when
// max == min the range is zero and every value lands in bucket 0 (explicit
// guard — no division by zero). Insertion sort inside each bucket keeps the
// overall sort stable.
//
// Complexity:
//
//	Time:  O(n + k) average for uniformly distributed values,
//	       O(n²) worst when values cluster into one bucket
//	Space: O(n + k)
//
// Returns a new non-decreasing slice; seq itself is never mutated.
func Bucket(seq []float64, opts ...Option) []float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(seq) <= 1 {
		return clone(seq)
	}

	minVal, maxVal := seq[0], seq[0]
	for _, v := range seq {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rangeSize := maxVal - minVal

	buckets := make([][]float64, cfg.BucketCount)

	var idx int
	for _, v := range seq {
		if rangeSize == 0 {
			// All values equal: the linear map below would divide by zero.
			idx = 0
		} else {
			idx = int((v - minVal) / rangeSize * float64(cfg.BucketCount-1))
		}
		buckets[idx] = append(buckets[idx], v)
	}

	out := make([]float64, 0, len(seq))
	for _, b := range buckets {
		out = append(out, insertionFloat(b)...)
	}

	return out
}

// insertionFloat sorts one bucket in place. Buckets are small on uniform
// input, so a stable O(n²) sort is the right tool here.
func insertionFloat(b []float64) []float64 {
	for i := 1; i < len(b); i++ {
		key := b[i]
		j := i - 1
		for j >= 0 && b[j] > key {
			b[j+1] = b[j]
			j--
		}
		b[j+1] = key
	}

	return b
}
