// Package sorting defines the shared option types and helpers used by the
// distribution-based sorts.
package sorting

import "errors"

// ErrBadBucketCount indicates that WithBucketCount was given a count below 1,
// which would leave no bucket to place values into.
var ErrBadBucketCount = errors.New("sorting: bucket count must be at least 1")

// DefaultBucketCount is the number of buckets Bucket uses when the caller
// does not override it via WithBucketCount.
const DefaultBucketCount = 10

// Options configures the distribution-based sorts.
//
// BucketCount – number of buckets Bucket partitions the value range into.
// More buckets help when values are densely and uniformly spread; fewer
// buckets waste less space on sparse input. Must be ≥ 1.
type Options struct {
	BucketCount int
}

// Option represents a functional option for configuring a sort.
type Option func(*Options)

// WithBucketCount sets the number of buckets used by Bucket.
// Must pass a value ≥ 1; smaller values cause ErrBadBucketCount.
func WithBucketCount(n int) Option {
	return func(o *Options) {
		if n < 1 {
			// Panic to signal invalid configuration early, before any work is done.
			panic(ErrBadBucketCount.Error())
		}
		o.BucketCount = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as a starting point for further functional-option overrides.
func DefaultOptions() Options {
	return Options{BucketCount: DefaultBucketCount}
}

// clone returns a fresh copy of seq. Every sort starts from a clone so the
// caller-visible input is never mutated.
func clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)

	return out
}
