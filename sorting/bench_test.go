package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqkit/sorting"
)

// benchData builds a deterministic pseudo-random slice of n ints.
func benchData(n int) []int {
	rng := rand.New(rand.NewSource(1))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(n * 4)
	}

	return data
}

func BenchmarkBubble(b *testing.B) {
	data := benchData(1 << 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Bubble(data)
	}
}

func BenchmarkInsertion(b *testing.B) {
	data := benchData(1 << 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Insertion(data)
	}
}

func BenchmarkMerge(b *testing.B) {
	data := benchData(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Merge(data)
	}
}

func BenchmarkQuick(b *testing.B) {
	data := benchData(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Quick(data)
	}
}

func BenchmarkHeap(b *testing.B) {
	data := benchData(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Heap(data)
	}
}

func BenchmarkCounting(b *testing.B) {
	data := benchData(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Counting(data)
	}
}

func BenchmarkRadix(b *testing.B) {
	data := benchData(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Radix(data)
	}
}
