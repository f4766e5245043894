package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Permutations yields every ordering of items, in lexicographic order of
// their indices. The yielded slice is reused between iterations.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		index := make([]int, n)
		for i := range index {
			index[i] = i
		}
		perm := make([]T, n)

		for {
			for i, j := range index {
				perm[i] = items[j]
			}
			if !yield(perm) {
				return
			}

			// Next lexicographic permutation of index.
			i := n - 2
			for i >= 0 && index[i] >= index[i+1] {
				i--
			}
			if i < 0 {
				return
			}
			j := n - 1
			for index[j] <= index[i] {
				j--
			}
			index[i], index[j] = index[j], index[i]
			for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
				index[l], index[r] = index[r], index[l]
			}
		}
	}
}
