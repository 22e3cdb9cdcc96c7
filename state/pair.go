package state

import (
	"cmp"
	"slices"
)

type Pair[Ty1, Ty2 any] struct {
	V1 Ty1
	V2 Ty2
}

// MakeSortedPair orders the two values so that an undirected edge has exactly one representation
func MakeSortedPair[T cmp.Ordered](a, b T) Pair[T, T] {
	if a < b {
		return Pair[T, T]{a, b}
	}
	return Pair[T, T]{b, a}
}

func SortPairs[T1, T2 cmp.Ordered](pairs []Pair[T1, T2]) {
	slices.SortFunc(pairs, func(a, b Pair[T1, T2]) int {
		if c := cmp.Compare(a.V1, b.V1); c != 0 {
			return c
		}
		return cmp.Compare(a.V2, b.V2)
	})
}
