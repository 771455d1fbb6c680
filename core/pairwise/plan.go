// core/pairwise/plan.go
package pairwise

// Pair is one unit of work: compare sequence A of the primary collection
// against sequence B of the other (or the same) collection.
type Pair struct {
	A, B int
}

// SelfPairs enumerates combinations with repetition over one alignment of n
// sequences: every (i, j) with i <= j. Diagonal items are kept so the
// assembled matrix can be labeled uniformly; their distance is 0 by
// definition and the executor never computes them.
func SelfPairs(n int) []Pair {
	pairs := make([]Pair, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs = append(pairs, Pair{A: i, B: j})
		}
	}
	return pairs
}

// CrossPairs enumerates the full cross product between two alignments,
// primary-major: (0,0) … (0,n2-1), (1,0) …
func CrossPairs(n1, n2 int) []Pair {
	pairs := make([]Pair, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			pairs = append(pairs, Pair{A: i, B: j})
		}
	}
	return pairs
}
