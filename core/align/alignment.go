// core/align/alignment.go
package align

import (
	"bytes"
	"sort"
)

// Alignment is a loaded multiple-sequence alignment. Names[i] labels
// Seqs[i] and every sequence shares the same length.
type Alignment struct {
	Names [][]byte
	Seqs  [][]byte
}

// Len returns the number of records.
func (a *Alignment) Len() int { return len(a.Seqs) }

// SeqLen returns the shared sequence length (0 for an empty alignment).
func (a *Alignment) SeqLen() int {
	if len(a.Seqs) == 0 {
		return 0
	}
	return len(a.Seqs[0])
}

// SortByName reorders records by name (bytewise ascending). Names and
// sequences move together through one explicit permutation.
func (a *Alignment) SortByName() {
	perm := argsort(a.Names)
	a.Names = applyPermutation(a.Names, perm)
	a.Seqs = applyPermutation(a.Seqs, perm)
}

// argsort returns the permutation that sorts v: v[perm[0]] <= v[perm[1]] <= …
func argsort(v [][]byte) []int {
	perm := make([]int, len(v))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return bytes.Compare(v[perm[i]], v[perm[j]]) < 0
	})
	return perm
}

// applyPermutation returns out with out[k] = v[perm[k]]. perm must hold each
// index of v exactly once, so every element is placed exactly once.
func applyPermutation(v [][]byte, perm []int) [][]byte {
	out := make([][]byte, len(v))
	for k, idx := range perm {
		out[k] = v[idx]
	}
	return out
}
