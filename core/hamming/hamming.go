// core/hamming/hamming.go
package hamming

import "psdm-core/align"

// dist is the per-position rule: a mismatch counts only when both bytes are
// real characters and differ. Either side being the Ignore sentinel matches
// regardless of the other byte.
func dist(a, b byte) uint64 {
	if a != b && a != align.Ignore && b != align.Ignore {
		return 1
	}
	return 0
}

// Distance returns the SNP distance between two equal-length sequences.
// Equal length is a caller contract, guaranteed upstream by the
// alignment-length invariant; it is not re-checked per pair.
func Distance(a, b []byte) uint64 {
	var n uint64
	for i, x := range a {
		n += dist(x, b[i])
	}
	return n
}
