// core/pairwise/matrix.go
package pairwise

// Matrix is a dense rows×cols grid of distances, stored flat row-major.
type Matrix struct {
	rows, cols int
	cells      []uint64
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, cells: make([]uint64, rows*cols)}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at row r, column c.
func (m *Matrix) At(r, c int) uint64 { return m.cells[r*m.cols+c] }

// Row returns row r as a slice view.
func (m *Matrix) Row(r int) []uint64 { return m.cells[r*m.cols : (r+1)*m.cols] }

func (m *Matrix) set(r, c int, v uint64) { m.cells[r*m.cols+c] = v }

// SelfMatrix assembles results for pairs planned by SelfPairs into a
// symmetric n×n matrix. Each off-diagonal value is mirrored across the
// diagonal, so every cell is written without computing either triangle
// twice; the diagonal stays 0.
func SelfMatrix(n int, pairs []Pair, dists []uint64) *Matrix {
	m := newMatrix(n, n)
	for k, p := range pairs {
		m.set(p.A, p.B, dists[k])
		if p.A != p.B {
			m.set(p.B, p.A, dists[k])
		}
	}
	return m
}

// CrossMatrix assembles results for pairs planned by CrossPairs. The flat
// list is primary-major; the matrix is laid out transposed so that rows
// follow the secondary alignment and columns the primary.
func CrossMatrix(n1, n2 int, dists []uint64) *Matrix {
	m := newMatrix(n2, n1)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			m.set(j, i, dists[i*n2+j])
		}
	}
	return m
}
