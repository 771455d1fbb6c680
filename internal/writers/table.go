// internal/writers/table.go
package writers

import (
	"fmt"
	"io"

	"psdm-core/pairwise"
)

// Table shapes.
const (
	FormatWide = "wide"
	FormatLong = "long"
)

// Table bundles everything a renderer needs. Column names always come from
// the primary alignment; row names from the secondary when one was given,
// else also the primary. Names are written byte-for-byte, never re-encoded.
type Table struct {
	Delim    byte
	ColNames [][]byte
	RowNames [][]byte
	Matrix   *pairwise.Matrix
}

// Table writer registry (shape → renderer). Renderers register from init()
// in their own files.
var tableWriters = map[string]func(io.Writer, Table) error{}

// Register installs a renderer for a shape (last registration wins).
func Register(shape string, fn func(io.Writer, Table) error) { tableWriters[shape] = fn }

// Write dispatches the table to the renderer registered for shape.
func Write(shape string, w io.Writer, t Table) error {
	fn, ok := tableWriters[shape]
	if !ok {
		return fmt.Errorf("unknown table shape %q (no writer registered)", shape)
	}
	return fn(w, t)
}
