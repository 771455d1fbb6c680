// internal/writers/wide.go
package writers

import (
	"bufio"
	"io"
	"strconv"
)

func init() { Register(FormatWide, writeWide) }

// writeWide renders the matrix shape: an empty top-left cell, column names
// across the header, then one labeled line of distances per row.
func writeWide(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)

	_ = bw.WriteByte(t.Delim)
	for i, name := range t.ColNames {
		if i > 0 {
			_ = bw.WriteByte(t.Delim)
		}
		_, _ = bw.Write(name)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	for r, name := range t.RowNames {
		_, _ = bw.Write(name)
		for _, v := range t.Matrix.Row(r) {
			_ = bw.WriteByte(t.Delim)
			_, _ = bw.WriteString(strconv.FormatUint(v, 10))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
