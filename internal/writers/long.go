// internal/writers/long.go
package writers

import (
	"bufio"
	"io"
	"strconv"
)

func init() { Register(FormatLong, writeLong) }

// writeLong renders the melted shape: one `col, row, distance` line per
// cell, column-major (all rows of column 0 before any row of column 1).
func writeLong(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	for i, cname := range t.ColNames {
		for j, rname := range t.RowNames {
			_, _ = bw.Write(cname)
			_ = bw.WriteByte(t.Delim)
			_, _ = bw.Write(rname)
			_ = bw.WriteByte(t.Delim)
			_, _ = bw.WriteString(strconv.FormatUint(t.Matrix.At(j, i), 10))
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
