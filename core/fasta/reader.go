// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"psdm-core/align"
)

// ReadAlignment parses FASTA from r into an Alignment, applying tr to every
// sequence unless tr.Skip(). Every record must have the same sequence length;
// expectLen > 0 additionally pins that length up front (used when a second
// alignment must match the first). Record names are the first
// whitespace-delimited token of the header line.
func ReadAlignment(r io.Reader, tr align.Transformer, expectLen int) (*align.Alignment, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	aln := &align.Alignment{}
	seqLen := expectLen

	var (
		name []byte
		seq  []byte
		have bool
	)
	flush := func() error {
		if !have {
			return nil
		}
		if seqLen > 0 && len(seq) != seqLen {
			return &LengthError{ID: string(name), Want: seqLen, Got: len(seq)}
		}
		if seqLen == 0 {
			seqLen = len(seq)
		}
		aln.Names = append(aln.Names, name)
		aln.Seqs = append(aln.Seqs, seq)
		return nil
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			name = parseHeaderID(line[1:])
			seq = nil
			have = true
			continue
		}
		if !have {
			return nil, &ParseError{Msg: "sequence data before first '>' header"}
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if !tr.Skip() {
		for _, s := range aln.Seqs {
			tr.Apply(s)
		}
	}
	return aln, nil
}

// LoadAlignment opens path ("-" for stdin, gzip handled transparently) and
// reads it as an alignment.
func LoadAlignment(path string, tr align.Transformer, expectLen int) (*align.Alignment, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadAlignment(rc, tr, expectLen)
}

func parseHeaderID(hdr []byte) []byte {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		hdr = hdr[:i]
	}
	return append([]byte(nil), hdr...)
}
