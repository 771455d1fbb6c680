package fasta

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"psdm-core/align"
)

// identity keeps raw bytes so fixtures stay literal.
var identity = align.Transformer{CaseSensitive: true}

func TestReadAlignment(t *testing.T) {
	in := strings.NewReader(">s1\nACGT\n>s0\nCCCC\n")
	aln, err := ReadAlignment(in, identity, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aln.Len() != 2 || string(aln.Names[0]) != "s1" || string(aln.Names[1]) != "s0" {
		t.Fatalf("names: %q", aln.Names)
	}
	if !bytes.Equal(aln.Seqs[0], []byte("ACGT")) || !bytes.Equal(aln.Seqs[1], []byte("CCCC")) {
		t.Fatalf("seqs: %q", aln.Seqs)
	}
}

func TestReadAlignmentMultilineAndDescription(t *testing.T) {
	in := strings.NewReader(">s0 some description\nAC\nGT\n")
	aln, err := ReadAlignment(in, identity, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(aln.Names[0]) != "s0" {
		t.Fatalf("name: %q", aln.Names[0])
	}
	if !bytes.Equal(aln.Seqs[0], []byte("ACGT")) {
		t.Fatalf("seq: %q", aln.Seqs[0])
	}
}

func TestReadAlignmentAppliesTransform(t *testing.T) {
	in := strings.NewReader(">s0\nacgN-\n")
	tr := align.Transformer{Ignored: align.ParseIgnored("N-")}
	aln, err := ReadAlignment(in, tr, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{'A', 'C', 'G', align.Ignore, align.Ignore}
	if !bytes.Equal(aln.Seqs[0], want) {
		t.Fatalf("got %q, want %q", aln.Seqs[0], want)
	}
}

func TestReadAlignmentLengthMismatch(t *testing.T) {
	in := strings.NewReader(">s0\nACGT\n>s1\nCCCCC\n")
	_, err := ReadAlignment(in, identity, 0)
	var le *LengthError
	if !errors.As(err, &le) {
		t.Fatalf("expected LengthError, got %v", err)
	}
	if le.ID != "s1" || !strings.Contains(le.Error(), "[id: s1]") {
		t.Fatalf("bad error: %v", le)
	}
}

func TestReadAlignmentExpectedLength(t *testing.T) {
	in := strings.NewReader(">s0\nACGT\n>s1\nCCCC\n")
	_, err := ReadAlignment(in, identity, 1)
	var le *LengthError
	if !errors.As(err, &le) || le.ID != "s0" {
		t.Fatalf("expected LengthError for s0, got %v", err)
	}
}

func TestReadAlignmentNotFasta(t *testing.T) {
	in := strings.NewReader("@s0\nACGT\n@s1\nGCCC\n")
	_, err := ReadAlignment(in, identity, 0)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestReadAlignmentEmptyInput(t *testing.T) {
	aln, err := ReadAlignment(strings.NewReader(""), identity, 0)
	if err != nil || aln.Len() != 0 {
		t.Fatalf("aln=%v err=%v", aln, err)
	}
}

func TestLoadAlignmentGzip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "aln.fa.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(">s0\nACGT\n>s1\nGCCC\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	aln, err := LoadAlignment(p, identity, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aln.Len() != 2 || !bytes.Equal(aln.Seqs[1], []byte("GCCC")) {
		t.Fatalf("got %q", aln.Seqs)
	}
}

func TestLoadAlignmentMissingFile(t *testing.T) {
	if _, err := LoadAlignment(filepath.Join(t.TempDir(), "nope.fa"), identity, 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}
