// core/fasta/errors.go
package fasta

import "fmt"

// LengthError reports a record whose sequence length differs from the rest
// of the alignment (or from an externally supplied expected length).
type LengthError struct {
	ID   string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("alignment sequences must all be the same length [id: %s]", e.ID)
}

// ParseError reports malformed FASTA input.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "failed to parse record: " + e.Msg }
