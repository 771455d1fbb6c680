// core/align/transform.go
package align

// Ignore is the sentinel byte substituted for every ignored character.
// A position holding it never counts as a mismatch.
const Ignore byte = '.'

// Transformer rewrites raw alignment sequences before any comparison.
type Transformer struct {
	CaseSensitive bool
	Ignored       map[byte]struct{}
}

// ParseIgnored builds an ignored-character set from a flag string.
// An empty string means nothing is ignored.
func ParseIgnored(s string) map[byte]struct{} {
	set := make(map[byte]struct{}, len(s))
	for i := 0; i < len(s); i++ {
		set[s[i]] = struct{}{}
	}
	return set
}

// Skip reports whether Apply would leave every sequence untouched, so the
// loader can bypass the transform pass entirely.
func (t Transformer) Skip() bool { return len(t.Ignored) == 0 && t.CaseSensitive }

// Apply transforms seq in place: fold to upper case unless case-sensitive,
// then replace members of the ignored set with the Ignore sentinel.
// Membership is tested after folding, so case-sensitive callers must list
// both cases of a character they want ignored. Any byte value is accepted,
// and applying twice yields the same bytes.
func (t Transformer) Apply(seq []byte) {
	for i, b := range seq {
		if !t.CaseSensitive && b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
			seq[i] = b
		}
		if _, ok := t.Ignored[b]; ok {
			seq[i] = Ignore
		}
	}
}
