// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("psdm-test")
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opt, err := parse(t, "aln.fa")
	require.NoError(t, err)
	require.Equal(t, []string{"aln.fa"}, opt.Alignments)
	require.False(t, opt.CaseSensitive)
	require.Equal(t, "N-", opt.IgnoredChars)
	require.Equal(t, ",", opt.Delim)
	require.Equal(t, 0, opt.Threads)
	require.False(t, opt.Long)
	require.Empty(t, opt.Output)
}

func TestTwoAlignments(t *testing.T) {
	opt, err := parse(t, "a.fa", "b.fa")
	require.NoError(t, err)
	require.Equal(t, []string{"a.fa", "b.fa"}, opt.Alignments)
}

func TestFlagsInterleavedWithPositionals(t *testing.T) {
	opt, err := parse(t, "a.fa", "--long", "-t", "4", "b.fa", "-d", "\t")
	require.NoError(t, err)
	require.Equal(t, []string{"a.fa", "b.fa"}, opt.Alignments)
	require.True(t, opt.Long)
	require.Equal(t, 4, opt.Threads)
	require.Equal(t, "\t", opt.Delim)
}

func TestStdinPositional(t *testing.T) {
	opt, err := parse(t, "-")
	require.NoError(t, err)
	require.Equal(t, []string{"-"}, opt.Alignments)
}

func TestEmptyIgnoredChars(t *testing.T) {
	opt, err := parse(t, "--ignored-chars=", "aln.fa")
	require.NoError(t, err)
	require.Empty(t, opt.IgnoredChars)
}

func TestAliases(t *testing.T) {
	opt, err := parse(t, "-c", "-s", "-l", "-P", "-q", "-e", "NX-", "-o", "out.csv", "aln.fa")
	require.NoError(t, err)
	require.True(t, opt.CaseSensitive)
	require.True(t, opt.Sort)
	require.True(t, opt.Long)
	require.True(t, opt.NoProgress)
	require.True(t, opt.Quiet)
	require.Equal(t, "NX-", opt.IgnoredChars)
	require.Equal(t, "out.csv", opt.Output)
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		want string
	}{
		{"no alignments", nil, "alignment file is required"},
		{"three alignments", []string{"a.fa", "b.fa", "c.fa"}, "at most two"},
		{"negative threads", []string{"--threads", "-1", "a.fa"}, "--threads"},
		{"multi-char delim", []string{"--delim", "::", "a.fa"}, "--delim"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.argv...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestHelpRequested(t *testing.T) {
	_, err := parse(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	opt, err := parse(t, "--version")
	require.NoError(t, err)
	require.True(t, opt.Version)
}
