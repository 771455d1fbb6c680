// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"psdm/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// 1 or 2 positional alignment paths; a second file switches to
	// between-file mode. '-' reads from stdin.
	Alignments []string

	// Transform
	CaseSensitive bool
	IgnoredChars  string
	Sort          bool

	// Performance
	Threads int

	// Output
	Output     string // destination file; empty = stdout
	Long       bool
	Delim      string
	NoProgress bool

	// Misc
	Quiet   bool
	Version bool
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags plus positional alignment paths.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Transform
	fs.BoolVar(&opt.CaseSensitive, "case-sensitive", false, "case matters [false]")
	fs.BoolVar(&opt.CaseSensitive, "c", false, "alias of --case-sensitive")
	fs.StringVar(&opt.IgnoredChars, "ignored-chars", "N-", "characters never counted as mismatches [N-]")
	fs.StringVar(&opt.IgnoredChars, "e", "N-", "alias of --ignored-chars")
	fs.BoolVar(&opt.Sort, "sort", false, "sort the alignment(s) by record name [false]")
	fs.BoolVar(&opt.Sort, "s", false, "alias of --sort")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "", "output file (default stdout)")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.BoolVar(&opt.Long, "long", false, "long (melted) output table [false]")
	fs.BoolVar(&opt.Long, "l", false, "alias of --long")
	fs.StringVar(&opt.Delim, "delim", ",", "field delimiter [,]")
	fs.StringVar(&opt.Delim, "d", ",", "alias of --delim")
	fs.BoolVar(&opt.NoProgress, "no-progress", false, "do not show a progress bar [false]")
	fs.BoolVar(&opt.NoProgress, "P", false, "alias of --no-progress")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and info logging [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	paths, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Alignments = paths

	// Validation
	switch {
	case len(opt.Alignments) == 0:
		return opt, errors.New("an alignment file is required")
	case len(opt.Alignments) > 2:
		return opt, fmt.Errorf("at most two alignment files are accepted, got %d", len(opt.Alignments))
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if len(opt.Delim) != 1 {
		return opt, fmt.Errorf("--delim must be a single character, got %q", opt.Delim)
	}
	return opt, nil
}
