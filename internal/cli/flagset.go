// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"psdm/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError and the grouped
// usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), name, fs) }
	return fs
}

func usage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s – pairwise SNP distance matrix\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage: %s [options] <alignment> [<alignment>]\n\n", name)
	fmt.Fprintln(out, "Compute all pairwise SNP distances within one alignment, or between the")
	fmt.Fprintln(out, "sequences of two alignments when a second file is given. Files may be")
	fmt.Fprintln(out, "gzip-compressed; use '-' to read from STDIN.")

	fmt.Fprintln(out, "\nTransform:")
	fmt.Fprintf(out, "  -c, --case-sensitive        Case matters, i.e. dist(a, A) = 1 [%s]\n", def("case-sensitive"))
	fmt.Fprintf(out, "  -e, --ignored-chars string  Characters never counted as mismatches ('' = none) [%s]\n", def("ignored-chars"))
	fmt.Fprintf(out, "  -s, --sort                  Sort the alignment(s) by record name [%s]\n", def("sort"))

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0 = all CPUs) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output file (default STDOUT)\n")
	fmt.Fprintf(out, "  -l, --long                  Long (melted) table instead of the wide matrix [%s]\n", def("long"))
	fmt.Fprintf(out, "  -d, --delim char            Field delimiter [%s]\n", def("delim"))
	fmt.Fprintf(out, "  -P, --no-progress           Do not show a progress bar [%s]\n", def("no-progress"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress progress and info logging [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}
