// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"psdm-core/align"
	"psdm-core/fasta"
	"psdm-core/pairwise"
	"psdm/internal/cli"
	"psdm/internal/progress"
	"psdm/internal/version"
	"psdm/internal/writers"
)

// Exit codes: 0 success (broken pipe included), 2 usage or input errors,
// 3 output errors.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("psdm")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "psdm version %s\n", version.Version)
		return 0
	}

	logger := log.New()
	logger.SetOutput(stderr)
	if opts.Quiet {
		logger.SetLevel(log.WarnLevel)
	}

	tr := align.Transformer{
		CaseSensitive: opts.CaseSensitive,
		Ignored:       align.ParseIgnored(opts.IgnoredChars),
	}

	// Load the alignment(s); two files load concurrently, each internally
	// validated for equal sequence lengths.
	loadStart := time.Now()
	var primary, secondary *align.Alignment
	g, _ := errgroup.WithContext(parent)
	g.Go(func() error {
		var err error
		if primary, err = fasta.LoadAlignment(opts.Alignments[0], tr, 0); err != nil {
			return fmt.Errorf("failed to load first alignment %s: %w", opts.Alignments[0], err)
		}
		return nil
	})
	if len(opts.Alignments) == 2 {
		g.Go(func() error {
			var err error
			if secondary, err = fasta.LoadAlignment(opts.Alignments[1], tr, 0); err != nil {
				return fmt.Errorf("failed to load second alignment %s: %w", opts.Alignments[1], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	// Cross-file lengths must match before any comparison. The secondary's
	// first record carries the offending identifier, as it is the first
	// record that would have failed a sequential load.
	if secondary != nil && primary.Len() > 0 && secondary.Len() > 0 &&
		primary.SeqLen() != secondary.SeqLen() {
		lerr := &fasta.LengthError{
			ID:   string(secondary.Names[0]),
			Want: primary.SeqLen(),
			Got:  secondary.SeqLen(),
		}
		fmt.Fprintln(stderr, lerr)
		return 2
	}
	logger.Infof("loaded %d sequence(s) in %s", totalRecords(primary, secondary), time.Since(loadStart))

	if opts.Sort {
		primary.SortByName()
		if secondary != nil {
			secondary.SortByName()
		}
	}

	// Column labels come from the first file; row labels from the second
	// file when present, else also the first.
	cols, rows := primary.Names, primary.Names

	var nPairs int
	if secondary == nil {
		nPairs = primary.Len() * (primary.Len() + 1) / 2
	} else {
		nPairs = primary.Len() * secondary.Len()
		rows = secondary.Names
	}

	bar := progress.New(int64(nPairs), stderr, !opts.NoProgress && !opts.Quiet)
	runner := pairwise.Runner{Threads: opts.Threads, OnProgress: bar.Observe}

	calcStart := time.Now()
	var m *pairwise.Matrix
	if secondary == nil {
		pairs := pairwise.SelfPairs(primary.Len())
		dists := runner.SelfDistances(pairs, primary.Seqs)
		m = pairwise.SelfMatrix(primary.Len(), pairs, dists)
	} else {
		pairs := pairwise.CrossPairs(primary.Len(), secondary.Len())
		dists := runner.CrossDistances(pairs, primary.Seqs, secondary.Seqs)
		m = pairwise.CrossMatrix(primary.Len(), secondary.Len(), dists)
	}
	bar.Wait()
	logger.Infof("computed %d pairwise distance(s) in %s", nPairs, time.Since(calcStart))

	out := stdout
	var outFile *os.File
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(stderr, "failed to create output file: %v\n", err)
			return 3
		}
		outFile = f
		out = f
	}

	shape := writers.FormatWide
	if opts.Long {
		shape = writers.FormatLong
	}
	bw := bufio.NewWriter(out)
	werr := writers.Write(shape, bw, writers.Table{
		Delim:    opts.Delim[0],
		ColNames: cols,
		RowNames: rows,
		Matrix:   m,
	})
	if werr == nil {
		werr = bw.Flush()
	}
	if outFile != nil {
		if cerr := outFile.Close(); werr == nil {
			werr = cerr
		}
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	return 0
}

// Run parses argv and executes with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func totalRecords(a, b *align.Alignment) int {
	n := a.Len()
	if b != nil {
		n += b.Len()
	}
	return n
}
