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
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"

	"kmpmatch-core/engine"
	"kmpmatch-core/fasta"

	"kmpmatch/internal/cli"
	"kmpmatch/internal/pipeline"
	"kmpmatch/internal/version"
	"kmpmatch/internal/writers"
)

// RunContext parses argv, runs the matching pipeline, and writes results.
// Exit codes: 0 ok, 2 usage or input errors, 3 pipeline/write errors,
// 130 canceled; zero matches exit with --no-match-exit-code (default 1).
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("kmpmatch")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "kmpmatch version %s\n", version.Version)
		return 0
	}

	logger := newLogger(stderr, opts)

	thr := opts.Workers
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	logger.Info("reading patterns", "file", opts.PatternFile)
	patterns, err := fasta.ReadAllCtx(ctx, opts.PatternFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	warnDuplicateIDs(logger, patterns)

	// Resolve output destination. "-" streams into the caller's stdout.
	dst := io.Writer(outw)
	var outFile *os.File
	if opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		outFile = f
		dst = bufio.NewWriter(f)
	}

	var bar *pb.ProgressBar
	onRecord := func(fasta.Record) {}
	if opts.Progress {
		total := countGenomeRecords(logger, opts.GenomeFiles)
		bar = pb.Full.Start64(total)
		bar.SetWriter(stderr)
		onRecord = func(fasta.Record) { bar.Increment() }
	}

	logger.Info("scanning", "genomes", len(opts.GenomeFiles), "patterns", len(patterns), "workers", thr)
	eng := engine.New(engine.Config{Workers: thr})
	inCh, writeErr := writers.StartMatchWriter(dst, opts.Format, thr*4)

	total := 0
	perr := pipeline.ForEachMatch(ctx, opts.GenomeFiles, patterns, eng, onRecord,
		func(m engine.Match) error {
			select {
			case inCh <- m:
				total++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	close(inCh)
	if bar != nil {
		bar.Finish()
	}

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if bw, ok := dst.(*bufio.Writer); ok && outFile != nil {
		if err := bw.Flush(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		logger.Info("no matches found")
		return opts.NoMatchExitCode
	}
	logger.Info("done", "matches", total, "output", opts.Output)
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newLogger(stderr io.Writer, opts cli.Options) *log.Logger {
	logger := log.New(stderr)
	logger.SetPrefix("kmpmatch")
	if opts.Quiet {
		logger.SetLevel(log.ErrorLevel)
		return logger
	}
	switch opts.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// warnDuplicateIDs flags repeated pattern identifiers. Duplicates are
// legal (output rows carry the identifier as given) but usually point at
// a malformed pattern file.
func warnDuplicateIDs(logger *log.Logger, patterns []fasta.Record) {
	seen := make(map[string]int, len(patterns))
	for i, p := range patterns {
		if j, dup := seen[p.ID]; dup {
			logger.Warn("duplicate pattern identifier", "id", p.ID, "first", j, "again", i)
			continue
		}
		seen[p.ID] = i
	}
}

// countGenomeRecords pre-counts records for the progress bar total. Stdin
// cannot be counted without consuming it; a failed count degrades to an
// indefinite bar.
func countGenomeRecords(logger *log.Logger, files []string) int64 {
	var total int64
	for _, path := range files {
		if path == "-" {
			logger.Warn("cannot pre-count records on stdin, progress bar will be indefinite")
			return 0
		}
		n, err := fasta.CountRecords(path)
		if err != nil {
			logger.Warn("could not count records, progress bar will be indefinite", "file", path, "err", err)
			return 0
		}
		total += n
	}
	return total
}
