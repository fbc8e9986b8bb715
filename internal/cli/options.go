// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"kmpmatch/internal/output"
	"kmpmatch/internal/version"
)

// DefaultOutput is the output file written when --output is not given.
const DefaultOutput = "patterns_matches.txt"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	GenomeFiles []string
	PatternFile string

	// Matching
	Workers int

	// Output
	Output string
	Format string

	// Misc
	Progress        bool
	Quiet           bool
	LogLevel        string
	NoMatchExitCode int
	Version         bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: parallel exact DNA pattern matching (Knuth-Morris-Pratt)

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var genomes stringSlice
	fs.Var(&genomes, "genome", "reference FASTA file(s) (repeatable or '-') [*]")
	fs.StringVar(&opt.PatternFile, "patterns", "", "patterns FASTA file [*]")

	fs.IntVar(&opt.Workers, "workers", 4, "number of parallel workers (0 = all CPUs) [4]")

	fs.StringVar(&opt.Output, "output", DefaultOutput, "output file ('-' = stdout) ["+DefaultOutput+"]")
	fs.StringVar(&opt.Format, "format", output.FormatText, "output format: text | json | jsonl [text]")

	fs.BoolVar(&opt.Progress, "progress", false, "show a progress bar while reading the genome [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress informational logging [false]")
	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when zero matches are found [1]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.GenomeFiles = genomes

	// Validation
	if len(opt.GenomeFiles) == 0 {
		return opt, errors.New("at least one --genome file is required")
	}
	if opt.PatternFile == "" {
		return opt, errors.New("--patterns is required")
	}
	if opt.Workers < 0 {
		return opt, errors.New("--workers must be ≥ 0")
	}
	if !output.ValidFormat(opt.Format) {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.Output == "" {
		return opt, errors.New("--output must not be empty")
	}
	if opt.NoMatchExitCode < 0 {
		return opt, errors.New("--no-match-exit-code must be ≥ 0")
	}
	switch opt.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return opt, fmt.Errorf("invalid --log-level %q", opt.LogLevel)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
