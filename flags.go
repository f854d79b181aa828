package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/attnviz/internal/flagvalue"
	"go.abhg.dev/attnviz/internal/heatmap"
	"go.abhg.dev/attnviz/internal/highlight"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is prepended to environment variables holding options.
// -batch-size is read from ATTNVIZ_BATCH_SIZE.
const _envPrefix = "ATTNVIZ"

// params holds all arguments for attnviz.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	Title     string
	Output    string
	BatchSize int
	Color     string
	Partial   bool
	Normalize bool
	Highlight styleSwitch
	Demo      bool

	Inputs []string
}

// cliParser parses the command line arguments for attnviz.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("attnviz", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Document:
	flag.StringVar(&p.Title, "title", "", "")
	flag.IntVar(&p.BatchSize, "batch-size", heatmap.DefaultBatchSize, "")
	flag.StringVar(&p.Color, "color", heatmap.DefaultColor, "")
	flag.BoolVar(&p.Partial, "partial", false, "")

	// Input and output:
	flag.StringVar(&p.Output, "out", "-", "")
	flag.BoolVar(&p.Normalize, "normalize", false, "")
	flag.Var(&p.Highlight, "highlight", "")
	flag.BoolVar(&p.Demo, "demo", false, "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	err := ff.Parse(fset, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			// The flag package reports its own errors.
			// ff's config file errors need to be printed.
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "attnviz", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h input"
		// instead of "-h=input".
		// If the argument is a known help topic,
		// take it.
		if _, ok := _helpTopics[Help(args[0])]; ok {
			p.help = Help(args[0])
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.BatchSize <= 0 {
		fmt.Fprintf(cmd.Stderr, "-batch-size must be positive, got %d.\n", p.BatchSize)
		return nil, errInvalidArguments
	}

	p.Inputs = args
	if p.Demo {
		if len(p.Inputs) > 0 {
			fmt.Fprintln(cmd.Stderr, "-demo does not accept input files.")
			UsageHelp.Write(cmd.Stderr)
			return nil, errInvalidArguments
		}

		// The demo corpus fits in a single batch
		// unless a batch size was requested.
		batchSizeSet := false
		fset.Visit(func(f *flag.Flag) {
			if f.Name == "batch-size" {
				batchSizeSet = true
			}
		})
		if !batchSizeSet {
			p.BatchSize = _demoBatchSize
		}
		return p, nil
	}

	if len(p.Title) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide a -title.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if len(p.Inputs) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one input file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// styleSwitch is the -highlight flag.
// It may be passed as "-highlight" to use the default style,
// or as "-highlight=name" to pick a chroma style.
type styleSwitch string

var _ flag.Getter = (*styleSwitch)(nil)

func (s *styleSwitch) Get() any { return string(*s) }

func (s *styleSwitch) String() string { return string(*s) }

func (*styleSwitch) IsBoolFlag() bool { return true }

func (s *styleSwitch) Set(v string) error {
	switch v {
	case "true":
		v = highlight.DefaultStyle
	case "false":
		v = ""
	}
	if len(v) > 0 {
		if _, err := highlight.LookupStyle(v); err != nil {
			return err
		}
	}
	*s = styleSwitch(v)
	return nil
}

// Enabled reports whether highlighting was requested.
func (s *styleSwitch) Enabled() bool {
	return len(*s) > 0
}
