// attnviz renders attention weights over tokens
// as a LaTeX heatmap document.
//
// See -help for usage.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/attnviz/internal/corpus"
	"go.abhg.dev/attnviz/internal/errdefer"
	"go.abhg.dev/attnviz/internal/heatmap"
	"go.abhg.dev/attnviz/internal/highlight"
)

// _demoBatchSize puts the whole demo corpus in one batch.
var _demoBatchSize = len(corpus.Sample())

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("attnviz: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugW, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, debugW)

	title := opts.Title
	if opts.Demo && len(title) == 0 {
		title = corpus.SampleTitle
	}

	gen := Generator{
		Log:    log.New(debugW, "", 0),
		Loader: &corpus.Loader{Normalize: opts.Normalize},
		Renderer: &heatmap.Renderer{
			Title:     title,
			BatchSize: opts.BatchSize,
			Color:     opts.Color,
			Partial:   opts.Partial,
			Log:       log.New(cmd.Stderr, "attnviz: warning: ", 0),
		},
		Stdout: cmd.Stdout,
	}

	if opts.Highlight.Enabled() {
		style, err := highlight.LookupStyle(string(opts.Highlight))
		if err != nil {
			return errtrace.Wrap(err)
		}
		gen.Highlighter = &highlight.Highlighter{Style: style}
	}

	var examples []heatmap.Example
	if opts.Demo {
		examples = corpus.Sample()
	} else {
		examples, err = gen.Load(opts.Inputs)
		if err != nil {
			return errtrace.Wrap(err)
		}
	}

	return errtrace.Wrap(gen.Generate(opts.Output, examples))
}
