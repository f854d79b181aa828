package main

import (
	"bytes"
	"io"
	"log"

	"braces.dev/errtrace"
	"go.abhg.dev/attnviz/internal/corpus"
	"go.abhg.dev/attnviz/internal/heatmap"
	"go.abhg.dev/attnviz/internal/highlight"
)

// Loader reads examples from an input file.
type Loader interface {
	LoadFile(path string) ([]heatmap.Example, error)
}

var _ Loader = (*corpus.Loader)(nil)

// Renderer writes examples as a heatmap document.
type Renderer interface {
	Render(io.Writer, []heatmap.Example) error
	RenderFile(string, []heatmap.Example) error
}

var _ Renderer = (*heatmap.Renderer)(nil)

// Highlighter colors LaTeX source for the terminal.
type Highlighter interface {
	Highlight(io.Writer, string) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Generator loads examples and renders them to a document.
//
// It separates main from the program's core logic
// to aid in testability.
type Generator struct {
	Log      *log.Logger
	Loader   Loader
	Renderer Renderer

	// Highlighter is used only when writing to Stdout.
	// If nil, output is written unaltered.
	Highlighter Highlighter

	// Stdout receives the document if the output path is "-".
	Stdout io.Writer
}

// Load reads examples from all paths in order.
func (g *Generator) Load(paths []string) ([]heatmap.Example, error) {
	var examples []heatmap.Example
	for _, path := range paths {
		exs, err := g.Loader.LoadFile(path)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		g.Log.Printf("Loaded %d examples from %v", len(exs), path)
		examples = append(examples, exs...)
	}
	return examples, nil
}

// Generate renders examples to the file at out,
// or to Stdout if out is "-".
func (g *Generator) Generate(out string, examples []heatmap.Example) error {
	g.Log.Printf("Rendering %d examples to %v", len(examples), out)

	if out != "-" {
		return errtrace.Wrap(g.Renderer.RenderFile(out, examples))
	}

	if g.Highlighter == nil {
		return errtrace.Wrap(g.Renderer.Render(g.Stdout, examples))
	}

	var buff bytes.Buffer
	err := g.Renderer.Render(&buff, examples)
	// Show whatever was rendered, even on failure.
	if herr := g.Highlighter.Highlight(g.Stdout, buff.String()); err == nil {
		err = herr
	}
	return errtrace.Wrap(err)
}
