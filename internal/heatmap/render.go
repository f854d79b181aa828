package heatmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"braces.dev/errtrace"
	"go.abhg.dev/attnviz/internal/errdefer"
)

const (
	// DefaultBatchSize is the number of examples per batch
	// used by the command line.
	DefaultBatchSize = 20

	// DefaultColor is the color used if Renderer.Color is empty.
	DefaultColor = "blue"
)

// Header is written at the top of every document.
// It loads the packages needed for colored boxes and CJK text,
// and opens the document and CJK environments.
const Header = `\documentclass[10pt,a4paper]{article}
\usepackage[left=1.00cm, right=1.00cm, top=1.00cm, bottom=2.00cm]{geometry}
\usepackage{color}
\usepackage{tcolorbox}
\usepackage{CJK}
\usepackage{adjustbox}
\tcbset{width=0.9\textwidth,boxrule=0pt,colback=red,arc=0pt,auto outer arc,left=0pt,right=0pt,boxsep=5pt}
\begin{document}
\begin{CJK*}{UTF8}{gbsn}` + "\n\n"

// Footer closes the environments opened by [Header].
const Footer = `\end{CJK*}
\end{document}`

var (
	// ErrBatchSize indicates that Renderer.BatchSize is not positive.
	ErrBatchSize = errors.New("batch size must be positive")

	// ErrNoTitle indicates that Renderer.Title is empty.
	ErrNoTitle = errors.New("title is required")

	// ErrLengthMismatch is matched by every [*LengthError].
	ErrLengthMismatch = errors.New("token and weight counts differ")
)

// Example is a single labeled sequence of tokens
// with one attention weight per token.
type Example struct {
	Tokens  []string
	Weights []float64
	Label   string
}

// LengthError reports an example whose tokens and weights
// are not index-aligned.
type LengthError struct {
	Batch int // 1-based batch number
	Index int // 1-based position inside the batch
	Label string

	Tokens, Weights int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("batch %d, comment %d (%q): %d tokens but %d weights",
		e.Batch, e.Index, e.Label, e.Tokens, e.Weights)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// Renderer writes examples as a LaTeX heatmap document.
type Renderer struct {
	// Title is the section heading for the document.
	// It is placed into the markup as-is:
	// callers must escape it themselves if needed.
	Title string

	// BatchSize is the number of examples per subsection.
	// It must be positive.
	BatchSize int

	// Color is the name of the LaTeX color to shade tokens with.
	// Defaults to DefaultColor.
	Color string

	// Partial renders trailing examples that do not fill a whole batch
	// as a final, shorter batch.
	// By default, they're dropped.
	Partial bool

	// Log receives warnings about examples that were not rendered.
	// If nil, warnings are discarded.
	Log *log.Logger
}

func (r *Renderer) validate() error {
	if r.BatchSize <= 0 {
		return errtrace.Errorf("%w: got %d", ErrBatchSize, r.BatchSize)
	}
	if len(r.Title) == 0 {
		return errtrace.Wrap(ErrNoTitle)
	}
	return nil
}

func (r *Renderer) color() string {
	if len(r.Color) > 0 {
		return r.Color
	}
	return DefaultColor
}

func (r *Renderer) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}

// RenderFile renders examples into the file at path,
// creating or truncating it.
//
// The file is closed on all paths.
// If rendering fails partway,
// the file is left with everything written up to the failure.
func (r *Renderer) RenderFile(path string, examples []Example) (err error) {
	if err := r.validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	bw := bufio.NewWriter(f)
	defer errdefer.Flush(&err, bw)

	return errtrace.Wrap(r.Render(bw, examples))
}

// Render writes the document for examples to w.
//
// Examples are split into batches of BatchSize in order.
// Unless Partial is set, examples past the last full batch are skipped.
// Rendering stops at the first emitted example
// whose tokens and weights differ in length;
// the footer is not written in that case.
func (r *Renderer) Render(w io.Writer, examples []Example) error {
	if err := r.validate(); err != nil {
		return err
	}

	tokens := make([][]string, len(examples))
	for i, ex := range examples {
		tokens[i] = EscapeTokens(ex.Tokens)
	}

	numBatches := len(examples) / r.BatchSize
	if rem := len(examples) % r.BatchSize; rem > 0 {
		if r.Partial {
			numBatches++
		} else {
			r.logf("skipping %d trailing examples that do not fill a batch of %d", rem, r.BatchSize)
		}
	}
	if numBatches == 0 {
		r.logf("no batches to render: %d examples, batch size %d", len(examples), r.BatchSize)
	}

	color := r.color()
	out := docWriter{w: w}
	out.WriteString(Header)
	out.WriteString(`\section{` + r.Title + "}\n\n")

	for b := 0; b < numBatches; b++ {
		start := b * r.BatchSize
		end := min(start+r.BatchSize, len(examples))

		out.WriteString(`\subsection{Batch ` + strconv.Itoa(b+1) + "}\n\n")
		for i := start; i < end; i++ {
			ex := examples[i]
			out.WriteString(`\subsubsection{Comment ` + strconv.Itoa(i-start+1) + " - " + ex.Label + "}\n\n")

			if len(ex.Tokens) != len(ex.Weights) {
				if out.err != nil {
					return errtrace.Wrap(out.err)
				}
				return errtrace.Wrap(&LengthError{
					Batch:   b + 1,
					Index:   i - start + 1,
					Label:   ex.Label,
					Tokens:  len(ex.Tokens),
					Weights: len(ex.Weights),
				})
			}

			out.WriteString(`\noindent`)
			for k, tok := range tokens[i] {
				out.WriteString(`\colorbox{` + color + "!" + formatWeight(ex.Weights[k]) + `}{\strut ` + tok + "} ")
			}
			out.WriteString("\n\n")
		}
	}

	out.WriteString(Footer)
	return errtrace.Wrap(out.err)
}

// formatWeight prints w in its shortest exact decimal form,
// without an exponent or a trailing ".0".
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// docWriter holds on to the first write error
// so that emission code doesn't need to check every write.
type docWriter struct {
	w   io.Writer
	err error
}

func (dw *docWriter) WriteString(s string) {
	if dw.err != nil {
		return
	}
	_, dw.err = io.WriteString(dw.w, s)
}
