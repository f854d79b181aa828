// Package corpus loads attention heatmap examples from JSON.
//
// Two document shapes are accepted.
// The parallel form holds three index-aligned lists:
//
//	{
//	  "words":     [["This", "script"], ["Change", "this"]],
//	  "attention": [[0, 70], [0, 50]],
//	  "labels":    ["Description", "Experiment"]
//	}
//
// The record form holds one object per example:
//
//	{"examples": [{"tokens": ["This"], "weights": [0], "label": "Description"}]}
package corpus

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/attnviz/internal/errdefer"
	"go.abhg.dev/attnviz/internal/heatmap"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrListLength indicates that the words, attention, and labels lists
	// of a parallel document have different lengths.
	ErrListLength = errors.New("words, attention, and labels must have the same length")

	// ErrMixedShapes indicates a document that uses both
	// the parallel and the record form.
	ErrMixedShapes = errors.New(`"examples" cannot be combined with "words", "attention", or "labels"`)
)

type document struct {
	Words     [][]string  `json:"words"`
	Attention [][]float64 `json:"attention"`
	Labels    []string    `json:"labels"`

	Examples []record `json:"examples"`
}

func (d *document) parallel() bool {
	return d.Words != nil || d.Attention != nil || d.Labels != nil
}

type record struct {
	Tokens  []string  `json:"tokens"`
	Weights []float64 `json:"weights"`
	Label   string    `json:"label"`
}

// Loader reads examples from JSON documents.
type Loader struct {
	// Normalize converts tokens and labels to Unicode NFC
	// so that composed and decomposed forms render the same.
	Normalize bool
}

// LoadFile loads examples from the JSON file at path.
func (l *Loader) LoadFile(path string) (_ []heatmap.Example, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	examples, err := l.Load(f)
	if err != nil {
		return nil, errtrace.Errorf("%v: %w", path, err)
	}
	return examples, nil
}

// Load decodes a single JSON document from r.
//
// Token and weight counts of individual examples are not checked here:
// the renderer reports those when it reaches them.
func (l *Loader) Load(r io.Reader) ([]heatmap.Example, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errtrace.Errorf("decode: %w", err)
	}

	var examples []heatmap.Example
	switch {
	case doc.parallel() && doc.Examples != nil:
		return nil, errtrace.Wrap(ErrMixedShapes)

	case doc.parallel():
		n := len(doc.Words)
		if len(doc.Attention) != n || len(doc.Labels) != n {
			return nil, errtrace.Errorf("%w: got %d, %d, and %d",
				ErrListLength, n, len(doc.Attention), len(doc.Labels))
		}

		examples = make([]heatmap.Example, n)
		for i := range doc.Words {
			examples[i] = heatmap.Example{
				Tokens:  doc.Words[i],
				Weights: doc.Attention[i],
				Label:   doc.Labels[i],
			}
		}

	default:
		examples = make([]heatmap.Example, len(doc.Examples))
		for i, rec := range doc.Examples {
			examples[i] = heatmap.Example(rec)
		}
	}

	if l.Normalize {
		for i := range examples {
			normalize(&examples[i])
		}
	}
	return examples, nil
}

func normalize(ex *heatmap.Example) {
	ex.Label = norm.NFC.String(ex.Label)
	tokens := make([]string, len(ex.Tokens))
	for i, tok := range ex.Tokens {
		tokens[i] = norm.NFC.String(tok)
	}
	ex.Tokens = tokens
}

// Sample returns a small demonstration corpus.
func Sample() []heatmap.Example {
	return []heatmap.Example{
		{
			Tokens:  []string{"This", "script", "generates", "heatmaps"},
			Weights: []float64{0, 70, 0, 80},
			Label:   "Description",
		},
		{
			Tokens:  []string{"Change", "this", "to", "try", "the", "visualizer"},
			Weights: []float64{0, 50, 0, 0, 0, 70},
			Label:   "Experiment",
		},
	}
}

// SampleTitle is the section title used with [Sample].
const SampleTitle = "Generating heatmaps"
