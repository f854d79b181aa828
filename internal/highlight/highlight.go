package highlight

import (
	"io"
	"sync"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// DefaultFormatter is the chroma formatter used when none is requested.
const DefaultFormatter = "terminal256"

// Highlighter writes LaTeX source with syntax coloring.
type Highlighter struct {
	// Style used for coloring.
	// Defaults to PlainStyle.
	Style *chroma.Style

	// Formatter is the name of the chroma formatter to write with,
	// e.g. "terminal256", "terminal16m", or "html".
	// Defaults to DefaultFormatter.
	Formatter string

	once      sync.Once
	lexer     chroma.Lexer
	formatter chroma.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		lexer := lexers.Get("tex")
		if lexer == nil {
			lexer = lexers.Fallback
		}
		h.lexer = chroma.Coalesce(lexer)

		name := h.Formatter
		if len(name) == 0 {
			name = DefaultFormatter
		}
		h.formatter = formatters.Get(name)

		if h.Style == nil {
			h.Style = PlainStyle
		}
	})
}

// Highlight writes src to w with syntax coloring.
func (h *Highlighter) Highlight(w io.Writer, src string) error {
	h.init()

	it, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(h.formatter.Format(w, h.Style, it))
}
