package highlight

import (
	"sort"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the name of the style used when none is requested.
const DefaultStyle = "plain"

// PlainStyle is a minimal style for LaTeX source.
// Commands stand out, braces and text are left alone,
// and comments fade slightly.
var PlainStyle = chroma.MustNewStyle(DefaultStyle, chroma.StyleEntries{
	chroma.Comment:       "#666666",
	chroma.Keyword:       "#4070a0",
	chroma.NameBuiltin:   "#4070a0",
	chroma.NameTag:       "#4070a0",
	chroma.LiteralString: "#2f8040",
})

func init() {
	styles.Register(PlainStyle)
}

// LookupStyle returns the registered chroma style with the given name.
// An empty name selects DefaultStyle.
func LookupStyle(name string) (*chroma.Style, error) {
	if len(name) == 0 {
		name = DefaultStyle
	}
	if s, ok := styles.Registry[name]; ok {
		return s, nil
	}
	return nil, errtrace.Errorf("unknown style %q: valid values are %q", name, styleNames())
}

func styleNames() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
