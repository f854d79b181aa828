// Package highlight colors LaTeX source for display in a terminal.
//
// It is used to preview generated heatmap documents
// when they are written to standard output.
package highlight
