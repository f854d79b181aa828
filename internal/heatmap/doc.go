// Package heatmap renders attention weights over tokens
// as a LaTeX document of colored boxes.
//
// Each [Example] becomes one line of \colorbox commands,
// one per token, whose color intensity is the token's weight.
// Examples are grouped into fixed-size batches,
// each batch under its own subsection.
//
// The output is LaTeX source; compiling it is left to the caller.
package heatmap
