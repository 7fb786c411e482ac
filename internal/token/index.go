// Package token provides source position types and the line index used to
// translate parser-reported positions into byte offsets.
package token

import "strings"

// LineIndex maps 0-based (line, column) pairs to absolute byte offsets into
// one source string. It is built in a single scan over the source and is
// read-only afterwards, so it is safe for concurrent use.
type LineIndex struct {
	starts []int // byte offset of each line's first character
}

// NewLineIndex builds a LineIndex for src.
func NewLineIndex(src string) *LineIndex {
	starts := make([]int, 1, strings.Count(src, "\n")+1)
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts}
}

// Offset returns the absolute byte offset of the given 0-based line and
// column. Inputs are assumed in range: the upstream parser's line and
// column counts never exceed the source it parsed, so a violation here is
// a programming error, not a recoverable condition.
func (ix *LineIndex) Offset(line, column int) int {
	return ix.starts[line] + column
}

// Lines returns the number of lines in the indexed source.
func (ix *LineIndex) Lines() int {
	return len(ix.starts)
}
