package annot

import "fmt"

// GapError reports an AST node whose source text could not be reconciled at
// its reported position by any known rule. This is a parser-coverage bug,
// not a user error: the pass aborts rather than best-effort annotating,
// because downstream consumers rely on an all-or-nothing guarantee over
// span exactness.
type GapError struct {
	Kind   string // node kind name
	Line   int    // 1-based line number reported by the parser
	Column int    // 1-based column number reported by the parser
}

func (e *GapError) Error() string {
	return fmt.Sprintf("annot: cannot reconcile %s node at %d:%d", e.Kind, e.Line, e.Column)
}

// BracketError reports an opening grouping character whose counterpart was
// never found. Callers only match from a known opening character, so this
// signals an internal consistency violation in the node's reported text.
type BracketError struct {
	Open byte // opening grouping character

	// Offset of the opening character in the source text. When the failing
	// node carries no span the offset is relative to the node's reported
	// raw text instead, since the text was never located in the source.
	Offset int
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("annot: no counterpart for %q opened at offset %d", e.Open, e.Offset)
}
