package annot

import (
	"github.com/kolkov/annot/ast"
	"github.com/kolkov/annot/internal/scan"
)

// IsSurroundedBy reports whether n's source text is immediately and exactly
// enclosed by a matching pair of grouping characters: the byte just before
// the node's span equals open, and its counterpart sits exactly at the
// node's end offset. Downstream rewriters use this to decide whether a
// node's text is wrapped in removable grouping characters.
//
// The check is independent of the annotation pass; it requires only that
// n carries a valid span.
func IsSurroundedBy(n ast.Node, open byte, source string) bool {
	b := n.Meta()
	if !b.HasSpan || b.Span.Start < 1 || b.Span.End > len(source) {
		return false
	}
	at := b.Span.Start - 1
	if source[at] != open {
		return false
	}
	end, err := scan.FindCounterpart(open, source, at)
	return err == nil && end == b.Span.End
}
