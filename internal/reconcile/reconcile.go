// Package reconcile repairs the raw text and byte spans of AST nodes against
// the original source text.
//
// The upstream parser's position metadata is partial: some node shapes arrive
// without text, reported columns are off by up to a couple of bytes, and some
// reported spans include a redundant pair of enclosing parentheses. The Fixer
// recovers an exact span per node from the node's own metadata where it is
// trustworthy, from child spans where it is not, and from a bounded leftward
// search of the source otherwise.
package reconcile

import (
	"fmt"

	"github.com/kolkov/annot/ast"
	"github.com/kolkov/annot/internal/scan"
	"github.com/kolkov/annot/internal/token"
)

// GapError reports a node whose source text cannot be recovered by any known
// reconciliation rule. It signals a parser-coverage bug, not a user error,
// and is never caught internally.
type GapError struct {
	Kind ast.Kind
	Pos  token.Position
}

func (e *GapError) Error() string {
	return fmt.Sprintf("reconcile: cannot recover source text for %s node at %s", e.Kind, e.Pos)
}

// state tracks per-node resolution so the Fixer tolerates being invoked out
// of the walk order: a parent that needs a child's span resolves the child
// first, and the walk's later visit of that child becomes a no-op.
type state uint8

const (
	unresolved state = iota
	resolvedState
	skippedState
)

// Fixer reconciles raw text and byte spans for the nodes of one source
// string. It is private to one annotation pass and never reused.
type Fixer struct {
	src    string
	index  *token.LineIndex
	window int
	states map[ast.Node]state
}

// New creates a Fixer over src. window is the number of candidate offsets
// probed leftward from the parser-reported position.
func New(src string, window int) *Fixer {
	return &Fixer{
		src:    src,
		index:  token.NewLineIndex(src),
		window: window,
		states: make(map[ast.Node]state),
	}
}

// Skipped reports whether n completed the pass without raw text or span.
// The documented skip cases are not failures: desugared concatenations,
// while guards without position data, and synthesized step values.
func (f *Fixer) Skipped(n ast.Node) bool {
	return f.states[n] == skippedState
}

// Fix resolves n's raw text and span. The node's Parent must already be
// assigned. Idempotent: re-entry for an already-resolved node is a no-op.
func (f *Fixer) Fix(n ast.Node) error {
	if f.states[n] != unresolved {
		return nil
	}
	b := n.Meta()

	// Concatenations produced implicitly during desugaring have no direct
	// source representation and must not be forced into one.
	if _, ok := n.(*ast.Concat); ok && !b.HasSpan {
		f.states[n] = skippedState
		return nil
	}

	if b.Raw == "" {
		switch {
		case isWhileCond(n):
			// While guards commonly arrive without position data and have
			// no reliable standalone text span.
			f.states[n] = skippedState
			return nil

		case isNegatedCond(n):
			// The parser's implicit negation wrapper has no source span of
			// its own; it stands for exactly its inner expression's text.
			inner := n.(*ast.Unary).Expr
			if err := f.Fix(inner); err != nil {
				return err
			}
			ib := inner.Meta()
			if ib.Raw == "" {
				return f.gap(n)
			}
			b.Raw = ib.Raw
			b.Span, b.HasSpan = ib.Span, ib.HasSpan
			b.Line, b.Column = ib.Line, ib.Column

		default:
			left, right, ok := ast.LeftRight(n)
			if !ok || left == nil || right == nil {
				return f.gap(n)
			}
			if err := f.Fix(left); err != nil {
				return err
			}
			if err := f.Fix(right); err != nil {
				return err
			}
			lb, rb := left.Meta(), right.Meta()
			if !lb.HasSpan || !rb.HasSpan {
				return f.gap(n)
			}
			b.Raw = f.src[lb.Span.Start:rb.Span.End]
			b.SetSpan(lb.Span.Start, rb.Span.End)
			b.Line, b.Column = lb.Line, lb.Column
			// The span is exact by construction; no search needed.
			f.states[n] = resolvedState
			_, err := f.shrink(n)
			return err
		}
	}

	return f.place(n)
}

// place finalizes a node whose raw text is known: adopt an already-exact
// span, or locate the text near the reported position, then strip any
// redundant enclosing parentheses.
func (f *Fixer) place(n ast.Node) error {
	b := n.Meta()

	if !b.HasSpan {
		if off, ok := f.search(b); ok {
			b.SetSpan(off, off+len(b.Raw))
		}
	}

	if f.exact(b) {
		f.states[n] = resolvedState
		// An exact match can still be over-wide by one spurious pair of
		// enclosing parentheses.
		_, err := f.shrink(n)
		return err
	}

	// Synthesized step values commonly carry invalid or absent position
	// data and must not abort the pass.
	if isStep(n) {
		f.states[n] = skippedState
		return nil
	}

	applied, err := f.shrink(n)
	if err != nil {
		return err
	}
	if !applied {
		return f.gap(n)
	}
	return nil
}

// exact reports whether b's span denotes exactly its raw text.
func (f *Fixer) exact(b *ast.Base) bool {
	if !b.HasSpan || b.Span.Start < 0 || b.Span.End > len(f.src) || b.Span.Start > b.Span.End {
		return false
	}
	return f.src[b.Span.Start:b.Span.End] == b.Raw
}

// search probes offsets candidate-0 .. candidate-(window-1) for the first
// exact occurrence of b's raw text. The reported position is not always
// exact: leading whitespace and operator tokens push it a couple of bytes
// right of the text's true start, which is why the probe runs leftward.
func (f *Fixer) search(b *ast.Base) (int, bool) {
	if b.Line < 1 || b.Column < 1 || b.Line > f.index.Lines() {
		return 0, false
	}
	cand := f.index.Offset(b.Line-1, b.Column-1)
	for d := 0; d < f.window; d++ {
		off := cand - d
		if off < 0 || off+len(b.Raw) > len(f.src) {
			continue
		}
		if f.src[off:off+len(b.Raw)] == b.Raw {
			return off, true
		}
	}
	return 0, false
}

// shrink strips one redundant pair of enclosing parentheses from n's raw
// text, narrows its span and column to match, and re-runs Fix on the shrunk
// node, which may search again or shrink further. Reports whether a pair was
// stripped. A node already free of enclosing parentheses is left unchanged.
func (f *Fixer) shrink(n ast.Node) (bool, error) {
	b := n.Meta()
	if len(b.Raw) < 2 || b.Raw[0] != '(' {
		return false, nil
	}
	end, err := scan.FindCounterpart('(', b.Raw, 0)
	if err != nil {
		// The scan ran over the node's raw text; report the source offset
		// of the unmatched character when the span locates it.
		if ue, ok := err.(*scan.UnbalancedError); ok && b.HasSpan {
			ue.Start += b.Span.Start
		}
		return false, err
	}
	if end != len(b.Raw)-1 {
		return false, nil
	}
	b.Raw = b.Raw[1 : len(b.Raw)-1]
	if b.HasSpan {
		b.Span.Start++
		b.Span.End--
	}
	b.Column--
	f.states[n] = unresolved
	return true, f.Fix(n)
}

func (f *Fixer) gap(n ast.Node) error {
	b := n.Meta()
	return &GapError{
		Kind: n.Kind(),
		Pos:  token.Position{Line: b.Line, Column: b.Column},
	}
}

// isWhileCond reports whether n is exactly its While parent's guard.
func isWhileCond(n ast.Node) bool {
	w, ok := n.Meta().Parent.(*ast.While)
	return ok && w.Cond == n
}

// isNegatedCond reports whether n is a logical negation standing as its
// Conditional parent's condition.
func isNegatedCond(n ast.Node) bool {
	u, ok := n.(*ast.Unary)
	if !ok || u.Op != ast.OpNot {
		return false
	}
	c, ok := n.Meta().Parent.(*ast.Conditional)
	return ok && c.Cond == n
}

// isStep reports whether n is its Range parent's step value.
func isStep(n ast.Node) bool {
	r, ok := n.Meta().Parent.(*ast.RangeExpr)
	return ok && r.Step == n
}
