package ast

import (
	"fmt"
	"io"
)

// Printer writes a human-readable dump of an annotated tree, one node per
// line with its kind, span, position and raw text. Suitable for debugging
// the reconciliation pass.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the dump of the subtree rooted at node.
func (p *Printer) Print(node Node) error {
	p.printNode(node, 0)
	return p.err
}

// Fprint writes a dump of the subtree rooted at node to w.
func Fprint(w io.Writer, node Node) error {
	return NewPrinter(w).Print(node)
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) printNode(node Node, indent int) {
	if node == nil || p.err != nil {
		return
	}
	for i := 0; i < indent; i++ {
		p.printf("    ")
	}
	p.printf("%s", Describe(node))
	p.printf("\n")

	switch n := node.(type) {
	case *Program:
		for _, c := range n.Body {
			p.printNode(c, indent+1)
		}
	case *Function:
		for _, prm := range n.Params {
			if prm != nil {
				p.printNode(prm, indent+1)
			}
		}
		p.printNode(n.Body, indent+1)
	case *BoundFunction:
		for _, prm := range n.Params {
			if prm != nil {
				p.printNode(prm, indent+1)
			}
		}
		p.printNode(n.Body, indent+1)
	case *Conditional:
		p.printNode(n.Cond, indent+1)
		p.printNode(n.Then, indent+1)
		p.printNode(n.Else, indent+1)
	case *While:
		p.printNode(n.Cond, indent+1)
		p.printNode(n.Body, indent+1)
	case *For:
		if n.Var != nil {
			p.printNode(n.Var, indent+1)
		}
		p.printNode(n.Iter, indent+1)
		p.printNode(n.Body, indent+1)
	case *RangeExpr:
		p.printNode(n.From, indent+1)
		p.printNode(n.To, indent+1)
		p.printNode(n.Step, indent+1)
	case *Binary:
		p.printNode(n.Left, indent+1)
		p.printNode(n.Right, indent+1)
	case *Concat:
		p.printNode(n.Left, indent+1)
		p.printNode(n.Right, indent+1)
	case *Unary:
		p.printNode(n.Expr, indent+1)
	case *Assign:
		p.printNode(n.Target, indent+1)
		p.printNode(n.Value, indent+1)
	case *Call:
		p.printNode(n.Callee, indent+1)
		for _, a := range n.Args {
			p.printNode(a, indent+1)
		}
	case *Return:
		p.printNode(n.Value, indent+1)
	}
}

// Describe returns a one-line summary of a node's kind and annotation state.
func Describe(node Node) string {
	b := node.Meta()
	s := node.Kind().String()
	switch n := node.(type) {
	case *Binary:
		s += fmt.Sprintf(" %q", n.Op.String())
	case *Unary:
		s += fmt.Sprintf(" %q", n.Op.String())
	case *Ident:
		s += fmt.Sprintf(" %q", n.Name)
	case *NumberLit:
		s += fmt.Sprintf(" %q", n.Value)
	case *StringLit:
		s += fmt.Sprintf(" %q", n.Value)
	}
	if b.HasSpan {
		s += fmt.Sprintf(" [%d,%d)", b.Span.Start, b.Span.End)
	} else {
		s += " [-]"
	}
	if b.Line > 0 {
		s += fmt.Sprintf(" %d:%d", b.Line, b.Column)
	}
	if b.Raw != "" {
		s += fmt.Sprintf(" raw=%q", b.Raw)
	}
	if b.Scope != nil {
		s += fmt.Sprintf(" scope=%d", b.Scope.Depth())
	}
	return s
}
