package annot

import (
	"github.com/kolkov/annot/ast"
	"github.com/kolkov/annot/internal/reconcile"
	"github.com/kolkov/annot/internal/scan"
)

// Version is the annot version string.
const Version = "0.1.0"

// Annotate attaches parent and lexical scope references to every node of
// root and reconciles each node's exact byte span and raw source text
// against source. The tree is mutated in place.
//
// The pass is all-or-nothing: on error the tree may be partially annotated
// and must be discarded.
//
// Example:
//
//	root, _ := ast.Decode(rawJSON)
//	if err := annot.Annotate(source, root); err != nil {
//	    log.Fatal(err)
//	}
func Annotate(source string, root ast.Node) error {
	return AnnotateWithOptions(source, root, nil)
}

// AnnotateWithOptions is Annotate with explicit configuration.
// A nil opts uses defaults.
func AnnotateWithOptions(source string, root ast.Node, opts *Options) error {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.applyDefaults()

	f := reconcile.New(source, o.SearchWindow)
	err := ast.Walk(root, func(n ast.Node) error {
		attachScope(n)
		return f.Fix(n)
	})
	if err != nil {
		return convertError(err)
	}
	return nil
}

// attachScope assigns n's lexical scope and absorbs any declaration it
// introduces. The tree root opens the root scope; Function and BoundFunction
// open fresh scopes chained to the enclosing one; every other node inherits
// its parent's scope. Walk has already assigned n's parent.
func attachScope(n ast.Node) {
	b := n.Meta()
	switch n.(type) {
	case *ast.Function, *ast.BoundFunction:
		b.Scope = ast.NewScope(parentScope(n))
	default:
		b.Scope = parentScope(n)
		if b.Scope == nil {
			b.Scope = ast.NewScope(nil)
		}
	}
	b.Scope.Absorb(n)
}

func parentScope(n ast.Node) *ast.Scope {
	if p := n.Meta().Parent; p != nil {
		return p.Meta().Scope
	}
	return nil
}

// convertError maps internal error types to their public counterparts.
func convertError(err error) error {
	switch e := err.(type) {
	case *reconcile.GapError:
		return &GapError{
			Kind:   e.Kind.String(),
			Line:   e.Pos.Line,
			Column: e.Pos.Column,
		}
	case *scan.UnbalancedError:
		return &BracketError{Open: e.Open, Offset: e.Start}
	}
	return err
}
