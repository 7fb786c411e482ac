package ast_test

import (
	"testing"

	"github.com/kolkov/annot/ast"
)

// Every concrete node type must satisfy Node. The embedded Base field and
// the promoted Meta accessor carry different names, so the field cannot
// shadow the method.
var _ = []ast.Node{
	(*ast.Program)(nil),
	(*ast.Function)(nil),
	(*ast.BoundFunction)(nil),
	(*ast.Conditional)(nil),
	(*ast.While)(nil),
	(*ast.For)(nil),
	(*ast.RangeExpr)(nil),
	(*ast.Binary)(nil),
	(*ast.Concat)(nil),
	(*ast.Unary)(nil),
	(*ast.Assign)(nil),
	(*ast.Call)(nil),
	(*ast.Return)(nil),
	(*ast.Ident)(nil),
	(*ast.NumberLit)(nil),
	(*ast.StringLit)(nil),
}

func TestMetaSharedThroughInterface(t *testing.T) {
	id := &ast.Ident{Name: "x"}
	var n ast.Node = id

	// The accessor returns the embedded metadata itself, not a copy:
	// mutations through the interface land on the concrete node.
	n.Meta().Raw = "x"
	n.Meta().SetSpan(4, 5)
	if id.Raw != "x" || !id.HasSpan || id.Span != (ast.Span{Start: 4, End: 5}) {
		t.Errorf("metadata not shared: raw=%q hasSpan=%v span=%+v", id.Raw, id.HasSpan, id.Span)
	}

	// The embedded field remains directly addressable alongside the method.
	id.Base.Column = 5
	if n.Meta().Column != 5 {
		t.Errorf("Column = %d, want 5", n.Meta().Column)
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{(*ast.Program)(nil), "Program"},
		{(*ast.BoundFunction)(nil), "BoundFunction"},
		{(*ast.RangeExpr)(nil), "Range"},
		{(*ast.Concat)(nil), "Concat"},
		{(*ast.NumberLit)(nil), "Number"},
		{(*ast.StringLit)(nil), "String"},
	}
	for _, tt := range tests {
		if got := tt.node.Kind().String(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}
