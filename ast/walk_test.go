package ast_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kolkov/annot/ast"
)

// buildTree returns the tree for "a = x + 1" with no metadata, the shape the
// external parser hands over.
func buildTree() (*ast.Assign, *ast.Ident, *ast.Binary, *ast.Ident, *ast.NumberLit) {
	a := &ast.Ident{Name: "a"}
	x := &ast.Ident{Name: "x"}
	one := &ast.NumberLit{Value: "1"}
	sum := &ast.Binary{Op: ast.OpAdd, Left: x, Right: one}
	assign := &ast.Assign{Target: a, Value: sum}
	return assign, a, sum, x, one
}

func TestWalkOrder(t *testing.T) {
	assign, _, _, _, _ := buildTree()

	var kinds []string
	err := ast.Walk(assign, func(n ast.Node) error {
		kinds = append(kinds, n.Kind().String())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}

	want := []string{"Assign", "Ident", "Binary", "Ident", "Number"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("pre-order visit mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkAssignsParents(t *testing.T) {
	assign, a, sum, x, one := buildTree()

	// Parents must be in place before the visit callback runs.
	err := ast.Walk(assign, func(n ast.Node) error {
		if n != ast.Node(assign) && n.Meta().Parent == nil {
			t.Errorf("%s visited without parent", n.Kind())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}

	tests := []struct {
		name   string
		node   ast.Node
		parent ast.Node
	}{
		{"root", assign, nil},
		{"target", a, assign},
		{"value", sum, assign},
		{"left operand", x, sum},
		{"right operand", one, sum},
	}
	for _, tt := range tests {
		if got := tt.node.Meta().Parent; got != tt.parent {
			t.Errorf("%s: parent = %v, want %v", tt.name, got, tt.parent)
		}
	}
}

func TestWalkStopsOnError(t *testing.T) {
	assign, _, _, _, _ := buildTree()
	boom := errors.New("boom")

	visited := 0
	err := ast.Walk(assign, func(n ast.Node) error {
		visited++
		if _, ok := n.(*ast.Binary); ok {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Fatalf("Walk error = %v, want %v", err, boom)
	}
	if visited != 3 { // Assign, Ident, Binary
		t.Errorf("visited %d nodes before abort, want 3", visited)
	}
}

func TestWalkSkipsNilChildren(t *testing.T) {
	cond := &ast.Conditional{
		Cond: &ast.Ident{Name: "x"},
		Then: &ast.Ident{Name: "y"},
		Else: nil,
	}
	count := 0
	err := ast.Walk(cond, func(ast.Node) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	if count != 3 {
		t.Errorf("visited %d nodes, want 3", count)
	}
}

func TestLeftRight(t *testing.T) {
	x := &ast.Ident{Name: "x"}
	y := &ast.Ident{Name: "y"}

	tests := []struct {
		name string
		node ast.Node
		ok   bool
	}{
		{"Binary", &ast.Binary{Op: ast.OpAdd, Left: x, Right: y}, true},
		{"Concat", &ast.Concat{Left: x, Right: y}, true},
		{"Assign", &ast.Assign{Target: x, Value: y}, true},
		{"Unary", &ast.Unary{Op: ast.OpNot, Expr: x}, false},
		{"Ident", x, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right, ok := ast.LeftRight(tt.node)
			if ok != tt.ok {
				t.Fatalf("LeftRight ok = %v, want %v", ok, tt.ok)
			}
			if ok && (left != ast.Node(x) || right != ast.Node(y)) {
				t.Errorf("LeftRight = (%v, %v), want (x, y)", left, right)
			}
		})
	}
}
