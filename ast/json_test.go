package ast_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kolkov/annot/ast"
)

func TestDecode(t *testing.T) {
	input := `{
		"kind": "Program",
		"line": 1, "column": 1,
		"body": [
			{
				"kind": "Assign",
				"raw": "a = (1 + 2)", "line": 1, "column": 1,
				"target": {"kind": "Ident", "name": "a", "raw": "a", "line": 1, "column": 1},
				"value": {
					"kind": "Binary", "op": "+",
					"raw": "(1 + 2)", "line": 1, "column": 6,
					"left":  {"kind": "Number", "value": "1", "raw": "1", "line": 1, "column": 6},
					"right": {"kind": "Number", "value": "2", "raw": "2", "line": 1, "column": 10}
				}
			}
		]
	}`

	got, err := ast.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	want := &ast.Program{
		Base: ast.Base{Line: 1, Column: 1},
		Body: []ast.Node{
			&ast.Assign{
				Base:   ast.Base{Raw: "a = (1 + 2)", Line: 1, Column: 1},
				Target: &ast.Ident{Base: ast.Base{Raw: "a", Line: 1, Column: 1}, Name: "a"},
				Value: &ast.Binary{
					Base:  ast.Base{Raw: "(1 + 2)", Line: 1, Column: 6},
					Op:    ast.OpAdd,
					Left:  &ast.NumberLit{Base: ast.Base{Raw: "1", Line: 1, Column: 6}, Value: "1"},
					Right: &ast.NumberLit{Base: ast.Base{Raw: "2", Line: 1, Column: 10}, Value: "2"},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAbsentMetadata(t *testing.T) {
	// A While guard may arrive with no raw, span or position at all.
	input := `{
		"kind": "While", "raw": "while x do y end", "line": 1, "column": 1,
		"cond": {"kind": "Ident", "name": "x"},
		"body": {"kind": "Ident", "name": "y", "raw": "y", "line": 1, "column": 12}
	}`

	n, err := ast.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	w, ok := n.(*ast.While)
	if !ok {
		t.Fatalf("decoded %T, want *ast.While", n)
	}
	cb := w.Cond.Meta()
	if cb.Raw != "" || cb.HasSpan || cb.Line != 0 {
		t.Errorf("guard metadata = raw=%q hasSpan=%v line=%d, want all absent", cb.Raw, cb.HasSpan, cb.Line)
	}
}

func TestDecodeSpan(t *testing.T) {
	input := `{"kind": "Ident", "name": "x", "raw": "x", "span": [4, 5], "line": 1, "column": 5}`
	n, err := ast.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	b := n.Meta()
	if !b.HasSpan || b.Span != (ast.Span{Start: 4, End: 5}) {
		t.Errorf("span = %+v hasSpan=%v, want [4,5) valid", b.Span, b.HasSpan)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown kind", `{"kind": "Rocket"}`},
		{"unknown binary op", `{"kind": "Binary", "op": "**"}`},
		{"unknown unary op", `{"kind": "Unary", "op": "!"}`},
		{"non-ident parameter", `{"kind": "Function", "params": [{"kind": "Number", "value": "1"}]}`},
		{"malformed json", `{"kind": "Program"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ast.Decode([]byte(tt.input)); err == nil {
				t.Error("Decode succeeded, want error")
			}
		})
	}
}

func TestNodeToMapRoundTrip(t *testing.T) {
	input := `{
		"kind": "Conditional", "raw": "if x then 1 else 2", "line": 1, "column": 1,
		"cond": {"kind": "Ident", "name": "x", "raw": "x", "line": 1, "column": 4},
		"then": {"kind": "Number", "value": "1", "raw": "1", "line": 1, "column": 11},
		"else": {"kind": "Number", "value": "2", "raw": "2", "line": 1, "column": 18}
	}`
	first, err := ast.Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	encoded, err := json.Marshal(ast.NodeToMap(first))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	second, err := ast.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode of re-encoded tree: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestFprint(t *testing.T) {
	n := &ast.Binary{
		Base:  ast.Base{Raw: "x + 1", Line: 1, Column: 1},
		Op:    ast.OpAdd,
		Left:  &ast.Ident{Base: ast.Base{Raw: "x"}, Name: "x"},
		Right: &ast.NumberLit{Base: ast.Base{Raw: "1"}, Value: "1"},
	}
	n.SetSpan(0, 5)

	var sb strings.Builder
	if err := ast.Fprint(&sb, n); err != nil {
		t.Fatalf("Fprint error: %v", err)
	}
	out := sb.String()
	for _, want := range []string{`Binary "+" [0,5) 1:1 raw="x + 1"`, `Ident "x"`, `Number "1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
