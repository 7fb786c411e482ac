package ast

import (
	"encoding/json"
	"fmt"
)

// jsonNode is the tagged-union wire shape the external parser emits: every
// node has a "kind" field plus the fields relevant to that kind. "raw" and
// "span" are optional; absent values stay absent on the decoded node.
type jsonNode struct {
	Kind   string  `json:"kind"`
	Op     string  `json:"op"`
	Name   string  `json:"name"`
	Raw    *string `json:"raw"`
	Span   *[2]int `json:"span"`
	Line   int     `json:"line"`
	Column int     `json:"column"`

	// Body is an array of nodes for Program and a single node otherwise.
	Body   json.RawMessage   `json:"body"`
	Params []json.RawMessage `json:"params"`
	Args   []json.RawMessage `json:"args"`

	Cond   json.RawMessage `json:"cond"`
	Then   json.RawMessage `json:"then"`
	Else   json.RawMessage `json:"else"`
	From   json.RawMessage `json:"from"`
	To     json.RawMessage `json:"to"`
	Step   json.RawMessage `json:"step"`
	Left   json.RawMessage `json:"left"`
	Right  json.RawMessage `json:"right"`
	Target json.RawMessage `json:"target"`
	Value  json.RawMessage `json:"value"`
	Callee json.RawMessage `json:"callee"`
	Var    json.RawMessage `json:"var"`
	Iter   json.RawMessage `json:"iter"`
	Expr   json.RawMessage `json:"expr"`
}

// Decode builds a raw tree from the external parser's JSON dump.
// The result carries whatever metadata the parser reported; parent and scope
// references are left for the annotation pass.
func Decode(data []byte) (Node, error) {
	return decodeNode(data)
}

func decodeNode(data json.RawMessage) (Node, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var j jsonNode
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("ast: %w", err)
	}

	var n Node
	var err error
	switch j.Kind {
	case "Program":
		var body []json.RawMessage
		if len(j.Body) > 0 {
			if err = json.Unmarshal(j.Body, &body); err != nil {
				return nil, fmt.Errorf("ast: %w", err)
			}
		}
		p := &Program{}
		if p.Body, err = decodeNodes(body); err != nil {
			return nil, err
		}
		n = p
	case "Function", "BoundFunction":
		params, perr := decodeIdents(j.Params)
		if perr != nil {
			return nil, perr
		}
		body, berr := decodeNode(j.Body)
		if berr != nil {
			return nil, berr
		}
		if j.Kind == "Function" {
			n = &Function{Params: params, Body: body}
		} else {
			n = &BoundFunction{Params: params, Body: body}
		}
	case "Conditional":
		c := &Conditional{}
		if c.Cond, err = decodeNode(j.Cond); err != nil {
			return nil, err
		}
		if c.Then, err = decodeNode(j.Then); err != nil {
			return nil, err
		}
		if c.Else, err = decodeNode(j.Else); err != nil {
			return nil, err
		}
		n = c
	case "While":
		w := &While{}
		if w.Cond, err = decodeNode(j.Cond); err != nil {
			return nil, err
		}
		if w.Body, err = decodeNode(j.Body); err != nil {
			return nil, err
		}
		n = w
	case "For":
		f := &For{}
		if f.Var, err = decodeIdent(j.Var); err != nil {
			return nil, err
		}
		if f.Iter, err = decodeNode(j.Iter); err != nil {
			return nil, err
		}
		if f.Body, err = decodeNode(j.Body); err != nil {
			return nil, err
		}
		n = f
	case "Range":
		r := &RangeExpr{}
		if r.From, err = decodeNode(j.From); err != nil {
			return nil, err
		}
		if r.To, err = decodeNode(j.To); err != nil {
			return nil, err
		}
		if r.Step, err = decodeNode(j.Step); err != nil {
			return nil, err
		}
		n = r
	case "Binary":
		b := &Binary{}
		if b.Op, err = binaryOp(j.Op); err != nil {
			return nil, err
		}
		if b.Left, err = decodeNode(j.Left); err != nil {
			return nil, err
		}
		if b.Right, err = decodeNode(j.Right); err != nil {
			return nil, err
		}
		n = b
	case "Concat":
		c := &Concat{}
		if c.Left, err = decodeNode(j.Left); err != nil {
			return nil, err
		}
		if c.Right, err = decodeNode(j.Right); err != nil {
			return nil, err
		}
		n = c
	case "Unary":
		u := &Unary{}
		if u.Op, err = unaryOp(j.Op); err != nil {
			return nil, err
		}
		if u.Expr, err = decodeNode(j.Expr); err != nil {
			return nil, err
		}
		n = u
	case "Assign":
		a := &Assign{}
		if a.Target, err = decodeNode(j.Target); err != nil {
			return nil, err
		}
		if a.Value, err = decodeNode(j.Value); err != nil {
			return nil, err
		}
		n = a
	case "Call":
		c := &Call{}
		if c.Callee, err = decodeNode(j.Callee); err != nil {
			return nil, err
		}
		if c.Args, err = decodeNodes(j.Args); err != nil {
			return nil, err
		}
		n = c
	case "Return":
		r := &Return{}
		if r.Value, err = decodeNode(j.Value); err != nil {
			return nil, err
		}
		n = r
	case "Ident":
		n = &Ident{Name: j.Name}
	case "Number":
		v, verr := decodeString(j.Value)
		if verr != nil {
			return nil, verr
		}
		n = &NumberLit{Value: v}
	case "String":
		v, verr := decodeString(j.Value)
		if verr != nil {
			return nil, verr
		}
		n = &StringLit{Value: v}
	default:
		return nil, fmt.Errorf("ast: unknown node kind %q", j.Kind)
	}

	b := n.Meta()
	if j.Raw != nil {
		b.Raw = *j.Raw
	}
	if j.Span != nil {
		b.SetSpan(j.Span[0], j.Span[1])
	}
	b.Line, b.Column = j.Line, j.Column
	return n, nil
}

func decodeNodes(msgs []json.RawMessage) ([]Node, error) {
	if len(msgs) == 0 {
		return nil, nil
	}
	nodes := make([]Node, 0, len(msgs))
	for _, m := range msgs {
		n, err := decodeNode(m)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeIdents(msgs []json.RawMessage) ([]*Ident, error) {
	if len(msgs) == 0 {
		return nil, nil
	}
	ids := make([]*Ident, 0, len(msgs))
	for _, m := range msgs {
		id, err := decodeIdent(m)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeIdent(msg json.RawMessage) (*Ident, error) {
	n, err := decodeNode(msg)
	if err != nil || n == nil {
		return nil, err
	}
	id, ok := n.(*Ident)
	if !ok {
		return nil, fmt.Errorf("ast: expected Ident, got %s", n.Kind())
	}
	return id, nil
}

func decodeString(msg json.RawMessage) (string, error) {
	if len(msg) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return "", fmt.Errorf("ast: %w", err)
	}
	return s, nil
}

func binaryOp(s string) (Op, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	case "%":
		return OpMod, nil
	case "==":
		return OpEq, nil
	case "!=":
		return OpNe, nil
	case "<":
		return OpLt, nil
	case "<=":
		return OpLe, nil
	case ">":
		return OpGt, nil
	case ">=":
		return OpGe, nil
	case "and":
		return OpAnd, nil
	case "or":
		return OpOr, nil
	}
	return 0, fmt.Errorf("ast: unknown binary operator %q", s)
}

func unaryOp(s string) (Op, error) {
	switch s {
	case "not":
		return OpNot, nil
	case "-":
		return OpNeg, nil
	}
	return 0, fmt.Errorf("ast: unknown unary operator %q", s)
}

// NodeToMap converts an annotated node to a map suitable for JSON
// serialization. The output mirrors the parser's tagged-union wire shape,
// with the reconciled raw/span data and the scope depth added.
func NodeToMap(node Node) map[string]any {
	if node == nil {
		return nil
	}
	b := node.Meta()
	out := map[string]any{"kind": node.Kind().String()}
	if b.Raw != "" {
		out["raw"] = b.Raw
	}
	if b.HasSpan {
		out["span"] = [2]int{b.Span.Start, b.Span.End}
	}
	if b.Line > 0 {
		out["line"] = b.Line
		out["column"] = b.Column
	}
	if b.Scope != nil {
		out["scopeDepth"] = b.Scope.Depth()
	}

	switch n := node.(type) {
	case *Program:
		out["body"] = nodeSlice(n.Body)
	case *Function:
		out["params"] = identSlice(n.Params)
		out["body"] = NodeToMap(n.Body)
	case *BoundFunction:
		out["params"] = identSlice(n.Params)
		out["body"] = NodeToMap(n.Body)
	case *Conditional:
		out["cond"] = NodeToMap(n.Cond)
		out["then"] = NodeToMap(n.Then)
		if n.Else != nil {
			out["else"] = NodeToMap(n.Else)
		}
	case *While:
		out["cond"] = NodeToMap(n.Cond)
		out["body"] = NodeToMap(n.Body)
	case *For:
		if n.Var != nil {
			out["var"] = NodeToMap(n.Var)
		}
		out["iter"] = NodeToMap(n.Iter)
		out["body"] = NodeToMap(n.Body)
	case *RangeExpr:
		out["from"] = NodeToMap(n.From)
		out["to"] = NodeToMap(n.To)
		if n.Step != nil {
			out["step"] = NodeToMap(n.Step)
		}
	case *Binary:
		out["op"] = n.Op.String()
		out["left"] = NodeToMap(n.Left)
		out["right"] = NodeToMap(n.Right)
	case *Concat:
		out["left"] = NodeToMap(n.Left)
		out["right"] = NodeToMap(n.Right)
	case *Unary:
		out["op"] = n.Op.String()
		out["expr"] = NodeToMap(n.Expr)
	case *Assign:
		out["target"] = NodeToMap(n.Target)
		out["value"] = NodeToMap(n.Value)
	case *Call:
		out["callee"] = NodeToMap(n.Callee)
		out["args"] = nodeSlice(n.Args)
	case *Return:
		if n.Value != nil {
			out["value"] = NodeToMap(n.Value)
		}
	case *Ident:
		out["name"] = n.Name
	case *NumberLit:
		out["value"] = n.Value
	case *StringLit:
		out["value"] = n.Value
	}
	return out
}

func nodeSlice(nodes []Node) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NodeToMap(n))
	}
	return out
}

func identSlice(ids []*Ident) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, NodeToMap(id))
	}
	return out
}
