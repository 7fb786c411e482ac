package ast

// Walk traverses the tree in pre-order. For every node it assigns the
// node's Parent back-reference before invoking visit, so a visitor can rely
// on the chain of ancestors being in place. Children are visited in their
// natural left-to-right structural order. Traversal stops at the first
// error, which is returned unchanged.
//
// Example: collect every identifier name
//
//	var names []string
//	ast.Walk(root, func(n ast.Node) error {
//	    if id, ok := n.(*ast.Ident); ok {
//	        names = append(names, id.Name)
//	    }
//	    return nil
//	})
func Walk(root Node, visit func(Node) error) error {
	return walk(root, nil, visit)
}

func walk(n, parent Node, visit func(Node) error) error {
	if n == nil {
		return nil
	}
	n.Meta().Parent = parent
	if err := visit(n); err != nil {
		return err
	}

	switch n := n.(type) {
	case *Program:
		for _, c := range n.Body {
			if err := walk(c, n, visit); err != nil {
				return err
			}
		}

	case *Function:
		for _, p := range n.Params {
			if p == nil {
				continue
			}
			if err := walk(p, n, visit); err != nil {
				return err
			}
		}
		return walk(n.Body, n, visit)

	case *BoundFunction:
		for _, p := range n.Params {
			if p == nil {
				continue
			}
			if err := walk(p, n, visit); err != nil {
				return err
			}
		}
		return walk(n.Body, n, visit)

	case *Conditional:
		if err := walk(n.Cond, n, visit); err != nil {
			return err
		}
		if err := walk(n.Then, n, visit); err != nil {
			return err
		}
		return walk(n.Else, n, visit)

	case *While:
		if err := walk(n.Cond, n, visit); err != nil {
			return err
		}
		return walk(n.Body, n, visit)

	case *For:
		if n.Var != nil {
			if err := walk(n.Var, n, visit); err != nil {
				return err
			}
		}
		if err := walk(n.Iter, n, visit); err != nil {
			return err
		}
		return walk(n.Body, n, visit)

	case *RangeExpr:
		if err := walk(n.From, n, visit); err != nil {
			return err
		}
		if err := walk(n.To, n, visit); err != nil {
			return err
		}
		return walk(n.Step, n, visit)

	case *Binary:
		if err := walk(n.Left, n, visit); err != nil {
			return err
		}
		return walk(n.Right, n, visit)

	case *Concat:
		if err := walk(n.Left, n, visit); err != nil {
			return err
		}
		return walk(n.Right, n, visit)

	case *Unary:
		return walk(n.Expr, n, visit)

	case *Assign:
		if err := walk(n.Target, n, visit); err != nil {
			return err
		}
		return walk(n.Value, n, visit)

	case *Call:
		if err := walk(n.Callee, n, visit); err != nil {
			return err
		}
		for _, a := range n.Args {
			if err := walk(a, n, visit); err != nil {
				return err
			}
		}

	case *Return:
		return walk(n.Value, n, visit)

	case *Ident, *NumberLit, *StringLit:
		// no children
	}
	return nil
}
