package ast

// Scope is a lexical binding environment chained to its enclosing scope.
// One is created for the tree root and one for each Function or
// BoundFunction node; every other node shares its parent's scope. A scope
// lives exactly as long as the tree it annotates.
type Scope struct {
	parent *Scope
	names  map[string][]Node // declaration sites per name
}

// NewScope creates a scope chained to parent. Pass nil for the root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		names:  make(map[string][]Node),
	}
}

// Parent returns the enclosing scope, or nil for the root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Declare records node as a declaration site for name in this scope.
func (s *Scope) Declare(name string, node Node) {
	s.names[name] = append(s.names[name], node)
}

// Lookup searches for name in this scope and all enclosing scopes.
// A miss is not an error: references to globals, or to names assigned only
// later, are legitimately unbound.
func (s *Scope) Lookup(name string) ([]Node, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if decls, ok := scope.names[name]; ok {
			return decls, true
		}
	}
	return nil, false
}

// LookupLocal searches for name only in this scope.
func (s *Scope) LookupLocal(name string) ([]Node, bool) {
	decls, ok := s.names[name]
	return decls, ok
}

// Count returns the number of names declared directly in this scope.
func (s *Scope) Count() int {
	return len(s.names)
}

// Depth returns the number of enclosing scopes above this one.
func (s *Scope) Depth() int {
	d := 0
	for scope := s.parent; scope != nil; scope = scope.parent {
		d++
	}
	return d
}

// Absorb records any declaration n introduces into this scope.
// Declarations are recognized from three shapes: an assignment whose target
// is a plain identifier (the first assignment declares the name in this
// dynamically scoped language), the parameters of a function literal, and a
// for loop's iteration variable. Function parameters land here because the
// function node's own scope is the fresh one its body closes over.
func (s *Scope) Absorb(n Node) {
	switch n := n.(type) {
	case *Assign:
		if id, ok := n.Target.(*Ident); ok {
			s.Declare(id.Name, n)
		}
	case *Function:
		for _, p := range n.Params {
			if p != nil {
				s.Declare(p.Name, p)
			}
		}
	case *BoundFunction:
		for _, p := range n.Params {
			if p != nil {
				s.Declare(p.Name, p)
			}
		}
	case *For:
		if n.Var != nil {
			s.Declare(n.Var.Name, n.Var)
		}
	}
}
