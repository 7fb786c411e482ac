// Package ast defines the abstract syntax tree consumed and annotated by
// annot.
//
// The tree is produced by an external parser and arrives with partial
// metadata: raw text and byte spans may be absent or incorrect, and no node
// carries a parent or scope reference. The annotation pass fills all of that
// in via each node's embedded [Base].
//
// Node hierarchy:
//
//	Node (interface)
//	├── Program - top-level body
//	├── Function, BoundFunction - function literals (open new scopes)
//	├── Conditional, While, For - control flow
//	├── RangeExpr - numeric loop range (Step may be parser-synthesized)
//	├── Binary, Concat, Unary, Assign - operators
//	├── Call, Return - calls
//	└── Ident, NumberLit, StringLit - leaves
package ast

// Span is a half-open byte interval [Start, End) into the source text.
type Span struct {
	Start int // inclusive
	End   int // exclusive
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns true if other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Base carries the annotation metadata shared by every node.
// It is embedded in all concrete node types.
type Base struct {
	// Raw is the exact source substring the node denotes.
	// Empty means the parser did not report one; every node with a source
	// representation has non-empty text.
	Raw string

	// Span is the byte range of Raw in the source, valid only when HasSpan.
	// After annotation, source[Span.Start:Span.End] == Raw holds exactly for
	// every node that was not deliberately skipped.
	Span    Span
	HasSpan bool

	// Line and Column are the 1-based position reported by the parser.
	// They may be stale after corrections; Span is authoritative.
	Line, Column int

	// Parent is assigned by Walk before the node is visited; nil at the root.
	// It is a back-reference, not an ownership edge.
	Parent Node

	// Scope is the enclosing lexical scope, assigned during annotation.
	Scope *Scope
}

// Meta returns the node's annotation metadata. Embedding gives every
// concrete node type this method, satisfying the Node interface. The
// accessor is not named after the struct: an embedded Base field would
// shadow a promoted method of the same name.
func (b *Base) Meta() *Base { return b }

// SetSpan records the node's byte range and marks it valid.
func (b *Base) SetSpan(start, end int) {
	b.Span = Span{Start: start, End: end}
	b.HasSpan = true
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Meta returns the node's shared annotation metadata.
	Meta() *Base
	// Kind identifies the syntactic construct.
	Kind() Kind
}

// Kind identifies the syntactic construct a node represents.
type Kind int

const (
	KindProgram Kind = iota
	KindFunction
	KindBoundFunction
	KindConditional
	KindWhile
	KindFor
	KindRange
	KindBinary
	KindConcat
	KindUnary
	KindAssign
	KindCall
	KindReturn
	KindIdent
	KindNumber
	KindString
)

// String returns the kind name used in parser JSON and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindProgram:
		return "Program"
	case KindFunction:
		return "Function"
	case KindBoundFunction:
		return "BoundFunction"
	case KindConditional:
		return "Conditional"
	case KindWhile:
		return "While"
	case KindFor:
		return "For"
	case KindRange:
		return "Range"
	case KindBinary:
		return "Binary"
	case KindConcat:
		return "Concat"
	case KindUnary:
		return "Unary"
	case KindAssign:
		return "Assign"
	case KindCall:
		return "Call"
	case KindReturn:
		return "Return"
	case KindIdent:
		return "Ident"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	default:
		return "unknown"
	}
}

// Op identifies a binary or unary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpNot // unary logical negation
	OpNeg // unary arithmetic negation
)

// String returns the operator's source spelling.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	case OpNeg:
		return "-"
	default:
		return "unknown"
	}
}

// Program is the top-level node. Its scope is the root scope of the tree.
type Program struct {
	Base
	Body []Node
}

func (*Program) Kind() Kind { return KindProgram }

// Function is a function literal. It opens a fresh lexical scope chained to
// the enclosing one.
type Function struct {
	Base
	Params []*Ident
	Body   Node
}

func (*Function) Kind() Kind { return KindFunction }

// BoundFunction is a function literal bound to a receiver value. Like
// Function, it opens a fresh lexical scope.
type BoundFunction struct {
	Base
	Params []*Ident
	Body   Node
}

func (*BoundFunction) Kind() Kind { return KindBoundFunction }

// Conditional is an if/then/else expression. The parser wraps negated
// conditions in a Unary{OpNot} that has no source span of its own.
type Conditional struct {
	Base
	Cond Node
	Then Node
	Else Node
}

func (*Conditional) Kind() Kind { return KindConditional }

// While is a while loop. The parser commonly reports its guard without
// position data.
type While struct {
	Base
	Cond Node
	Body Node
}

func (*While) Kind() Kind { return KindWhile }

// For is a for-in loop over an iterable, typically a RangeExpr.
type For struct {
	Base
	Var  *Ident
	Iter Node
	Body Node
}

func (*For) Kind() Kind { return KindFor }

// RangeExpr is a numeric loop range. Step may be synthesized by the parser
// when the source omits it, in which case its position data is unreliable.
type RangeExpr struct {
	Base
	From Node
	To   Node
	Step Node
}

func (*RangeExpr) Kind() Kind { return KindRange }

// Binary is a binary operator expression.
type Binary struct {
	Base
	Op    Op
	Left  Node
	Right Node
}

func (*Binary) Kind() Kind { return KindBinary }

// Concat is a string concatenation. Desugaring may create one implicitly,
// with no range; such nodes have no direct source representation.
type Concat struct {
	Base
	Left  Node
	Right Node
}

func (*Concat) Kind() Kind { return KindConcat }

// Unary is a unary operator expression. Op is OpNot or OpNeg.
type Unary struct {
	Base
	Op   Op
	Expr Node
}

func (*Unary) Kind() Kind { return KindUnary }

// Assign binds a value to a target. Assigning to a plain identifier
// declares that name in the active scope.
type Assign struct {
	Base
	Target Node
	Value  Node
}

func (*Assign) Kind() Kind { return KindAssign }

// Call is a function call.
type Call struct {
	Base
	Callee Node
	Args   []Node
}

func (*Call) Kind() Kind { return KindCall }

// Return returns a value from a function. Value may be nil.
type Return struct {
	Base
	Value Node
}

func (*Return) Kind() Kind { return KindReturn }

// Ident is an identifier reference.
type Ident struct {
	Base
	Name string
}

func (*Ident) Kind() Kind { return KindIdent }

// NumberLit is a numeric literal. Value keeps the lexical form; the
// annotator never evaluates it.
type NumberLit struct {
	Base
	Value string
}

func (*NumberLit) Kind() Kind { return KindNumber }

// StringLit is a string literal.
type StringLit struct {
	Base
	Value string
}

func (*StringLit) Kind() Kind { return KindString }

// LeftRight reports the operand pair for binary-shaped nodes, the ones whose
// text can be synthesized from their children's spans.
func LeftRight(n Node) (left, right Node, ok bool) {
	switch n := n.(type) {
	case *Binary:
		return n.Left, n.Right, true
	case *Concat:
		return n.Left, n.Right, true
	case *Assign:
		return n.Target, n.Value, true
	}
	return nil, nil, false
}
