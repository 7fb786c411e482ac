// Package annot post-processes abstract syntax trees produced by an external
// parser whose position metadata is partial.
//
// Given the original source text and a raw AST, one annotation pass attaches
// a parent and a lexical scope reference to every node and reconciles a
// byte-exact half-open [start, end) span and raw source substring per node,
// correcting the upstream parser's known gaps: binary operators reported
// without text, implicit negation wrappers on conditions, while guards
// without position data, synthesized loop step values, and redundant
// enclosing parentheses.
//
// # Quick Start
//
//	root, err := ast.Decode(rawJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := annot.Annotate(source, root); err != nil {
//	    log.Fatal(err)
//	}
//
// After a successful pass, source[n.Meta().Span.Start:n.Meta().Span.End]
// equals n.Meta().Raw for every node except the documented skip cases
// (desugared concatenations, while guards and synthesized step values, which
// have no reliable source representation). Downstream rewriters splice
// source text directly at these offsets.
//
// # Configuration
//
// The [Options] type exposes the positional search window; see
// [AnnotateWithOptions].
//
// # Error Handling
//
// The pass either completes fully or aborts; there is no partial-success
// mode. Errors are returned as specific types for detailed handling:
//   - [GapError]: a node shape/position combination with no reconciliation
//     rule (an upstream parser-coverage bug)
//   - [BracketError]: a grouping character with no counterpart (an internal
//     consistency violation)
//
// # Thread Safety
//
// Each call processes one (source, AST) pair in isolation with no shared
// state. Annotated trees are read-only afterwards and safe for concurrent
// reads.
package annot
