package mython

// Node is the single operation every AST node implements: evaluate
// against a closure and a context, returning a holder. Statement and
// Expression name the same interface for the two families the grammar
// distinguishes: statements are executed for effect and usually
// return the empty holder, expressions are executed for their value.
// Nothing in the type system enforces that split; it is a naming
// convention carried from the grammar.
type Node interface {
	Execute(closure *Closure, ctx Context) (Holder, error)
}

type Statement = Node
type Expression = Node
