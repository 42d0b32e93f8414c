package mython

import (
	"errors"
	"io"
)

// Assignment stores the evaluated Rhs under Name in the current
// closure, inserting a fresh binding or replacing an existing one,
// and returns the stored holder.
type Assignment struct {
	Pos  Position
	Name string
	Rhs  Expression
}

func (n *Assignment) Execute(closure *Closure, ctx Context) (Holder, error) {
	v, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	closure.Set(n.Name, v)
	return v, nil
}

// FieldAssignment evaluates Receiver, requires it to be a
// ClassInstance, evaluates Rhs, and stores the result into the
// instance's fields under Field.
type FieldAssignment struct {
	Pos      Position
	Receiver Expression
	Field    string
	Rhs      Expression
}

func (n *FieldAssignment) Execute(closure *Closure, ctx Context) (Holder, error) {
	recv, err := n.Receiver.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	inst, ok := TryAs[*Instance](recv)
	if !ok {
		return None(), newRuntimeError("TypeError", n.Pos, "cannot assign field %q: receiver is not a class instance", n.Field)
	}
	v, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	inst.Fields.Set(n.Field, v)
	return v, nil
}

// Print evaluates each of Args in order and writes them to ctx's
// output sink separated by single spaces, with a trailing newline
// always appended; an empty holder prints as the literal None.
type Print struct {
	Pos  Position
	Args []Expression
}

func (n *Print) Execute(closure *Closure, ctx Context) (Holder, error) {
	w := ctx.Output()
	for i, arg := range n.Args {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return None(), err
			}
		}
		v, err := arg.Execute(closure, ctx)
		if err != nil {
			return None(), err
		}
		if err := WriteValue(w, v, ctx); err != nil {
			return None(), err
		}
	}
	_, err := io.WriteString(w, "\n")
	return None(), err
}

// Compound runs each of Stmts in order for effect and returns the
// empty holder. It performs no special handling of a return in
// flight: a non-nil error from one statement, including a
// *returnSignal, simply stops the loop and propagates, which is all
// transparency requires.
type Compound struct {
	Stmts []Statement
}

func (n *Compound) Execute(closure *Closure, ctx Context) (Holder, error) {
	for _, s := range n.Stmts {
		if _, err := s.Execute(closure, ctx); err != nil {
			return None(), err
		}
	}
	return None(), nil
}

// Return evaluates Expr and raises a *returnSignal carrying the
// result, unwinding to the nearest enclosing MethodBody.
type Return struct {
	Expr Expression
}

func (n *Return) Execute(closure *Closure, ctx Context) (Holder, error) {
	var v Holder
	if n.Expr != nil {
		var err error
		v, err = n.Expr.Execute(closure, ctx)
		if err != nil {
			return None(), err
		}
	}
	return None(), &returnSignal{value: v}
}

// IfElse evaluates Cond via IsTrue (not strict Bool equality), runs
// Then on truth and Else (if present) otherwise, and always returns
// the empty holder.
type IfElse struct {
	Cond Expression
	Then Statement
	Else Statement
}

func (n *IfElse) Execute(closure *Closure, ctx Context) (Holder, error) {
	cond, err := n.Cond.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if IsTrue(cond) {
		return n.Then.Execute(closure, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(closure, ctx)
	}
	return None(), nil
}

// ClassDefinition stores Class under its own name in the current
// closure and returns the empty holder. It is how a class becomes
// reachable by a later NewInstance or VariableValue.
type ClassDefinition struct {
	Class *Class
}

func (n *ClassDefinition) Execute(closure *Closure, ctx Context) (Holder, error) {
	closure.Set(n.Class.Name, Own(NewClassValue(n.Class)))
	return None(), nil
}

// MethodBody runs Body and catches the non-local return exit,
// yielding the carried holder. It is the only node in the evaluator
// that inspects an error for a *returnSignal; every other node treats
// it as an opaque error to pass through. If Body completes without
// raising one, the empty holder is returned.
type MethodBody struct {
	Body Statement
}

func (n *MethodBody) Execute(closure *Closure, ctx Context) (Holder, error) {
	_, err := n.Body.Execute(closure, ctx)
	if err == nil {
		return None(), nil
	}
	var rs *returnSignal
	if errors.As(err, &rs) {
		return rs.value, nil
	}
	return None(), err
}
