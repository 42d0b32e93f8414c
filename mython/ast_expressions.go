package mython

import "fmt"

// NumberLiteral, StringLiteral, BoolLiteral, and NoneLiteral each
// return a freshly owned value on every evaluation; for None, the
// empty holder.

type NumberLiteral struct{ Value int64 }

func (n *NumberLiteral) Execute(closure *Closure, ctx Context) (Holder, error) {
	return Own(NewNumber(n.Value)), nil
}

type StringLiteral struct{ Value string }

func (n *StringLiteral) Execute(closure *Closure, ctx Context) (Holder, error) {
	return Own(NewString(n.Value)), nil
}

type BoolLiteral struct{ Value bool }

func (n *BoolLiteral) Execute(closure *Closure, ctx Context) (Holder, error) {
	return Own(NewBool(n.Value)), nil
}

type NoneLiteral struct{}

func (n *NoneLiteral) Execute(closure *Closure, ctx Context) (Holder, error) {
	return None(), nil
}

// VariableValue resolves Name in closure, then walks Dotted
// left-associatively: each intermediate value must be a
// ClassInstance, and the next segment is looked up in its fields.
type VariableValue struct {
	Pos    Position
	Name   string
	Dotted []string
}

func (n *VariableValue) Execute(closure *Closure, ctx Context) (Holder, error) {
	h, ok := closure.Get(n.Name)
	if !ok {
		return None(), newRuntimeError("NameError", n.Pos, "name %q is not defined", n.Name)
	}
	for _, field := range n.Dotted {
		inst, ok := TryAs[*Instance](h)
		if !ok {
			return None(), newRuntimeError("TypeError", n.Pos, "cannot read field %q: value is not a class instance", field)
		}
		h, ok = inst.Fields.Get(field)
		if !ok {
			return None(), newRuntimeError("NameError", n.Pos, "instance has no field %q", field)
		}
	}
	return h, nil
}

// MethodCall evaluates Receiver (must be an instance) and each of
// Args left-to-right, then dispatches through Call.
type MethodCall struct {
	Pos      Position
	Receiver Expression
	Name     string
	Args     []Expression
}

func (n *MethodCall) Execute(closure *Closure, ctx Context) (Holder, error) {
	recv, err := n.Receiver.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	args, err := evalArgs(n.Args, closure, ctx)
	if err != nil {
		return None(), err
	}
	return Call(recv, n.Name, args, ctx, n.Pos)
}

// NewInstance allocates a ClassInstance referencing Class. If
// __init__ exists with arity matching the evaluated Args, it is
// invoked and its return value discarded.
type NewInstance struct {
	Pos   Position
	Class *Class
	Args  []Expression
}

func (n *NewInstance) Execute(closure *Closure, ctx Context) (Holder, error) {
	args, err := evalArgs(n.Args, closure, ctx)
	if err != nil {
		return None(), err
	}
	instHolder := Own(NewInstanceValue(NewInstanceObject(n.Class)))
	if m, ok := n.Class.GetMethod("__init__"); ok && len(m.Params) == len(args) {
		if _, err := Call(instHolder, "__init__", args, ctx, n.Pos); err != nil {
			return None(), err
		}
	}
	return instHolder, nil
}

func evalArgs(exprs []Expression, closure *Closure, ctx Context) ([]Holder, error) {
	args := make([]Holder, len(exprs))
	for i, e := range exprs {
		v, err := e.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// Stringify evaluates Expr and renders it exactly as Print would,
// wrapping the result as a String value; an empty holder stringifies
// to the text "None".
type Stringify struct {
	Expr Expression
}

func (n *Stringify) Execute(closure *Closure, ctx Context) (Holder, error) {
	v, err := n.Expr.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	s, err := StringifyToString(v, ctx)
	if err != nil {
		return None(), err
	}
	return Own(NewString(s)), nil
}

// Add delegates to an instance's __add__/1 if Lhs defines one;
// otherwise it requires Number+Number or String+String.
type Add struct {
	Pos      Position
	Lhs, Rhs Expression
}

func (n *Add) Execute(closure *Closure, ctx Context) (Holder, error) {
	lhs, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	rhs, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if !lhs.IsEmpty() && lhs.Value().Kind() == KindInstance {
		if m, ok := lhs.Value().Instance().Class.GetMethod("__add__"); ok && len(m.Params) == 1 {
			return Call(lhs, "__add__", []Holder{rhs}, ctx, n.Pos)
		}
	}
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return None(), newRuntimeError("TypeError", n.Pos, "cannot add None")
	}
	lv, rv := lhs.Value(), rhs.Value()
	switch {
	case lv.Kind() == KindNumber && rv.Kind() == KindNumber:
		return Own(NewNumber(lv.Number() + rv.Number())), nil
	case lv.Kind() == KindString && rv.Kind() == KindString:
		return Own(NewString(lv.Str() + rv.Str())), nil
	default:
		return None(), newRuntimeError("TypeError", n.Pos, "cannot add %s and %s", lv.Kind(), rv.Kind())
	}
}

// arithmeticOp is shared by Sub, Mult, and Div: both operands must be
// Number.
type arithmeticOp struct {
	Pos      Position
	Lhs, Rhs Expression
	Symbol   string
	Apply    func(a, b int64) (int64, error)
}

func (n *arithmeticOp) Execute(closure *Closure, ctx Context) (Holder, error) {
	lhs, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	rhs, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if lhs.IsEmpty() || rhs.IsEmpty() || lhs.Value().Kind() != KindNumber || rhs.Value().Kind() != KindNumber {
		return None(), newRuntimeError("TypeError", n.Pos, "operator %s requires two numbers", n.Symbol)
	}
	result, err := n.Apply(lhs.Value().Number(), rhs.Value().Number())
	if err != nil {
		return None(), newRuntimeError("ZeroDivisionError", n.Pos, "%s", err.Error())
	}
	return Own(NewNumber(result)), nil
}

func NewSub(pos Position, lhs, rhs Expression) Expression {
	return &arithmeticOp{Pos: pos, Lhs: lhs, Rhs: rhs, Symbol: "-", Apply: func(a, b int64) (int64, error) { return a - b, nil }}
}

func NewMult(pos Position, lhs, rhs Expression) Expression {
	return &arithmeticOp{Pos: pos, Lhs: lhs, Rhs: rhs, Symbol: "*", Apply: func(a, b int64) (int64, error) { return a * b, nil }}
}

func NewDiv(pos Position, lhs, rhs Expression) Expression {
	return &arithmeticOp{Pos: pos, Lhs: lhs, Rhs: rhs, Symbol: "/", Apply: func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	}}
}

// Or short-circuits: if Lhs is truthy it returns Bool(true) without
// evaluating Rhs; otherwise it returns Bool(IsTrue(rhs)).
type Or struct{ Lhs, Rhs Expression }

func (n *Or) Execute(closure *Closure, ctx Context) (Holder, error) {
	lhs, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if IsTrue(lhs) {
		return Own(NewBool(true)), nil
	}
	rhs, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	return Own(NewBool(IsTrue(rhs))), nil
}

// And is symmetric to Or: a falsy Lhs short-circuits to Bool(false).
type And struct{ Lhs, Rhs Expression }

func (n *And) Execute(closure *Closure, ctx Context) (Holder, error) {
	lhs, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	if !IsTrue(lhs) {
		return Own(NewBool(false)), nil
	}
	rhs, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	return Own(NewBool(IsTrue(rhs))), nil
}

// Not returns Bool(¬IsTrue(expr)).
type Not struct{ Expr Expression }

func (n *Not) Execute(closure *Closure, ctx Context) (Holder, error) {
	v, err := n.Expr.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	return Own(NewBool(!IsTrue(v))), nil
}

// ComparisonOp names which comparator function a Comparison node
// applies.
type ComparisonOp int

const (
	OpEqual ComparisonOp = iota
	OpNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
)

// Comparison evaluates Lhs and Rhs, applies the comparator named by
// Op, and returns the Bool result.
type Comparison struct {
	Pos      Position
	Op       ComparisonOp
	Lhs, Rhs Expression
}

func (n *Comparison) Execute(closure *Closure, ctx Context) (Holder, error) {
	lhs, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	rhs, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return None(), err
	}
	var result bool
	switch n.Op {
	case OpEqual:
		result, err = Equal(lhs, rhs, ctx, n.Pos)
	case OpNotEqual:
		result, err = NotEqual(lhs, rhs, ctx, n.Pos)
	case OpLess:
		result, err = Less(lhs, rhs, ctx, n.Pos)
	case OpLessOrEqual:
		result, err = LessOrEqual(lhs, rhs, ctx, n.Pos)
	case OpGreater:
		result, err = Greater(lhs, rhs, ctx, n.Pos)
	case OpGreaterOrEqual:
		result, err = GreaterOrEqual(lhs, rhs, ctx, n.Pos)
	}
	if err != nil {
		return None(), err
	}
	return Own(NewBool(result)), nil
}
