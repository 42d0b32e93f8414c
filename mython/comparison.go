package mython

import "fmt"

// ComparisonError is the dedicated runtime error for comparing two
// incomparable values.
type ComparisonError struct {
	Message string
	Pos     Position
}

func (e *ComparisonError) Error() string { return e.Message }

func comparisonErrorf(pos Position, format string, args ...any) error {
	return &ComparisonError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Equal dispatches to an instance's __eq__/1 if the left side defines
// one; otherwise like-typed {Bool, Number, String} pairs use native
// comparison, both sides None (empty holders) compares equal, and
// every other mixture, including one None against a non-None value,
// is a comparison error.
func Equal(lhs, rhs Holder, ctx Context, pos Position) (bool, error) {
	if !lhs.IsEmpty() && lhs.Value().Kind() == KindInstance {
		if m, ok := lhs.Value().Instance().Class.GetMethod("__eq__"); ok && len(m.Params) == 1 {
			result, err := Call(lhs, "__eq__", []Holder{rhs}, ctx, pos)
			if err != nil {
				return false, err
			}
			return IsTrue(result), nil
		}
	}

	if lhs.IsEmpty() && rhs.IsEmpty() {
		return true, nil
	}
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return false, comparisonErrorf(pos, "cannot compare None and a non-None value for equality")
	}

	lv, rv := lhs.Value(), rhs.Value()
	if lv.Kind() != rv.Kind() {
		return false, comparisonErrorf(pos, "cannot compare %s and %s for equality", lv.Kind(), rv.Kind())
	}
	switch lv.Kind() {
	case KindBool:
		return lv.Bool() == rv.Bool(), nil
	case KindNumber:
		return lv.Number() == rv.Number(), nil
	case KindString:
		return lv.Str() == rv.Str(), nil
	default:
		return false, comparisonErrorf(pos, "cannot compare %s for equality", lv.Kind())
	}
}

// Less is symmetric to Equal's dispatch, but None can never be
// ordered, even against itself.
func Less(lhs, rhs Holder, ctx Context, pos Position) (bool, error) {
	if !lhs.IsEmpty() && lhs.Value().Kind() == KindInstance {
		if m, ok := lhs.Value().Instance().Class.GetMethod("__lt__"); ok && len(m.Params) == 1 {
			result, err := Call(lhs, "__lt__", []Holder{rhs}, ctx, pos)
			if err != nil {
				return false, err
			}
			return IsTrue(result), nil
		}
	}

	if lhs.IsEmpty() || rhs.IsEmpty() {
		return false, comparisonErrorf(pos, "cannot order None")
	}

	lv, rv := lhs.Value(), rhs.Value()
	if lv.Kind() != rv.Kind() {
		return false, comparisonErrorf(pos, "cannot compare %s and %s", lv.Kind(), rv.Kind())
	}
	switch lv.Kind() {
	case KindBool:
		return !lv.Bool() && rv.Bool(), nil
	case KindNumber:
		return lv.Number() < rv.Number(), nil
	case KindString:
		return lv.Str() < rv.Str(), nil
	default:
		return false, comparisonErrorf(pos, "cannot order %s", lv.Kind())
	}
}

// NotEqual, Greater, LessOrEqual, GreaterOrEqual are all defined in
// terms of Equal and Less.

func NotEqual(lhs, rhs Holder, ctx Context, pos Position) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs Holder, ctx Context, pos Position) (bool, error) {
	lt, err := Less(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	if lt {
		return false, nil
	}
	eq, err := Equal(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessOrEqual(lhs, rhs Holder, ctx Context, pos Position) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(lhs, rhs Holder, ctx Context, pos Position) (bool, error) {
	lt, err := Less(lhs, rhs, ctx, pos)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
