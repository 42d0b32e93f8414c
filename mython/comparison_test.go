package mython

import "testing"

func TestEqualNativeTypes(t *testing.T) {
	ctx := NewBufferContext()
	eq, err := Equal(Own(NewNumber(3)), Own(NewNumber(3)), ctx, Position{})
	if err != nil || !eq {
		t.Fatalf("3 == 3 should be true, got %v, err=%v", eq, err)
	}
	eq, err = Equal(Own(NewString("a")), Own(NewString("b")), ctx, Position{})
	if err != nil || eq {
		t.Fatalf(`"a" == "b" should be false, got %v, err=%v`, eq, err)
	}
}

func TestEqualBothNoneIsTrue(t *testing.T) {
	eq, err := Equal(None(), None(), NewBufferContext(), Position{})
	if err != nil || !eq {
		t.Fatalf("None == None should be true, got %v, err=%v", eq, err)
	}
}

func TestEqualNoneAgainstNonNoneFails(t *testing.T) {
	_, err := Equal(None(), Own(NewNumber(5)), NewBufferContext(), Position{})
	if err == nil {
		t.Fatalf("expected an error comparing None and a non-None value for equality")
	}
	if _, ok := err.(*ComparisonError); !ok {
		t.Fatalf("expected *ComparisonError, got %T", err)
	}
}

func TestEqualMismatchedKindsFails(t *testing.T) {
	_, err := Equal(Own(NewNumber(1)), Own(NewString("1")), NewBufferContext(), Position{})
	if err == nil {
		t.Fatalf("expected an error comparing Number and String for equality")
	}
	if _, ok := err.(*ComparisonError); !ok {
		t.Fatalf("expected *ComparisonError, got %T", err)
	}
}

func TestLessOrdersLikeTypes(t *testing.T) {
	ctx := NewBufferContext()
	lt, err := Less(Own(NewNumber(1)), Own(NewNumber(2)), ctx, Position{})
	if err != nil || !lt {
		t.Fatalf("1 < 2 should be true, got %v, err=%v", lt, err)
	}
	lt, err = Less(Own(NewString("b")), Own(NewString("a")), ctx, Position{})
	if err != nil || lt {
		t.Fatalf(`"b" < "a" should be false, got %v, err=%v`, lt, err)
	}
}

func TestDerivedComparators(t *testing.T) {
	ctx := NewBufferContext()
	a, b := Own(NewNumber(5)), Own(NewNumber(5))

	if ne, _ := NotEqual(a, b, ctx, Position{}); ne {
		t.Fatalf("5 != 5 should be false")
	}
	if le, err := LessOrEqual(a, b, ctx, Position{}); err != nil || !le {
		t.Fatalf("5 <= 5 should be true, got %v, err=%v", le, err)
	}
	if ge, err := GreaterOrEqual(a, b, ctx, Position{}); err != nil || !ge {
		t.Fatalf("5 >= 5 should be true, got %v, err=%v", ge, err)
	}
	if gt, err := Greater(a, b, ctx, Position{}); err != nil || gt {
		t.Fatalf("5 > 5 should be false, got %v, err=%v", gt, err)
	}
}

func TestEqualDispatchesToDunderEq(t *testing.T) {
	// class Eq: def __eq__(self, other): return True
	class := NewClass("Eq", []*Method{{
		Name:   "__eq__",
		Params: []string{"other"},
		Body:   &MethodBody{Body: &Return{Expr: &BoolLiteral{Value: true}}},
	}}, nil)
	lhs := Own(NewInstanceValue(NewInstanceObject(class)))
	rhs := Own(NewNumber(999))

	eq, err := Equal(lhs, rhs, NewBufferContext(), Position{})
	if err != nil || !eq {
		t.Fatalf("expected __eq__ override to report true, got %v, err=%v", eq, err)
	}
}
