package mython

import "testing"

func TestHolderNoneIsEmpty(t *testing.T) {
	if !None().IsEmpty() {
		t.Fatalf("None() should be empty")
	}
	if None().IsOwning() || None().IsBorrowing() {
		t.Fatalf("None() should be neither owning nor borrowing")
	}
}

func TestHolderOwnAndValue(t *testing.T) {
	h := Own(NewNumber(42))
	if h.IsEmpty() {
		t.Fatalf("Own() should not be empty")
	}
	if !h.IsOwning() {
		t.Fatalf("Own() should be owning")
	}
	if h.Value().Number() != 42 {
		t.Fatalf("got %d, want 42", h.Value().Number())
	}
}

func TestHolderShareAliasesCell(t *testing.T) {
	owner := Own(NewString("hello"))
	borrowed := Share(owner)
	if !borrowed.IsBorrowing() {
		t.Fatalf("Share() should be borrowing")
	}
	if borrowed.Value().Str() != "hello" {
		t.Fatalf("got %q, want %q", borrowed.Value().Str(), "hello")
	}
}

func TestHolderValuePanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic calling Value() on an empty holder")
		}
	}()
	None().Value()
}

func TestTryAsMatchesAndMismatches(t *testing.T) {
	h := Own(NewNumber(7))
	if n, ok := TryAs[int64](h); !ok || n != 7 {
		t.Fatalf("TryAs[int64] failed: %d, %v", n, ok)
	}
	if _, ok := TryAs[string](h); ok {
		t.Fatalf("TryAs[string] should fail on a Number holder")
	}
	if _, ok := TryAs[int64](None()); ok {
		t.Fatalf("TryAs on an empty holder should fail")
	}
}

func TestIsTrueTruthTable(t *testing.T) {
	cases := []struct {
		name string
		h    Holder
		want bool
	}{
		{"none", None(), false},
		{"zero", Own(NewNumber(0)), false},
		{"nonzero", Own(NewNumber(-1)), true},
		{"empty string", Own(NewString("")), false},
		{"nonempty string", Own(NewString("x")), true},
		{"false", Own(NewBool(false)), false},
		{"true", Own(NewBool(true)), true},
	}
	for _, c := range cases {
		if got := IsTrue(c.h); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
