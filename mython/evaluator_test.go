package mython

import "testing"

func runProgram(t *testing.T, src string) string {
	t.Helper()
	engine := NewEngine(Config{})
	script, err := engine.Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v\nsource:\n%s", err, src)
	}
	ctx := NewBufferContext()
	if err := script.Run(ctx); err != nil {
		t.Fatalf("run failed: %v\nsource:\n%s", err, src)
	}
	return ctx.String()
}

func TestArithmeticPrecedenceAndPrint(t *testing.T) {
	got := runProgram(t, "x = 2\ny = 3\nprint x + y * 4\n")
	if got != "14\n" {
		t.Fatalf("got %q, want %q", got, "14\n")
	}
}

func TestInheritedStrIsUsedByPrint(t *testing.T) {
	src := "class Shape:\n  def __str__(self):\n    return \"shape\"\n\nclass Rect(Shape):\n  pass\n\nr = Rect()\nprint r\n"
	got := runProgram(t, src)
	if got != "shape\n" {
		t.Fatalf("got %q, want %q", got, "shape\n")
	}
}

func TestTruthinessOfOrChainInIf(t *testing.T) {
	src := "if \"\" or 0 or None:\n  print \"yes\"\nelse:\n  print \"no\"\n"
	got := runProgram(t, src)
	if got != "no\n" {
		t.Fatalf("got %q, want %q", got, "no\n")
	}
}

func TestEqOverrideIsUsedByComparison(t *testing.T) {
	src := "class AlwaysEq:\n  def __eq__(self, other):\n    return True\n\na = AlwaysEq()\nb = AlwaysEq()\nprint a == b\nprint a == None\nprint None == None\n"
	got := runProgram(t, src)
	if got != "True\nTrue\nTrue\n" {
		t.Fatalf("got %q, want %q", got, "True\nTrue\nTrue\n")
	}
}

func TestNestedIfReturnsFromOuterMethod(t *testing.T) {
	src := "class C:\n  def f(self):\n    if True:\n      if True:\n        return 7\n    return 9\n\nc = C()\nprint c.f()\n"
	got := runProgram(t, src)
	if got != "7\n" {
		t.Fatalf("got %q, want %q", got, "7\n")
	}
}

func TestInconsistentIndentIsALexError(t *testing.T) {
	engine := NewEngine(Config{})
	_, err := engine.Compile("if x:\n   print 1\n")
	if err == nil {
		t.Fatalf("expected a lexer error for a 3-space indent")
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	engine := NewEngine(Config{})
	script, err := engine.Compile("x = 1 / 0\n")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	err = script.Run(NewBufferContext())
	if err == nil {
		t.Fatalf("expected a division-by-zero runtime error")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}

func TestUnboundNameIsRuntimeError(t *testing.T) {
	engine := NewEngine(Config{})
	script, err := engine.Compile("print nope\n")
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	err = script.Run(NewBufferContext())
	if err == nil {
		t.Fatalf("expected a name error")
	}
}

func TestScopeIsolationAcrossCalls(t *testing.T) {
	src := "class C:\n  def f(self):\n    local = 1\n    return local\n\nc = C()\nprint c.f()\n"
	engine := NewEngine(Config{})
	script, err := engine.Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	globals := NewClosure()
	ctx := NewBufferContext()
	if _, err := script.root.Execute(globals, ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, ok := globals.Get("local"); ok {
		t.Fatalf("method-local 'local' leaked into the caller's closure")
	}
}

func TestRecursionLimitIsEnforced(t *testing.T) {
	src := "class C:\n  def loop(self):\n    return self.loop()\n\nc = C()\nc.loop()\n"
	engine := NewEngine(Config{RecursionLimit: 10})
	script, err := engine.Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if err := script.Run(NewBufferContext()); err == nil {
		t.Fatalf("expected infinite recursion to be stopped by the recursion limit")
	}
}

func TestStringConcatenationAndAdd(t *testing.T) {
	got := runProgram(t, `print "a" + "b"` + "\n")
	if got != "ab\n" {
		t.Fatalf("got %q, want %q", got, "ab\n")
	}
}

func TestStringifyOfClassInstance(t *testing.T) {
	src := "class C:\n  pass\n\nc = C()\nprint str(c)\n"
	engine := NewEngine(Config{})
	script, err := engine.Compile(src)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	ctx := NewBufferContext()
	if err := script.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := ctx.String(); got == "" || got == "\n" {
		t.Fatalf("expected a non-empty default object representation")
	}
}
