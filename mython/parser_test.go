package mython

import "testing"

func TestParseAssignmentAndPrint(t *testing.T) {
	root, err := Parse("x = 2\nprint x\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	compound, ok := root.(*Compound)
	if !ok || len(compound.Stmts) != 2 {
		t.Fatalf("expected a 2-statement Compound, got %#v", root)
	}
	if _, ok := compound.Stmts[0].(*Assignment); !ok {
		t.Fatalf("expected Assignment, got %T", compound.Stmts[0])
	}
	if _, ok := compound.Stmts[1].(*Print); !ok {
		t.Fatalf("expected Print, got %T", compound.Stmts[1])
	}
}

func TestParseClassWithParent(t *testing.T) {
	src := "class Shape:\n  def describe():\n    return 1\n\nclass Rect(Shape):\n  pass\n"
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	compound := root.(*Compound)
	if len(compound.Stmts) != 2 {
		t.Fatalf("expected 2 class definitions, got %d", len(compound.Stmts))
	}
	rectDef, ok := compound.Stmts[1].(*ClassDefinition)
	if !ok {
		t.Fatalf("expected ClassDefinition, got %T", compound.Stmts[1])
	}
	if rectDef.Class.Parent == nil || rectDef.Class.Parent.Name != "Shape" {
		t.Fatalf("expected Rect's parent to resolve to Shape")
	}
}

func TestParseForwardParentReferenceFails(t *testing.T) {
	_, err := Parse("class Rect(Shape):\n  pass\nclass Shape:\n  pass\n")
	if err == nil {
		t.Fatalf("expected a parse error for a forward class reference")
	}
}

func TestParseMethodCallChain(t *testing.T) {
	src := "class Box:\n  def get(self):\n    return self.value\n\nb = Box()\nprint b.get()\n"
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	compound := root.(*Compound)
	printStmt := compound.Stmts[2].(*Print)
	if _, ok := printStmt.Args[0].(*MethodCall); !ok {
		t.Fatalf("expected a MethodCall argument, got %T", printStmt.Args[0])
	}
}

func TestParseIfElse(t *testing.T) {
	src := "if x:\n  print 1\nelse:\n  print 2\n"
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ifNode, ok := root.(*Compound).Stmts[0].(*IfElse)
	if !ok {
		t.Fatalf("expected IfElse, got %T", root.(*Compound).Stmts[0])
	}
	if ifNode.Else == nil {
		t.Fatalf("expected an else branch")
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	// x = 2 + 3 * 4 should parse as Add(2, Mult(3, 4))
	root, err := Parse("x = 2 + 3 * 4\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	assign := root.(*Compound).Stmts[0].(*Assignment)
	add, ok := assign.Rhs.(*Add)
	if !ok {
		t.Fatalf("expected top-level Add, got %T", assign.Rhs)
	}
	if _, ok := add.Rhs.(*arithmeticOp); !ok {
		t.Fatalf("expected the right operand to be the higher-precedence multiplication, got %T", add.Rhs)
	}
}

func TestParseUnknownCallTargetFails(t *testing.T) {
	_, err := Parse("x = nope(1)\n")
	if err == nil {
		t.Fatalf("expected a parse error calling an undeclared name")
	}
}
