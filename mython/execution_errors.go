package mython

import (
	"fmt"
	"strconv"
	"strings"
)

// StackFrame names one activation record in a RuntimeError's trace:
// the method (or "<script>" for top-level code) and the position
// inside it where execution was when the error passed through.
type StackFrame struct {
	Function string
	Pos      Position
}

// RuntimeError is the catch-all for failures occurring during AST
// evaluation: an unbound name, a non-instance receiver, a missing or
// arity-mismatched method, a type error in an arithmetic operator, or
// division by zero. Frames accumulate outward-in as the
// error unwinds through nested Call invocations (see Call in
// class.go), one per method body it passes through, so the rendered
// trace reads innermost-first.
type RuntimeError struct {
	Kind      string
	Message   string
	CodeFrame string
	Frames    []StackFrame
}

const (
	runtimeErrorFrameHead = 8
	runtimeErrorFrameTail = 8
)

func (e *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(e.CodeFrame)
	}

	renderFrame := func(f StackFrame) {
		switch {
		case f.Pos.Line > 0 && f.Pos.Column > 0:
			fmt.Fprintf(&b, "\n  at %s (%d:%d)", f.Function, f.Pos.Line, f.Pos.Column)
		case f.Pos.Line > 0:
			fmt.Fprintf(&b, "\n  at %s (line %d)", f.Function, f.Pos.Line)
		default:
			fmt.Fprintf(&b, "\n  at %s", f.Function)
		}
	}

	if len(e.Frames) <= runtimeErrorFrameHead+runtimeErrorFrameTail {
		for _, f := range e.Frames {
			renderFrame(f)
		}
		return b.String()
	}
	for _, f := range e.Frames[:runtimeErrorFrameHead] {
		renderFrame(f)
	}
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", len(e.Frames)-(runtimeErrorFrameHead+runtimeErrorFrameTail))
	for _, f := range e.Frames[len(e.Frames)-runtimeErrorFrameTail:] {
		renderFrame(f)
	}
	return b.String()
}

// Unwrap returns nil: a RuntimeError is terminal, carrying the
// original failure as a rendered message rather than a wrapped cause.
func (e *RuntimeError) Unwrap() error { return nil }

func newRuntimeError(kind string, pos Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Frames:  []StackFrame{{Function: "<script>", Pos: pos}},
	}
}

func (e *RuntimeError) addFrame(f StackFrame) {
	e.Frames = append(e.Frames, f)
}

// attachSource fills in err's code frame from source, if err is a
// RuntimeError and hasn't been given one yet. The evaluator itself
// never sees program source; only Script.Run and Engine.EvalREPL
// (engine.go) do, so this runs once at the top, after Execute returns.
func attachSource(err error, source string) error {
	re, ok := err.(*RuntimeError)
	if !ok || re.CodeFrame != "" || len(re.Frames) == 0 {
		return err
	}
	re.CodeFrame = formatCodeFrame(source, re.Frames[0].Pos)
	return err
}

func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := lines[pos.Line-1]
	lineRunes := []rune(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line, column, lineLabel, lineText, gutterPad, caretPad,
	)
}

// returnSignal is the sentinel error a Return statement raises to
// unwind out of however many Compound/IfElse frames lie between it
// and the enclosing MethodBody, which is the only node that catches
// it. Every other node stays transparent to it for free: it is a
// plain non-nil error like any other, and every node already passes
// a non-nil error from a child straight through.
type returnSignal struct {
	value Holder
}

func (r *returnSignal) Error() string { return "return outside a method body" }
