package mython

import (
	"errors"
	"fmt"
)

// Config carries the resource limits NewEngine applies defaults to.
// A program with no loop construct can only run away through method
// recursion, so bounding total calls and call depth is enough to
// stop one that never terminates.
type Config struct {
	CallQuota      int
	RecursionLimit int
}

const (
	defaultCallQuota      = 100000
	defaultRecursionLimit = 200
)

var (
	errCallQuotaExceeded = errors.New("call quota exceeded")
	errRecursionTooDeep  = errors.New("recursion limit exceeded")
)

// Engine compiles and runs programs under a fixed Config.
type Engine struct {
	config Config
}

// NewEngine applies Config defaults and returns a ready-to-use
// Engine.
func NewEngine(cfg Config) *Engine {
	if cfg.CallQuota <= 0 {
		cfg.CallQuota = defaultCallQuota
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	return &Engine{config: cfg}
}

// Script is a compiled program: its root Compound statement plus the
// source text used to render code frames in runtime errors.
type Script struct {
	engine *Engine
	root   Statement
	source string
}

// Compile runs the lexer and parser over source and returns the
// resulting Script.
func (e *Engine) Compile(source string) (*Script, error) {
	root, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return &Script{engine: e, root: root, source: source}, nil
}

// Run executes the script's root statement against a fresh global
// closure and ctx, enforcing the engine's call quota and recursion
// limit via the stepCounter capability ctx is wrapped to satisfy.
// A RuntimeError that escapes gets its code frame filled in from the
// script's source before being returned.
func (s *Script) Run(ctx Context) error {
	globals := NewClosure()
	budget := &quotaContext{Context: ctx, calls: 0, quota: s.engine.config.CallQuota, depthLimit: s.engine.config.RecursionLimit}
	_, err := s.root.Execute(globals, budget)
	if err != nil {
		return attachSource(err, s.source)
	}
	return nil
}

// stepCounter is an optional capability a Context can satisfy to
// observe every method invocation Call makes (class.go). Context's
// only required operation remains Output(); this is an additive seam
// the engine layer opts into, the same way Go code type-asserts for
// io.ReaderFrom without widening the io.Writer interface itself.
type stepCounter interface {
	step() error
	enter() error
	leave()
}

// quotaContext decorates a Context with call-count and call-depth
// bookkeeping.
type quotaContext struct {
	Context
	calls      int
	depth      int
	quota      int
	depthLimit int
}

func (q *quotaContext) step() error {
	q.calls++
	if q.quota > 0 && q.calls > q.quota {
		return fmt.Errorf("%w (%d)", errCallQuotaExceeded, q.quota)
	}
	return nil
}

func (q *quotaContext) enter() error {
	q.depth++
	if q.depthLimit > 0 && q.depth > q.depthLimit {
		return fmt.Errorf("%w (%d)", errRecursionTooDeep, q.depthLimit)
	}
	return nil
}

func (q *quotaContext) leave() { q.depth-- }

// EvalREPL parses source as a program and executes it against
// closure, letting a caller keep state alive across many calls the
// way an interactive session needs to. When source is exactly one
// bare expression statement, its stringified value is returned so the
// REPL can echo it; every other shape of program returns an empty
// string on success.
func (e *Engine) EvalREPL(source string, closure *Closure, ctx Context) (string, error) {
	root, err := Parse(source)
	if err != nil {
		return "", err
	}
	budget := &quotaContext{Context: ctx, quota: e.config.CallQuota, depthLimit: e.config.RecursionLimit}

	compound, ok := root.(*Compound)
	if ok && len(compound.Stmts) == 1 {
		if es, isExpr := compound.Stmts[0].(*exprStatement); isExpr {
			v, err := es.expr.Execute(closure, budget)
			if err != nil {
				return "", attachSource(err, source)
			}
			s, err := StringifyToString(v, ctx)
			if err != nil {
				return "", err
			}
			return s, nil
		}
	}

	if _, err := root.Execute(closure, budget); err != nil {
		return "", attachSource(err, source)
	}
	return "", nil
}
