package mython

import "fmt"

// parseError is a syntax error raised while turning a token stream
// into an AST. Parsing is single-pass and aborts on the first one;
// there is no error recovery.
type parseError struct {
	Message string
	Pos     Position
}

func (e *parseError) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Message) }

func parseErrorf(pos Position, format string, args ...any) error {
	return &parseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// parser drives a Lexer cursor with one token of lookahead, its
// Current() token, and builds the AST with a parseXxx method per
// grammar production.
type parser struct {
	lex     *Lexer
	classes map[string]*Class
}

// Parse tokenizes and parses src into a root Compound statement
// representing the whole program, the grammar sketched in
// SPEC_FULL.md's Parser module.
func Parse(src string) (Statement, error) {
	lex, err := NewLexer(src)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: lex, classes: make(map[string]*Class)}
	return p.parseProgram()
}

func (p *parser) cur() Token  { return p.lex.Current() }
func (p *parser) next() Token { return p.lex.Next() }

func (p *parser) skipNewlines() {
	for p.cur().Type == TokenNewline {
		p.next()
	}
}

func (p *parser) parseProgram() (Statement, error) {
	var stmts []Statement
	p.skipNewlines()
	for p.cur().Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return &Compound{Stmts: stmts}, nil
}

// parseStatement dispatches on the current token: class_def, if_stmt,
// print_stmt, return, pass, or a simple_stmt. It does not check that a
// NEWLINE follows the statement.
func (p *parser) parseStatement() (Statement, error) {
	switch p.cur().Type {
	case TokenClass:
		return p.parseClassDef()
	case TokenIf:
		return p.parseIfStmt()
	case TokenPrint:
		return p.parsePrintStmt()
	case TokenReturn:
		return p.parseReturnStmt()
	case TokenPass:
		p.next()
		return &Compound{}, nil
	default:
		return p.parseSimpleStmt()
	}
}

func (p *parser) parseBlock() ([]Statement, error) {
	if _, err := p.lex.Expect(TokenNewline); err != nil {
		return nil, err
	}
	p.next()
	p.skipNewlines()
	if _, err := p.lex.Expect(TokenIndent); err != nil {
		return nil, err
	}
	p.next()
	p.skipNewlines()

	var stmts []Statement
	for p.cur().Type != TokenDedent && p.cur().Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	if _, err := p.lex.Expect(TokenDedent); err != nil {
		return nil, err
	}
	p.next()
	return stmts, nil
}

// parseClassDef implements `class_def := 'class' ID ['(' ID ')'] ':'
// NEWLINE INDENT (method_def)* DEDENT`. The parent class, if named,
// must already be declared earlier in the program; class references
// are resolved statically at parse time, so forward references are a
// parse error.
func (p *parser) parseClassDef() (Statement, error) {
	p.next()

	nameTok, err := p.lex.Expect(TokenID)
	if err != nil {
		return nil, err
	}
	name := nameTok.Str
	p.next()

	var parent *Class
	if p.cur().Type == TokenChar && p.cur().Ch == '(' {
		p.next()
		parentTok, err := p.lex.Expect(TokenID)
		if err != nil {
			return nil, err
		}
		p.next()
		var ok bool
		parent, ok = p.classes[parentTok.Str]
		if !ok {
			return nil, parseErrorf(parentTok.Pos, "class %q used as a parent before it was declared", parentTok.Str)
		}
		if _, err := p.expectChar(')'); err != nil {
			return nil, err
		}
		p.next()
	}
	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	p.next()
	if _, err := p.lex.Expect(TokenNewline); err != nil {
		return nil, err
	}
	p.next()
	p.skipNewlines()
	if _, err := p.lex.Expect(TokenIndent); err != nil {
		return nil, err
	}
	p.next()
	p.skipNewlines()

	var methods []*Method
	for p.cur().Type != TokenDedent && p.cur().Type != TokenEOF {
		if p.cur().Type == TokenPass {
			p.next()
			p.skipNewlines()
			continue
		}
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
		p.skipNewlines()
	}
	if _, err := p.lex.Expect(TokenDedent); err != nil {
		return nil, err
	}
	p.next()

	class := NewClass(name, methods, parent)
	p.classes[name] = class
	return &ClassDefinition{Class: class}, nil
}

// parseMethodDef implements `method_def := 'def' ID '(' params ')'
// ':' NEWLINE INDENT statement* DEDENT`, wrapping the body in a
// MethodBody node so Call can invoke it directly.
func (p *parser) parseMethodDef() (*Method, error) {
	if _, err := p.lex.Expect(TokenDef); err != nil {
		return nil, err
	}
	p.next()
	nameTok, err := p.lex.Expect(TokenID)
	if err != nil {
		return nil, err
	}
	name := nameTok.Str
	p.next()
	if _, err := p.expectChar('('); err != nil {
		return nil, err
	}
	p.next()

	var params []string
	for {
		if p.cur().Type == TokenChar && p.cur().Ch == ')' {
			break
		}
		pTok, err := p.lex.Expect(TokenID)
		if err != nil {
			return nil, err
		}
		params = append(params, pTok.Str)
		p.next()
		if p.cur().Type == TokenChar && p.cur().Ch == ',' {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expectChar(')'); err != nil {
		return nil, err
	}
	p.next()
	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	p.next()

	stmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	// The leading formal is always the implicit receiver; Call binds it
	// to self itself (class.go), so it is excluded from Params: the
	// runtime only needs the arguments a caller actually supplies.
	if len(params) > 0 {
		params = params[1:]
	}
	return &Method{Name: name, Params: params, Body: &MethodBody{Body: &Compound{Stmts: stmts}}}, nil
}

// parseIfStmt implements `if_stmt := 'if' expr ':' NEWLINE INDENT
// statement* DEDENT ['else' ':' NEWLINE INDENT statement* DEDENT]`.
func (p *parser) parseIfStmt() (Statement, error) {
	p.next()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectChar(':'); err != nil {
		return nil, err
	}
	p.next()
	thenStmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &IfElse{Cond: cond, Then: &Compound{Stmts: thenStmts}}

	p.skipNewlines()
	if p.cur().Type == TokenElse {
		p.next()
		if _, err := p.expectChar(':'); err != nil {
			return nil, err
		}
		p.next()
		elseStmts, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = &Compound{Stmts: elseStmts}
	}
	return node, nil
}

// parsePrintStmt implements `print_stmt := 'print' [expr (',' expr)*]`.
func (p *parser) parsePrintStmt() (Statement, error) {
	pos := p.cur().Pos
	p.next()

	var args []Expression
	if p.cur().Type != TokenNewline && p.cur().Type != TokenEOF && p.cur().Type != TokenDedent {
		for {
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, expr)
			if p.cur().Type == TokenChar && p.cur().Ch == ',' {
				p.next()
				continue
			}
			break
		}
	}
	return &Print{Pos: pos, Args: args}, nil
}

func (p *parser) parseReturnStmt() (Statement, error) {
	p.next()
	if p.cur().Type == TokenNewline || p.cur().Type == TokenEOF || p.cur().Type == TokenDedent {
		return &Return{}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Return{Expr: expr}, nil
}

// parseSimpleStmt implements `simple_stmt := assignment |
// field_assignment | expr`, disambiguated by parsing an expression
// first and checking whether '=' follows.
func (p *parser) parseSimpleStmt() (Statement, error) {
	pos := p.cur().Pos
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == TokenChar && p.cur().Ch == '=' {
		p.next()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *VariableValue:
			if len(target.Dotted) == 0 {
				return &Assignment{Pos: pos, Name: target.Name, Rhs: rhs}, nil
			}
			field := target.Dotted[len(target.Dotted)-1]
			receiver := &VariableValue{Pos: target.Pos, Name: target.Name, Dotted: target.Dotted[:len(target.Dotted)-1]}
			return &FieldAssignment{Pos: pos, Receiver: receiver, Field: field, Rhs: rhs}, nil
		default:
			return nil, parseErrorf(pos, "left-hand side of assignment must be a name or field access")
		}
	}
	return &exprStatement{expr: expr}, nil
}

// exprStatement adapts a bare expression (e.g. a method call used for
// effect) to the Statement family: it evaluates for its side effects
// and discards the result, returning the empty holder either way.
type exprStatement struct {
	expr Expression
}

func (n *exprStatement) Execute(closure *Closure, ctx Context) (Holder, error) {
	if _, err := n.expr.Execute(closure, ctx); err != nil {
		return None(), err
	}
	return None(), nil
}

func (p *parser) expectChar(ch rune) (Token, error) {
	cur := p.cur()
	if cur.Type != TokenChar || cur.Ch != ch {
		return Token{}, parseErrorf(cur.Pos, "expected %q, got %s", ch, cur)
	}
	return cur, nil
}
