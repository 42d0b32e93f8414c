package mython

// parseExpr is the entry point for the expression grammar, climbing
// down through the precedence levels SPEC_FULL.md's Parser module
// lists low-to-high: or → and → not → comparison → +,- → *,/ →
// unary → postfix → atom.
func (p *parser) parseExpr() (Expression, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Expression, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokenOr {
		p.next()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &Or{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAnd() (Expression, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokenAnd {
		p.next()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &And{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseNot() (Expression, error) {
	if p.cur().Type == TokenNot {
		p.next()
		expr, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Expr: expr}, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (Expression, error) {
	lhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	op, pos, ok := p.comparisonOp()
	if !ok {
		return lhs, nil
	}
	p.advanceComparisonOp()
	rhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	return &Comparison{Pos: pos, Op: op, Lhs: lhs, Rhs: rhs}, nil
}

// comparisonOp reports the ComparisonOp the current token spells, if
// any, without consuming it.
func (p *parser) comparisonOp() (ComparisonOp, Position, bool) {
	tok := p.cur()
	switch tok.Type {
	case TokenEq:
		return OpEqual, tok.Pos, true
	case TokenNotEq:
		return OpNotEqual, tok.Pos, true
	case TokenLessOrEq:
		return OpLessOrEqual, tok.Pos, true
	case TokenGreaterOrEq:
		return OpGreaterOrEqual, tok.Pos, true
	case TokenChar:
		switch tok.Ch {
		case '<':
			return OpLess, tok.Pos, true
		case '>':
			return OpGreater, tok.Pos, true
		}
	}
	return 0, Position{}, false
}

func (p *parser) advanceComparisonOp() { p.next() }

func (p *parser) parseAdd() (Expression, error) {
	lhs, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokenChar && (p.cur().Ch == '+' || p.cur().Ch == '-') {
		op := p.cur()
		p.next()
		rhs, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		if op.Ch == '+' {
			lhs = &Add{Pos: op.Pos, Lhs: lhs, Rhs: rhs}
		} else {
			lhs = NewSub(op.Pos, lhs, rhs)
		}
	}
	return lhs, nil
}

func (p *parser) parseMul() (Expression, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == TokenChar && (p.cur().Ch == '*' || p.cur().Ch == '/') {
		op := p.cur()
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op.Ch == '*' {
			lhs = NewMult(op.Pos, lhs, rhs)
		} else {
			lhs = NewDiv(op.Pos, lhs, rhs)
		}
	}
	return lhs, nil
}

// parseUnary handles prefix '-'; everything else falls through to the
// postfix/atom grammar in parsePrimary.
func (p *parser) parseUnary() (Expression, error) {
	if p.cur().Type == TokenChar && p.cur().Ch == '-' {
		pos := p.cur().Pos
		p.next()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NewSub(pos, &NumberLiteral{Value: 0}, expr), nil
	}
	return p.parsePrimary()
}

// parsePrimary implements the atom and postfix grammar levels
// together: literals, parenthesized expressions, and identifier
// chains (`a.b.c`, `a.b.c(args)`, `ClassName(args)`, `str(expr)`).
func (p *parser) parsePrimary() (Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case TokenNumber:
		p.next()
		return &NumberLiteral{Value: tok.Num}, nil
	case TokenString:
		p.next()
		return &StringLiteral{Value: tok.Str}, nil
	case TokenTrue:
		p.next()
		return &BoolLiteral{Value: true}, nil
	case TokenFalse:
		p.next()
		return &BoolLiteral{Value: false}, nil
	case TokenNone:
		p.next()
		return &NoneLiteral{}, nil
	case TokenID:
		return p.parseIdentifierChain()
	case TokenChar:
		if tok.Ch == '(' {
			p.next()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectChar(')'); err != nil {
				return nil, err
			}
			p.next()
			return expr, nil
		}
	}
	return nil, parseErrorf(tok.Pos, "unexpected %s in expression", tok)
}

// parseIdentifierChain walks a dotted name, ending either in a
// VariableValue (no call followed) or a MethodCall/NewInstance/
// Stringify when '(' terminates the chain.
func (p *parser) parseIdentifierChain() (Expression, error) {
	nameTok := p.cur()
	name := nameTok.Str
	pos := nameTok.Pos
	p.next()

	if p.cur().Type == TokenChar && p.cur().Ch == '(' {
		return p.parseBareCall(name, pos)
	}

	var dotted []string
	for p.cur().Type == TokenChar && p.cur().Ch == '.' {
		p.next()
		fieldTok, err := p.lex.Expect(TokenID)
		if err != nil {
			return nil, err
		}
		p.next()
		if p.cur().Type == TokenChar && p.cur().Ch == '(' {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			receiver := Expression(&VariableValue{Pos: pos, Name: name, Dotted: dotted})
			return &MethodCall{Pos: fieldTok.Pos, Receiver: receiver, Name: fieldTok.Str, Args: args}, nil
		}
		dotted = append(dotted, fieldTok.Str)
	}
	return &VariableValue{Pos: pos, Name: name, Dotted: dotted}, nil
}

// parseBareCall handles a call directly on a name with no receiver:
// str(expr) lowers to Stringify, and any other name must be a
// previously declared class, lowering to NewInstance. There are no
// free-standing functions in the language.
func (p *parser) parseBareCall(name string, pos Position) (Expression, error) {
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if name == "str" {
		if len(args) != 1 {
			return nil, parseErrorf(pos, "str() takes exactly one argument, got %d", len(args))
		}
		return &Stringify{Expr: args[0]}, nil
	}
	class, ok := p.classes[name]
	if !ok {
		return nil, parseErrorf(pos, "%q is not a declared class", name)
	}
	return &NewInstance{Pos: pos, Class: class, Args: args}, nil
}

func (p *parser) parseArgs() ([]Expression, error) {
	if _, err := p.expectChar('('); err != nil {
		return nil, err
	}
	p.next()
	var args []Expression
	for !(p.cur().Type == TokenChar && p.cur().Ch == ')') {
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
	if _, err := p.expectChar(')'); err != nil {
		return nil, err
	}
	p.next()
	return args, nil
}
