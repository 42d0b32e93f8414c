package mython

import "testing"

func TestTokenizeSimpleAssignment(t *testing.T) {
	toks, err := Tokenize("x = 2 + 3\n")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []TokenType{TokenID, TokenChar, TokenNumber, TokenChar, TokenNumber, TokenNewline, TokenEOF}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(types), types, len(want), want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, types[i], want[i])
		}
	}
}

func TestTokenizeIndentation(t *testing.T) {
	src := "if x:\n  print x\nprint 1\n"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	var hasIndent, hasDedent bool
	for _, tok := range toks {
		if tok.Type == TokenIndent {
			hasIndent = true
		}
		if tok.Type == TokenDedent {
			hasDedent = true
		}
	}
	if !hasIndent || !hasDedent {
		t.Fatalf("expected both INDENT and DEDENT tokens, got %v", toks)
	}
}

func TestTokenizeInvalidIndentation(t *testing.T) {
	_, err := Tokenize("if x:\n   print 1\n")
	if err == nil {
		t.Fatalf("expected a lex error for a 3-space indent")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb"` + "\n")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if toks[0].Type != TokenString || toks[0].Str != "a\nb" {
		t.Fatalf("got %v, want STRING(%q)", toks[0], "a\nb")
	}
}

func TestTokenizeKeywords(t *testing.T) {
	toks, err := Tokenize("class Return if else def print and or not None True False\n")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	want := []TokenType{TokenClass, TokenID, TokenIf, TokenElse, TokenDef, TokenPrint, TokenAnd, TokenOr, TokenNot, TokenNone, TokenTrue, TokenFalse}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestLexerCursor(t *testing.T) {
	lex, err := NewLexer("x = 1\n")
	if err != nil {
		t.Fatalf("NewLexer failed: %v", err)
	}
	if lex.Current().Type != TokenID {
		t.Fatalf("expected ID, got %s", lex.Current().Type)
	}
	lex.Next()
	if _, err := lex.Expect(TokenChar); err != nil {
		t.Fatalf("Expect(CHAR): %v", err)
	}
}
