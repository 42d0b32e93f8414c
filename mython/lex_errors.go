package mython

import "fmt"

// LexError is the dedicated error kind for malformed input, carrying
// the position at which scanning failed.
type LexError struct {
	Message string
	Pos     Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Message)
}

func lexErrorf(pos Position, format string, args ...any) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Pos: pos}
}
