package gorpn

import "fmt"

// SyntaxError reports a stack-shape violation: an operator found fewer
// than two operands, or the formula ended with a stack depth other than
// one. Pos is the 1-based token position, or 0 for the end-of-formula
// case.
type SyntaxError struct {
	Pos int
}

func (e *SyntaxError) Error() string {
	if e.Pos == 0 {
		return "invalid syntax"
	}
	return fmt.Sprintf("invalid syntax at %d", e.Pos)
}

// TokenError reports a token that is neither a 32-bit decimal literal
// nor a known operator.
type TokenError struct {
	Pos   int
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid token %q at %d", e.Token, e.Pos)
}

// DivisionError reports a division or modulo by zero.
type DivisionError struct {
	Pos int
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("division by zero at %d", e.Pos)
}
