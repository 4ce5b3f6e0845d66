package gorpn

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Calculator evaluates formulas written in reverse polish notation.
// It carries no state between evaluations; the same instance may be
// used for any number of formulas.
type Calculator struct {
	verbose bool
	logger  zerolog.Logger
}

type Option func(*Calculator)

// WithLogger routes the per-token trace to l instead of stderr.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) {
		c.logger = l
	}
}

func New(verbose bool, opts ...Option) *Calculator {
	c := &Calculator{
		verbose: verbose,
		logger:  zerolog.Nop(),
	}
	if verbose {
		c.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Eval evaluates a single formula and returns its value. Tokens are
// separated by runs of whitespace and consumed left to right; error
// positions are 1-based token ordinals.
func (c *Calculator) Eval(formula string) (int32, error) {
	tokens := strings.Fields(formula)
	stack := make([]int32, 0, len(tokens))
	for i, tok := range tokens {
		pos := i + 1
		if n, ok := literal(tok); ok {
			stack = append(stack, n)
		} else {
			if len(stack) < 2 {
				return 0, &SyntaxError{Pos: pos}
			}
			y := stack[len(stack)-1]
			x := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			ret, err := apply(tok, x, y, pos)
			if err != nil {
				return 0, err
			}
			stack = append(stack, ret)
		}
		if c.verbose {
			c.logger.Debug().
				Strs("rest", tokens[i+1:]).
				Ints32("stack", stack).
				Msg(tok)
		}
	}
	if len(stack) != 1 {
		return 0, &SyntaxError{}
	}
	return stack[0], nil
}

// literal interprets tok as a signed 32-bit decimal literal. A leading
// plus is not a literal even though strconv would accept one.
func literal(tok string) (int32, bool) {
	if strings.HasPrefix(tok, "+") {
		return 0, false
	}
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

func apply(op string, x, y int32, pos int) (int32, error) {
	switch op {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	case "/":
		if y == 0 {
			return 0, &DivisionError{Pos: pos}
		}
		return x / y, nil
	case "%":
		if y == 0 {
			return 0, &DivisionError{Pos: pos}
		}
		return x % y, nil
	}
	return 0, &TokenError{Pos: pos, Token: op}
}
