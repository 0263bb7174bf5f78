package bvh

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when a token is required but the input has no more lines.
var ErrUnexpectedEOF = errors.New("bvh: unexpected end of input")

// UnknownWord is the Expected value of a SyntaxError raised for an
// unrecognized statement keyword inside a joint body.
const UnknownWord = "unknown word"

// SyntaxError reports a malformed or unexpected token.
type SyntaxError struct {
	Line     int
	Expected string
	Actual   string
}

// Error formats the line number with the expected and actual tokens.
func (e *SyntaxError) Error() string {
	if e.Expected == UnknownWord {
		return fmt.Sprintf("bvh: syntax error in line %d: unknown word '%s'", e.Line, e.Actual)
	}
	return fmt.Sprintf("bvh: syntax error in line %d: '%s' expected, got '%s' instead",
		e.Line, e.Expected, e.Actual)
}
