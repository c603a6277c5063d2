package parser

import (
	"fmt"

	"github.com/insomnimus/adoc/token"
)

// UnexpectedTokenError reports a token the grammar does not allow at its
// position. Actual is the rendering of the token that was found.
type UnexpectedTokenError struct {
	Actual   string
	Expected string
	Pos      token.Position
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s, but found `%s` on line %d, column %d",
		e.Pos.Line, e.Pos.Column, e.Expected, e.Actual, e.Pos.Line, e.Pos.Column)
}
