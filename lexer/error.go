package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/insomnimus/adoc/token"
)

// UnexpectedCharError reports a byte that does not match the byte a
// multi-byte marker requires at that position.
type UnexpectedCharError struct {
	Actual   byte
	Expected []byte
	Pos      token.Position
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s, but found `%s` on line %d, column %d",
		e.Pos.Line, e.Pos.Column, expectedChars(e.Expected), char(e.Actual), e.Pos.Line, e.Pos.Column)
}

func expectedChars(expected []byte) string {
	if len(expected) == 1 {
		return "`" + char(expected[0]) + "`"
	}
	chars := make([]string, len(expected))
	for i, c := range expected {
		chars[i] = char(c)
	}
	return "one of `" + strings.Join(chars, "`, `") + "`"
}

// char renders a byte for a diagnostic; printable ASCII is shown as is.
func char(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return string(rune(c))
	}
	q := strconv.QuoteToASCII(string([]byte{c}))
	return q[1 : len(q)-1]
}
