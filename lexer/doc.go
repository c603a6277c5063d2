/*
Package lexer turns a byte stream into adoc tokens.

The lexer reads its source through a fixed-size buffer which is refilled on
demand, so documents of any size are tokenized with constant memory. It keeps
track of the line and column of the next unread byte and supports a single
token of lookahead (see Lexer.Peek).

Comments are dropped by the lexer: "//" starts a comment running to the end of
the line, a line starting with "////" opens a block comment which runs until
the next line starting with "////".
*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.lexer")
}
