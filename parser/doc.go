/*
Package parser builds adoc syntax trees from a token stream.

The parser is a recursive descent parser with one token of lookahead. It
produces one block node per call to Parser.Next and never reads further into
the source than it needs to complete that node:

	p := parser.FromReader(r)
	for {
		n, err := p.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		// use n
	}

Inline markup is parsed into nested ast.Markup items. An attribute list in
square brackets, e.g. "[role]" or "[#id]", applies to the span directly after
it and to nothing else.
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.parser'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.parser")
}
