/*
Package transpiler renders adoc documents to HTML.

Rendering is done in two steps. A Generator maps every syntax tree node to a
tree of *html.Node values, which is then serialized with html.Render. The
Generator is the extension point of the package: embed Default in a struct
and override the methods for the elements you want to render differently.

	type plainMarks struct {
		transpiler.Default
	}

	func (plainMarks) Mark(children []*html.Node, _ []html.Attribute) *html.Node {
		...
	}

Transpile and ToHTML drive the parser over a whole document and write each
node as soon as it has been parsed.
*/
package transpiler

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.html'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.html")
}
