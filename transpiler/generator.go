package transpiler

import (
	"github.com/insomnimus/adoc/ast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Generator creates the HTML for each kind of node and item. Children are
// rendered before their parent and handed in ready-made; attributes are
// converted by Attributes before the span method is called.
type Generator interface {
	HorizontalRule() *html.Node
	PageBreak() *html.Node
	Paragraph(children []*html.Node) *html.Node

	Word(w string) *html.Node
	Space() *html.Node
	Mark(children []*html.Node, attrs []html.Attribute) *html.Node
	Italic(children []*html.Node, attrs []html.Attribute) *html.Node
	Bold(children []*html.Node, attrs []html.Attribute) *html.Node
	InlineCode(children []*html.Node, attrs []html.Attribute) *html.Node
	SuperScript(children []*html.Node, attrs []html.Attribute) *html.Node
	SubScript(children []*html.Node, attrs []html.Attribute) *html.Node

	Attributes(attrs []ast.Attribute) []html.Attribute
}

// Default is the standard generator.
type Default struct {
	// EscapeText makes words HTML-escaped. By default words are written as
	// they appear in the source.
	EscapeText bool
}

var _ Generator = Default{}

func (Default) HorizontalRule() *html.Node {
	return Element(atom.Hr, nil)
}

func (Default) PageBreak() *html.Node {
	return Element(atom.Div, []html.Attribute{
		{Key: "style", Val: "page-break-after: always;"},
	})
}

func (Default) Paragraph(children []*html.Node) *html.Node {
	return Element(atom.Div, []html.Attribute{{Key: "class", Val: "paragraph"}},
		Element(atom.P, nil, children...))
}

func (d Default) Word(w string) *html.Node {
	if d.EscapeText {
		return &html.Node{Type: html.TextNode, Data: w}
	}
	return &html.Node{Type: html.RawNode, Data: w}
}

func (d Default) Space() *html.Node {
	return d.Word(" ")
}

// Mark renders a <mark> element, or a <span> if the mark has attributes.
func (Default) Mark(children []*html.Node, attrs []html.Attribute) *html.Node {
	if len(attrs) == 0 {
		return Element(atom.Mark, nil, children...)
	}
	return Element(atom.Span, attrs, children...)
}

func (Default) Italic(children []*html.Node, attrs []html.Attribute) *html.Node {
	return Element(atom.Em, attrs, children...)
}

func (Default) Bold(children []*html.Node, attrs []html.Attribute) *html.Node {
	return Element(atom.Strong, attrs, children...)
}

func (Default) InlineCode(children []*html.Node, attrs []html.Attribute) *html.Node {
	return Element(atom.Code, attrs, children...)
}

func (Default) SuperScript(children []*html.Node, attrs []html.Attribute) *html.Node {
	return Element(atom.Sup, attrs, children...)
}

func (Default) SubScript(children []*html.Node, attrs []html.Attribute) *html.Node {
	return Element(atom.Sub, attrs, children...)
}

// Attributes turns ids into id attributes and roles into a single class
// attribute, keeping source order.
func (Default) Attributes(attrs []ast.Attribute) []html.Attribute {
	var out []html.Attribute
	class := -1
	for _, a := range attrs {
		switch a := a.(type) {
		case ast.Role:
			if class >= 0 {
				out[class].Val += " " + string(a)
				continue
			}
			class = len(out)
			out = append(out, html.Attribute{Key: "class", Val: string(a)})
		case ast.ID:
			out = append(out, html.Attribute{Key: "id", Val: string(a)})
		}
	}
	return out
}

// Element returns a new element node. Nil children are skipped.
func Element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}
