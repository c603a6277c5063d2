package transpiler

import (
	"io"

	"github.com/insomnimus/adoc/ast"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Build maps n to an HTML tree using g. A generator may return nil to drop
// an element.
func Build(g Generator, n ast.Node) (*html.Node, error) {
	switch n := n.(type) {
	case ast.HorizontalRule:
		return g.HorizontalRule(), nil
	case ast.PageBreak:
		return g.PageBreak(), nil
	case *ast.Paragraph:
		children, err := buildText(g, n.Text)
		if err != nil {
			return nil, err
		}
		return g.Paragraph(children), nil
	}
	return nil, errors.Errorf("cannot render node of type %T", n)
}

func buildText(g Generator, t ast.Text) ([]*html.Node, error) {
	children := make([]*html.Node, 0, len(t.Items))
	for _, x := range t.Items {
		c, err := buildItem(g, x)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, nil
}

func buildItem(g Generator, x ast.Item) (*html.Node, error) {
	switch x := x.(type) {
	case ast.Word:
		return g.Word(string(x)), nil
	case ast.Space:
		return g.Space(), nil
	case *ast.Markup:
		children, err := buildText(g, x.Text)
		if err != nil {
			return nil, err
		}
		attrs := g.Attributes(x.Attributes)
		switch x.Tag {
		case ast.Mark:
			return g.Mark(children, attrs), nil
		case ast.Italic:
			return g.Italic(children, attrs), nil
		case ast.Bold:
			return g.Bold(children, attrs), nil
		case ast.InlineCode:
			return g.InlineCode(children, attrs), nil
		case ast.SuperScript:
			return g.SuperScript(children, attrs), nil
		case ast.SubScript:
			return g.SubScript(children, attrs), nil
		}
		return nil, errors.Errorf("cannot render markup tag %s", x.Tag)
	}
	return nil, errors.Errorf("cannot render item of type %T", x)
}

// Render writes the HTML for n to w.
func Render(w io.Writer, g Generator, n ast.Node) error {
	tree, err := Build(g, n)
	if err != nil {
		return err
	}
	if tree == nil {
		return nil
	}
	return html.Render(w, tree)
}
