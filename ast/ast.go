package ast

import (
	"fmt"
	"strings"
)

var tagNames = map[Tag]string{
	Mark:        "Mark",
	Italic:      "Italic",
	Bold:        "Bold",
	InlineCode:  "InlineCode",
	SuperScript: "SuperScript",
	SubScript:   "SubScript",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// NewText returns a Text holding items.
func NewText(items ...Item) Text {
	return Text{Items: items}
}

// Empty reports whether t has no items other than spaces.
func (t Text) Empty() bool {
	for _, x := range t.Items {
		if _, ok := x.(Space); !ok {
			return false
		}
	}
	return true
}

// Bare returns the text content with all markup removed.
func (t Text) Bare() string {
	var out strings.Builder
	t.bare(&out)
	return out.String()
}

func (t Text) bare(out *strings.Builder) {
	for _, x := range t.Items {
		switch x := x.(type) {
		case Word:
			out.WriteString(string(x))
		case Space:
			out.WriteByte(' ')
		case *Markup:
			x.Text.bare(out)
		}
	}
}

// Bare returns the text content of the paragraph.
func (p *Paragraph) Bare() string { return p.Text.Bare() }

// Bare returns the text content of the span.
func (m *Markup) Bare() string { return m.Text.Bare() }

// Roles returns the roles among attrs.
func Roles(attrs []Attribute) []string {
	var roles []string
	for _, a := range attrs {
		if r, ok := a.(Role); ok {
			roles = append(roles, string(r))
		}
	}
	return roles
}

// Kind returns a short description of a node for tracing.
func Kind(n Node) string {
	switch n := n.(type) {
	case HorizontalRule:
		return "horizontal rule"
	case PageBreak:
		return "page break"
	case *Paragraph:
		return fmt.Sprintf("paragraph %q", n.Bare())
	}
	return fmt.Sprintf("%T", n)
}
