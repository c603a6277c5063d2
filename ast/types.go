package ast

// Node is a block level element of a document.
type Node interface {
	node()
}

// Item is an element of a Text.
type Item interface {
	item()
}

// Attribute is metadata attached to an inline span.
type Attribute interface {
	attribute()
}

type HorizontalRule struct{}

type PageBreak struct{}

type Paragraph struct {
	Text Text
}

// Text is a sequence of items in document order.
type Text struct {
	Items []Item
}

type Word string

type Space struct{}

// Tag is the kind of an inline span.
type Tag uint8

const (
	Mark Tag = iota + 1
	Italic
	Bold
	InlineCode
	SuperScript
	SubScript
)

// Markup is an inline span such as bold or italic text. Spans nest.
type Markup struct {
	Tag        Tag
	Text       Text
	Attributes []Attribute
}

// Role maps to a CSS class.
type Role string

type ID string

func (HorizontalRule) node() {}
func (PageBreak) node()      {}
func (*Paragraph) node()     {}

func (Word) item()    {}
func (Space) item()   {}
func (*Markup) item() {}

func (Role) attribute() {}
func (ID) attribute()   {}
