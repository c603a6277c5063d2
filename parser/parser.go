package parser

import (
	"io"

	"github.com/insomnimus/adoc/ast"
	"github.com/insomnimus/adoc/lexer"
	"github.com/insomnimus/adoc/token"
	"github.com/pkg/errors"
)

// spans maps the opening marker of an inline span to its tag. Spans are
// closed by the same marker.
var spans = map[token.TokenType]ast.Tag{
	token.NumberSign:       ast.Mark,
	token.Underscore:       ast.Italic,
	token.DoubleUnderscore: ast.Italic,
	token.Star:             ast.Bold,
	token.DoubleStar:       ast.Bold,
	token.Backquote:        ast.InlineCode,
	token.DoubleBackquote:  ast.InlineCode,
	token.Caret:            ast.SuperScript,
	token.Tilde:            ast.SubScript,
}

type Parser struct {
	tokens *lexer.Lexer
}

// New returns a parser reading tokens from l. The parser takes ownership of l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{tokens: l}
}

// FromReader returns a parser for the document read from r.
func FromReader(r io.Reader) *Parser {
	return New(lexer.New(r))
}

// Next parses the next node of the document. When the document is
// exhausted, the error is io.EOF.
func (p *Parser) Next() (ast.Node, error) {
	for {
		kind, err := p.nodeType()
		if err != nil {
			return nil, err
		}
		pos := p.tokens.Pos()
		var n ast.Node
		switch kind {
		case kindSkip:
			if _, err = p.tokens.Next(); err != nil {
				return nil, err
			}
			continue
		case kindHorizontalRule:
			n, err = p.horizontalRule()
		case kindPageBreak:
			n, err = p.pageBreak()
		default:
			n, err = p.paragraph()
		}
		if err != nil {
			return nil, err
		}
		tracer().Debugf("%s: %s", pos, ast.Kind(n))
		return n, nil
	}
}

func (p *Parser) horizontalRule() (ast.Node, error) {
	if err := p.eat(token.TripleApos); err != nil {
		return nil, err
	}
	return ast.HorizontalRule{}, nil
}

func (p *Parser) pageBreak() (ast.Node, error) {
	if err := p.eat(token.TripleLt); err != nil {
		return nil, err
	}
	return ast.PageBreak{}, nil
}

// paragraph reads lines until a blank line, the end of the input or a line
// starting with a horizontal rule or page break.
func (p *Parser) paragraph() (ast.Node, error) {
	var items []ast.Item
	for first := true; ; first = false {
		if !first {
			if err := p.skipSpaces(); errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return nil, err
			}
			kind, err := p.nodeType()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return nil, err
			}
			if kind == kindHorizontalRule || kind == kindPageBreak {
				break
			}
		}
		line, end, err := p.line()
		if err != nil {
			return nil, err
		}
		if ast.NewText(line...).Empty() {
			break
		}
		items = joinLine(items, line)
		if end {
			break
		}
	}
	return &ast.Paragraph{Text: ast.NewText(items...)}, nil
}

// line parses the items up to the next line break and consumes the line
// break. end reports whether the input ended first.
func (p *Parser) line() (items []ast.Item, end bool, err error) {
	for {
		t, err := p.tokens.Peek()
		if errors.Is(err, io.EOF) {
			return items, true, nil
		} else if err != nil {
			return nil, false, err
		}
		if t.Type == token.NewLine {
			_, err = p.tokens.Next()
			return items, false, err
		}
		item, err := p.textItem(nil)
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)
	}
}

// textItem parses a single item of a text. attrs is the attribute list read
// for this item, if any.
func (p *Parser) textItem(attrs []ast.Attribute) (ast.Item, error) {
	t, err := p.tokens.Peek()
	if err != nil {
		return nil, err
	}
	if tag, ok := spans[t.Type]; ok {
		return p.span(t.Type, tag, attrs)
	}
	// Attributes only apply to spans; a word or space drops them.
	switch t.Type {
	case token.Word:
		return p.word()
	case token.Space:
		if err = p.eat(token.Space); err != nil {
			return nil, err
		}
		return ast.Space{}, nil
	case token.OpenSquareBracket:
		if attrs != nil {
			return nil, p.unexpected(t, "inline markup instead of a second `[`")
		}
		attrs, err = p.attributes()
		if err != nil {
			return nil, err
		}
		return p.textItem(attrs)
	}
	return nil, errors.Errorf("%s: expected text, but found `%s`", p.tokens.Pos(), t)
}

// span parses an inline span opened and closed by delim.
func (p *Parser) span(delim token.TokenType, tag ast.Tag, attrs []ast.Attribute) (ast.Item, error) {
	if err := p.eat(delim); err != nil {
		return nil, err
	}
	text, err := p.textUntil(delim)
	if err != nil {
		return nil, err
	}
	if err = p.eat(delim); err != nil {
		return nil, err
	}
	return &ast.Markup{Tag: tag, Text: text, Attributes: attrs}, nil
}

// textUntil parses items up to, not including, the closing marker. Line
// breaks inside the span read as spaces; a blank line is an error.
func (p *Parser) textUntil(closing token.TokenType) (ast.Text, error) {
	var items []ast.Item
	blank := false
	for {
		t, err := p.tokens.Peek()
		if err != nil {
			return ast.Text{}, err
		}
		switch t.Type {
		case closing:
			return ast.NewText(items...), nil
		case token.NewLine:
			if blank {
				return ast.Text{}, p.unexpected(t, "closing `"+token.New(closing).String()+"`")
			}
			if _, err = p.tokens.Next(); err != nil {
				return ast.Text{}, err
			}
			items = appendSpace(items)
			blank = true
			continue
		}
		item, err := p.textItem(nil)
		if err != nil {
			return ast.Text{}, err
		}
		if isSpace(item) {
			items = appendSpace(items)
			continue
		}
		blank = false
		items = append(items, item)
	}
}

func (p *Parser) attributes() ([]ast.Attribute, error) {
	if err := p.eat(token.OpenSquareBracket); err != nil {
		return nil, err
	}
	attr, err := p.attribute()
	if err != nil {
		return nil, err
	}
	if err = p.eat(token.CloseSquareBracket); err != nil {
		return nil, err
	}
	return []ast.Attribute{attr}, nil
}

// attribute parses a role ("name") or an id ("#name").
func (p *Parser) attribute() (ast.Attribute, error) {
	t, err := p.tokens.Peek()
	if err != nil {
		return nil, err
	}
	id := false
	if t.Type == token.NumberSign {
		id = true
		if err = p.eat(token.NumberSign); err != nil {
			return nil, err
		}
		if t, err = p.tokens.Peek(); err != nil {
			return nil, err
		}
	}
	if t.Type != token.Word {
		return nil, p.unexpected(t, "ident")
	}
	s, err := p.wordText()
	if err != nil {
		return nil, err
	}
	if id {
		return ast.ID(s), nil
	}
	return ast.Role(s), nil
}

func (p *Parser) word() (ast.Item, error) {
	s, err := p.wordText()
	if err != nil {
		return nil, err
	}
	return ast.Word(s), nil
}
