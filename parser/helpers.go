package parser

import (
	"unicode/utf8"

	"github.com/insomnimus/adoc/ast"
	"github.com/insomnimus/adoc/token"
	"github.com/pkg/errors"
)

type nodeKind uint8

const (
	kindText nodeKind = iota
	kindHorizontalRule
	kindPageBreak
	kindSkip
)

// nodeType classifies the next token at block level.
func (p *Parser) nodeType() (nodeKind, error) {
	t, err := p.tokens.Peek()
	if err != nil {
		return 0, err
	}
	switch t.Type {
	case token.TripleApos:
		return kindHorizontalRule, nil
	case token.TripleLt:
		return kindPageBreak, nil
	case token.NewLine, token.Space:
		return kindSkip, nil
	}
	return kindText, nil
}

// skipSpaces consumes Space tokens up to the next other token.
func (p *Parser) skipSpaces() error {
	for {
		t, err := p.tokens.Peek()
		if err != nil {
			return err
		}
		if t.Type != token.Space {
			return nil
		}
		if _, err = p.tokens.Next(); err != nil {
			return err
		}
	}
}

// eat consumes the next token if it is of the expected type.
func (p *Parser) eat(expected token.TokenType) error {
	t, err := p.tokens.Peek()
	if err != nil {
		return err
	}
	if t.Type != expected {
		return p.unexpected(t, "`"+token.New(expected).String()+"`")
	}
	_, err = p.tokens.Next()
	return err
}

// unexpected reports the peeked token t at the position before it.
func (p *Parser) unexpected(t token.Token, expected string) error {
	return &UnexpectedTokenError{
		Actual:   t.String(),
		Expected: expected,
		Pos:      p.tokens.Pos(),
	}
}

// wordText consumes a word token and returns its text.
func (p *Parser) wordText() (string, error) {
	pos := p.tokens.Pos()
	t, err := p.tokens.Next()
	if err != nil {
		return "", err
	}
	if t.Type != token.Word {
		return "", errors.Errorf("bug in the parser, %s: expected a word token, got %#v", pos, t)
	}
	if !utf8.ValidString(t.Literal) {
		return "", errors.Errorf("%s: word %q is not valid UTF-8", pos, t.Literal)
	}
	return t.Literal, nil
}

func isSpace(x ast.Item) bool {
	_, ok := x.(ast.Space)
	return ok
}

// joinLine appends the items of a line to a paragraph, separating the lines
// by a space.
func joinLine(items, line []ast.Item) []ast.Item {
	if len(items) > 0 && len(line) > 0 && !isSpace(items[len(items)-1]) && !isSpace(line[0]) {
		items = append(items, ast.Space{})
	}
	return append(items, line...)
}

func appendSpace(items []ast.Item) []ast.Item {
	if len(items) == 0 || isSpace(items[len(items)-1]) {
		return items
	}
	return append(items, ast.Space{})
}
