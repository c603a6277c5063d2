package lexer

import (
	"io"

	"github.com/insomnimus/adoc/token"
)

const bufferSize = 4096

var singles = map[byte]token.TokenType{
	'#': token.NumberSign,
	'[': token.OpenSquareBracket,
	']': token.CloseSquareBracket,
	'^': token.Caret,
	'~': token.Tilde,
}

// doubles maps the markers which have an unconstrained variant.
var doubles = map[byte][2]token.TokenType{
	'_': {token.Underscore, token.DoubleUnderscore},
	'*': {token.Star, token.DoubleStar},
	'`': {token.Backquote, token.DoubleBackquote},
}

type lookahead struct {
	tok  token.Token
	prev token.Position
}

type Lexer struct {
	r       io.Reader
	buf     [bufferSize]byte
	index   int
	size    int
	eof     bool
	readErr error
	pos     token.Position
	next    *lookahead
}

// New returns a lexer reading from r. The lexer reads r lazily and never
// reads more than one buffer ahead of the token it returns.
func New(r io.Reader) *Lexer {
	return &Lexer{
		r:   r,
		pos: token.Start(),
	}
}

// Next returns the next token. At the end of the input the error is io.EOF.
func (l *Lexer) Next() (token.Token, error) {
	if l.next != nil {
		t := l.next.tok
		l.next = nil
		return t, nil
	}
	for {
		c, err := l.current()
		if err != nil {
			return token.Token{}, err
		}
		switch c {
		case '/':
			if err = l.comment(); err != nil {
				return token.Token{}, err
			}
			continue
		case '\r':
			l.advance(c)
			continue
		case '\'':
			return l.triple(c, token.TripleApos)
		case '<':
			return l.triple(c, token.TripleLt)
		case '\n':
			l.advance(c)
			return token.New(token.NewLine), nil
		case ' ', '\t':
			l.advance(c)
			return token.New(token.Space), nil
		}
		if t, ok := singles[c]; ok {
			l.advance(c)
			return token.New(t), nil
		}
		if t, ok := doubles[c]; ok {
			return l.doubled(c, t[0], t[1])
		}
		return l.word()
	}
}

// Peek returns the next token without consuming it. Calling Peek again
// before Next returns the same token without reading the source.
func (l *Lexer) Peek() (token.Token, error) {
	if l.next == nil {
		prev := l.pos
		t, err := l.Next()
		if err != nil {
			return token.Token{}, err
		}
		l.next = &lookahead{tok: t, prev: prev}
	}
	return l.next.tok, nil
}

// Pos returns the current position. While a peeked token is pending, this is
// the position the lexer had before reading that token.
func (l *Lexer) Pos() token.Position {
	if l.next != nil {
		return l.next.prev
	}
	return l.pos
}
