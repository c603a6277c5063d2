package lexer

import (
	"io"
	"strings"

	"github.com/insomnimus/adoc/token"
	"github.com/pkg/errors"
)

// maxEmptyReads bounds the number of consecutive (0, nil) reads we accept
// from a reader before giving up.
const maxEmptyReads = 100

// wordDelimiters are the bytes which end a word.
const wordDelimiters = " *_`#[]^~\n\r\t"

func isWordByte(c byte) bool {
	return strings.IndexByte(wordDelimiters, c) < 0
}

// fill refills the buffer if every byte in it has been consumed.
func (l *Lexer) fill() error {
	if l.index < l.size {
		return nil
	}
	if l.readErr != nil {
		return l.readErr
	}
	if l.eof {
		return io.EOF
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := l.r.Read(l.buf[:])
		if n > 0 {
			l.index, l.size = 0, n
			switch {
			case err == io.EOF:
				l.eof = true
			case err != nil:
				l.readErr = errors.Wrap(err, "reading source")
			}
			return nil
		}
		if err == io.EOF {
			l.eof = true
			return io.EOF
		}
		if err != nil {
			l.readErr = errors.Wrap(err, "reading source")
			return l.readErr
		}
	}
	return errors.Wrap(io.ErrNoProgress, "reading source")
}

// current returns the next unread byte without consuming it.
func (l *Lexer) current() (byte, error) {
	if err := l.fill(); err != nil {
		return 0, err
	}
	return l.buf[l.index], nil
}

// advance consumes the current byte c.
func (l *Lexer) advance(c byte) {
	l.index++
	l.pos.Advance(c)
}

// eat consumes the current byte if it is the expected one.
func (l *Lexer) eat(expected byte) error {
	c, err := l.current()
	if err != nil {
		return err
	}
	if c != expected {
		return &UnexpectedCharError{
			Actual:   c,
			Expected: []byte{expected},
			Pos:      l.pos,
		}
	}
	l.advance(c)
	return nil
}

// advanceWhile consumes bytes as long as pred holds.
func (l *Lexer) advanceWhile(pred func(byte) bool) error {
	for {
		c, err := l.current()
		if err != nil {
			return err
		}
		if !pred(c) {
			return nil
		}
		l.advance(c)
	}
}

func (l *Lexer) skipToEOL() error {
	return l.advanceWhile(func(c byte) bool { return c != '\n' })
}

// skipLine consumes the rest of the line including its newline.
func (l *Lexer) skipLine() error {
	if err := l.skipToEOL(); err != nil {
		return err
	}
	return l.eat('\n')
}

func (l *Lexer) triple(c byte, t token.TokenType) (token.Token, error) {
	for i := 0; i < 3; i++ {
		if err := l.eat(c); err != nil {
			return token.Token{}, err
		}
	}
	return token.New(t), nil
}

// doubled reads a marker which turns into its unconstrained variant when
// directly repeated.
func (l *Lexer) doubled(c byte, single, double token.TokenType) (token.Token, error) {
	l.advance(c)
	n, err := l.current()
	if err == io.EOF {
		return token.New(single), nil
	} else if err != nil {
		return token.Token{}, err
	}
	if n == c {
		l.advance(n)
		return token.New(double), nil
	}
	return token.New(single), nil
}

// comment skips a line or block comment. A comment that starts at the
// beginning of a line takes its line break with it.
func (l *Lexer) comment() error {
	start := l.pos
	wholeLine := start.Column == 1
	if err := l.eat('/'); err != nil {
		return err
	}
	if err := l.eat('/'); err != nil {
		return err
	}
	slashes, err := l.countSlashes(2)
	if err != nil {
		return err
	}
	if slashes == 2 {
		tracer().Debugf("%s: skipping block comment", start)
		if err = l.blockComment(); err != nil {
			return err
		}
	} else {
		tracer().Debugf("%s: skipping line comment", start)
		if err = l.skipToEOL(); err != nil {
			return err
		}
	}
	if wholeLine {
		return l.skipLine()
	}
	return nil
}

// countSlashes consumes up to limit consecutive slashes.
func (l *Lexer) countSlashes(limit int) (int, error) {
	n := 0
	for n < limit {
		c, err := l.current()
		if err != nil {
			return n, err
		}
		if c != '/' {
			break
		}
		l.advance(c)
		n++
	}
	return n, nil
}

// blockComment skips lines until one begins with "////". The delimiter is
// consumed, the rest of its line is not.
func (l *Lexer) blockComment() error {
	for {
		if err := l.skipLine(); err != nil {
			return err
		}
		n, err := l.countSlashes(4)
		if err != nil {
			return err
		}
		if n == 4 {
			return nil
		}
	}
}

func (l *Lexer) word() (token.Token, error) {
	var w []byte
	for {
		c, err := l.current()
		if err == io.EOF && len(w) > 0 {
			break
		} else if err != nil {
			return token.Token{}, err
		}
		if !isWordByte(c) {
			if len(w) == 0 {
				return token.Token{}, errors.Errorf("bug in the lexer, next character %q at %s is not part of a word token", c, l.pos)
			}
			break
		}
		w = append(w, c)
		l.advance(c)
	}
	return token.NewWord(w), nil
}
