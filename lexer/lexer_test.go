package lexer

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/insomnimus/adoc/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, l *Lexer) []token.Token {
	t.Helper()
	var got []token.Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return got
		}
		require.NoError(t, err)
		got = append(got, tok)
	}
}

func word(s string) token.Token { return token.NewWord([]byte(s)) }

var (
	sp = token.New(token.Space)
	lf = token.New(token.NewLine)
)

func TestNext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.lexer")
	defer teardown()
	//
	doc := "'''\n<<<\r\nsome *bold* and __it__\n" +
		"[#id]``x`` ^up^ ~down~ ]**\tend"
	tests := []token.Token{
		token.New(token.TripleApos),
		lf,
		token.New(token.TripleLt),
		lf,
		word("some"),
		sp,
		token.New(token.Star),
		word("bold"),
		token.New(token.Star),
		sp,
		word("and"),
		sp,
		token.New(token.DoubleUnderscore),
		word("it"),
		token.New(token.DoubleUnderscore),
		lf,
		token.New(token.OpenSquareBracket),
		token.New(token.NumberSign),
		word("id"),
		token.New(token.CloseSquareBracket),
		token.New(token.DoubleBackquote),
		word("x"),
		token.New(token.DoubleBackquote),
		sp,
		token.New(token.Caret),
		word("up"),
		token.New(token.Caret),
		sp,
		token.New(token.Tilde),
		word("down"),
		token.New(token.Tilde),
		sp,
		token.New(token.CloseSquareBracket),
		token.New(token.DoubleStar),
		sp,
		word("end"),
	}
	assert.Equal(t, tests, tokens(t, New(strings.NewReader(doc))))
}

func TestWordsKeepPunctuation(t *testing.T) {
	l := New(strings.NewReader("it's a/b x<y"))
	assert.Equal(t, []token.Token{
		word("it's"), sp, word("a/b"), sp, word("x<y"),
	}, tokens(t, l))
}

func TestTrailingSingleMarker(t *testing.T) {
	l := New(strings.NewReader("a_"))
	assert.Equal(t, []token.Token{word("a"), token.New(token.Underscore)}, tokens(t, l))
}

func TestPosition(t *testing.T) {
	l := New(strings.NewReader("ab c\nd"))
	assert.Equal(t, token.Position{Line: 1, Column: 1}, l.Pos())
	_, err := l.Next() // ab
	require.NoError(t, err)
	assert.Equal(t, token.Position{Line: 1, Column: 3}, l.Pos())
	_, _ = l.Next() // space
	_, _ = l.Next() // c
	_, err = l.Next() // newline
	require.NoError(t, err)
	assert.Equal(t, token.Position{Line: 2, Column: 1}, l.Pos())
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, word("d"), tok)
	assert.Equal(t, token.Position{Line: 2, Column: 2}, l.Pos())
	_, err = l.Next()
	assert.Equal(t, io.EOF, err)
}

func TestPeek(t *testing.T) {
	l := New(strings.NewReader("one two"))
	_, err := l.Next()
	require.NoError(t, err)
	before := l.Pos()
	p1, err := l.Peek()
	require.NoError(t, err)
	p2, err := l.Peek()
	require.NoError(t, err)
	assert.Equal(t, sp, p1)
	assert.Equal(t, p1, p2)
	assert.Equal(t, before, l.Pos(), "Pos must report the position before the peeked token")
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, p1, tok)
	assert.Equal(t, token.Position{Line: 1, Column: 5}, l.Pos())
}

func TestPeekDoesNotReadTwice(t *testing.T) {
	r := &countingReader{r: strings.NewReader("x")}
	l := New(r)
	_, err := l.Peek()
	require.NoError(t, err)
	reads := r.reads
	_, err = l.Peek()
	require.NoError(t, err)
	assert.Equal(t, reads, r.reads)
}

type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func TestIncompleteHorizontalRule(t *testing.T) {
	l := New(strings.NewReader("'' "))
	_, err := l.Next()
	var uc *UnexpectedCharError
	require.True(t, errors.As(err, &uc), "expected UnexpectedCharError, got %v", err)
	assert.Equal(t, byte(' '), uc.Actual)
	assert.Equal(t, []byte{'\''}, uc.Expected)
	assert.Equal(t, token.Position{Line: 1, Column: 3}, uc.Pos)
	assert.Equal(t, "1:3: expected `'`, but found ` ` on line 1, column 3", err.Error())
}

func TestIncompletePageBreak(t *testing.T) {
	l := New(strings.NewReader("x\n<<a"))
	_, _ = l.Next()
	_, _ = l.Next()
	_, err := l.Next()
	var uc *UnexpectedCharError
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, byte('a'), uc.Actual)
	assert.Equal(t, "2:3: expected `<`, but found `a` on line 2, column 3", err.Error())
}

func TestIncompleteMarkerAtEOF(t *testing.T) {
	l := New(strings.NewReader("''"))
	_, err := l.Next()
	assert.Equal(t, io.EOF, err)
}

func TestComments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []token.Token
	}{
		{"line", "a\n// comment\nb", []token.Token{word("a"), lf, word("b")}},
		{"trailing", "a // c\nb", []token.Token{word("a"), sp, lf, word("b")}},
		{"three slashes", "/// still a line comment\nb", []token.Token{word("b")}},
		{"block", "a\n////\nx *y*\n\n////\nb", []token.Token{word("a"), lf, word("b")}},
		{"block with slashes inside", "////\n// x\n///\n////\nb", []token.Token{word("b")}},
		{"at eof", "a\n// bye", []token.Token{word("a"), lf}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, tokens(t, New(strings.NewReader(test.doc))))
		})
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := New(strings.NewReader("////\nnever closed\n"))
	_, err := l.Next()
	assert.Equal(t, io.EOF, err)
}

func TestSingleSlash(t *testing.T) {
	l := New(strings.NewReader("a / b"))
	_, _ = l.Next()
	_, _ = l.Next()
	_, err := l.Next()
	assert.EqualError(t, err, "1:4: expected `/`, but found ` ` on line 1, column 4")
}

func TestWordAcrossBufferRefill(t *testing.T) {
	long := strings.Repeat("x", bufferSize+17)
	l := New(iotest.OneByteReader(strings.NewReader(long + " y")))
	assert.Equal(t, []token.Token{word(long), sp, word("y")}, tokens(t, l))

	l = New(strings.NewReader(long))
	assert.Equal(t, []token.Token{word(long)}, tokens(t, l))
}

func TestDataWithEOF(t *testing.T) {
	l := New(iotest.DataErrReader(strings.NewReader("**")))
	assert.Equal(t, []token.Token{token.New(token.DoubleStar)}, tokens(t, l))
}

func TestReadError(t *testing.T) {
	l := New(iotest.ErrReader(errors.New("disk on fire")))
	_, err := l.Next()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
