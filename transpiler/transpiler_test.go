package transpiler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/insomnimus/adoc/lexer"
	"github.com/insomnimus/adoc/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `// sample document
A *bold* start
and [big]_italic_ text.

'''
#marked# ^sup^ ~sub~ ` + "``code``" + `

<<<
`

func TestToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.html")
	defer teardown()
	//
	var out bytes.Buffer
	stats, err := ToHTML(strings.NewReader(sample), &out, Config{})
	require.NoError(t, err)
	want := `<div class="paragraph"><p>A <strong>bold</strong> start and <em class="big">italic</em> text.</p></div>
<hr/>
<div class="paragraph"><p><mark>marked</mark> <sup>sup</sup> <sub>sub</sub> <code>code</code></p></div>
<div style="page-break-after: always;"></div>
`
	assert.Equal(t, want, out.String())
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, int64(len(want)), stats.Bytes)
}

func TestDeterministicOutput(t *testing.T) {
	var first, second bytes.Buffer
	_, err := ToHTML(strings.NewReader(sample), &first, Config{})
	require.NoError(t, err)
	_, err = ToHTML(strings.NewReader(sample), &second, Config{})
	require.NoError(t, err)
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestStandalone(t *testing.T) {
	var out bytes.Buffer
	conf := Config{Standalone: true, Title: "Tom & Jerry"}
	_, err := ToHTML(strings.NewReader("hello"), &out, conf)
	require.NoError(t, err)
	s := out.String()
	assert.True(t, strings.HasPrefix(s, "<!DOCTYPE html>\n<html>\n"))
	assert.True(t, strings.HasSuffix(s, "</body>\n</html>\n"))
	assert.Contains(t, s, "<title>Tom &amp; Jerry</title>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.Find("body div.paragraph p").Text())
}

func TestUnterminatedSpanEndsDocument(t *testing.T) {
	var out bytes.Buffer
	stats, err := ToHTML(strings.NewReader("done\n\n_never closed"), &out, Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Nodes)
	assert.Equal(t, "<div class=\"paragraph\"><p>done</p></div>\n", out.String())
}

func TestErrorsAreSurfaced(t *testing.T) {
	var out bytes.Buffer
	_, err := ToHTML(strings.NewReader("ok\n\n'' oops"), &out, Config{})
	require.Error(t, err)
	var uc *lexer.UnexpectedCharError
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, "3:3: expected `'`, but found ` ` on line 3, column 3", err.Error())
	assert.Equal(t, "<div class=\"paragraph\"><p>ok</p></div>\n", out.String())

	_, err = ToHTML(strings.NewReader("[a][b]_x_"), &out, Config{})
	var ut *parser.UnexpectedTokenError
	assert.True(t, errors.As(err, &ut))
}

func TestStripBOM(t *testing.T) {
	in := "\xef\xbb\xbfhi"
	var out bytes.Buffer
	_, err := ToHTML(strings.NewReader(in), &out, Config{StripBOM: true})
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"paragraph\"><p>hi</p></div>\n", out.String())

	out.Reset()
	_, err = ToHTML(strings.NewReader(in), &out, Config{})
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"paragraph\"><p>\xef\xbb\xbfhi</p></div>\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteError(t *testing.T) {
	_, err := ToHTML(strings.NewReader("a"), failingWriter{}, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
}
