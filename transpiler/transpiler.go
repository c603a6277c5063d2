package transpiler

import (
	"io"

	"github.com/insomnimus/adoc/parser"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stats describes the output of a transpilation.
type Stats struct {
	Nodes int
	Bytes int64
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// ToHTML converts the document read from in and writes the HTML to out using
// the Default generator.
func ToHTML(in io.Reader, out io.Writer, conf Config) (Stats, error) {
	return Transpile(in, out, Default{EscapeText: conf.EscapeText}, conf)
}

// Source returns the reader the parser should consume for in, dropping a
// leading byte order mark if conf asks for it.
func Source(in io.Reader, conf Config) io.Reader {
	if conf.StripBOM {
		return transform.NewReader(in, unicode.BOMOverride(transform.Nop))
	}
	return in
}

// Transpile parses the document read from in node by node and writes each
// node, rendered by g and followed by a line break, to out. It stops at the
// end of the input, which includes a span left open at the end of the input.
// Any other error is returned as is, with a stack trace attached.
func Transpile(in io.Reader, out io.Writer, g Generator, conf Config) (Stats, error) {
	var stats Stats
	w := &countingWriter{w: out}
	in = Source(in, conf)
	if conf.Standalone {
		if err := writeHead(w, conf.Title); err != nil {
			return stats, errors.Wrap(err, "writing output")
		}
	}
	p := parser.FromReader(in)
	for {
		n, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			stats.Bytes = w.n
			tracer().Errorf("%v", err)
			return stats, errors.WithStack(err)
		}
		if err = Render(w, g, n); err != nil {
			stats.Bytes = w.n
			return stats, errors.Wrap(err, "rendering node")
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			stats.Bytes = w.n
			return stats, errors.Wrap(err, "writing output")
		}
		stats.Nodes++
	}
	if conf.Standalone {
		if _, err := io.WriteString(w, "</body>\n</html>\n"); err != nil {
			stats.Bytes = w.n
			return stats, errors.Wrap(err, "writing output")
		}
	}
	stats.Bytes = w.n
	tracer().Infof("rendered %d nodes, %d bytes", stats.Nodes, stats.Bytes)
	return stats, nil
}

func writeHead(w io.Writer, title string) error {
	head := "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n"
	if title != "" {
		head += "<title>" + html.EscapeString(title) + "</title>\n"
	}
	head += "</head>\n<body>\n"
	_, err := io.WriteString(w, head)
	return err
}
