package token

import "fmt"

// Position is a 1-based line and column in the source.
type Position struct {
	Line, Column int
}

// Start is the position of the first byte of a document.
func Start() Position {
	return Position{Line: 1, Column: 1}
}

// Advance moves the position past b.
func (p *Position) Advance(b byte) {
	if b == '\n' {
		p.Line++
		p.Column = 1
		return
	}
	p.Column++
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
