package token

import "fmt"

type TokenType uint8

const (
	_ TokenType = iota
	Word
	Space
	NewLine

	Star
	Underscore
	Caret
	Tilde
	Backquote
	NumberSign
	OpenSquareBracket
	CloseSquareBracket

	DoubleStar
	DoubleUnderscore
	DoubleBackquote

	TripleApos
	TripleLt
)

var typeNames = [...]string{
	Word:               "Word",
	Space:              "Space",
	NewLine:            "NewLine",
	Star:               "Star",
	Underscore:         "Underscore",
	Caret:              "Caret",
	Tilde:              "Tilde",
	Backquote:          "Backquote",
	NumberSign:         "NumberSign",
	OpenSquareBracket:  "OpenSquareBracket",
	CloseSquareBracket: "CloseSquareBracket",
	DoubleStar:         "DoubleStar",
	DoubleUnderscore:   "DoubleUnderscore",
	DoubleBackquote:    "DoubleBackquote",
	TripleApos:         "TripleApos",
	TripleLt:           "TripleLt",
}

func (t TokenType) String() string {
	if int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", uint8(t))
}

// literals holds the fixed text of every marker token.
var literals = map[TokenType]string{
	Space:              " ",
	NewLine:            "\n",
	Star:               "*",
	Underscore:         "_",
	Caret:              "^",
	Tilde:              "~",
	Backquote:          "`",
	NumberSign:         "#",
	OpenSquareBracket:  "[",
	CloseSquareBracket: "]",
	DoubleStar:         "**",
	DoubleUnderscore:   "__",
	DoubleBackquote:    "``",
	TripleApos:         "'''",
	TripleLt:           "<<<",
}

// Token is a lexical token. Only Word tokens carry a variable literal,
// for every other type Literal is the marker text.
type Token struct {
	Type    TokenType
	Literal string
}

// New returns the marker token of type t.
func New(t TokenType) Token {
	return Token{Type: t, Literal: literals[t]}
}

// NewWord returns a Word token for the given bytes.
func NewWord(b []byte) Token {
	return Token{Type: Word, Literal: string(b)}
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token{Type: %s, Literal: %q}", t.Type, t.Literal)
}

// String renders the token the way it is shown to users in diagnostics.
func (t Token) String() string {
	switch t.Type {
	case Space:
		return "(space)"
	case NewLine:
		return "(newline)"
	}
	return t.Literal
}
