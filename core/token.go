package core

import "fmt"

// TokenType represents the type of token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenGroupOpen     // {
	TokenGroupClose    // }
	TokenControlWord   // \word or \word123
	TokenControlSymbol // \ followed by a single non-letter
	TokenText          // plain text run
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenGroupOpen:
		return "GroupOpen"
	case TokenGroupClose:
		return "GroupClose"
	case TokenControlWord:
		return "ControlWord"
	case TokenControlSymbol:
		return "ControlSymbol"
	case TokenText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token of an RTF document.
//
// Only the fields relevant to the token type are populated: Name, Param and
// HasParam for control words, Symbol for control symbols, Text for text runs.
// Tokens are immutable once produced by the lexer.
type Token struct {
	Type     TokenType
	Name     string // control word name, without the backslash
	Param    int    // optional signed parameter of a control word
	HasParam bool   // whether Param was present in the source
	Symbol   byte   // the character of a control symbol
	Text     string // decoded text of a text run
	Pos      int64  // byte offset in the input where the token started
}

// String returns a readable representation of the token for diagnostics.
func (t Token) String() string {
	switch t.Type {
	case TokenControlWord:
		if t.HasParam {
			return fmt.Sprintf("ControlWord(\\%s%d)", t.Name, t.Param)
		}
		return fmt.Sprintf("ControlWord(\\%s)", t.Name)
	case TokenControlSymbol:
		return fmt.Sprintf("ControlSymbol(\\%c)", t.Symbol)
	case TokenText:
		return fmt.Sprintf("Text(%q)", t.Text)
	default:
		return t.Type.String()
	}
}
