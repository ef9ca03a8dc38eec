package core

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/tsawler/richtext/internal/codepage"
)

// Lexer performs lexical analysis of RTF content, turning raw characters
// into Tokens. It has no knowledge of what control words mean; it only
// applies the boundary rules of the format: group delimiters, control
// words with optional signed parameters, control symbols, and the escape
// forms (\'xx hex escapes and \uN Unicode escapes).
//
// Two pieces of state do live in the lexer because the format defines them
// at the character level: the active code page for decoding \'xx bytes
// (switched by \ansi, \mac, \pc, \pca and \ansicpg), and the \ucN fallback
// skip count applied after each \uN escape.
type Lexer struct {
	reader *bufio.Reader
	pos    int64
	enc    encoding.Encoding // active code page for \'xx escapes
	ucSkip int               // current \ucN value
	skip   int               // fallback characters left to skip after \uN
}

// NewLexer creates a new lexer reading RTF text from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		enc:    codepage.Default,
		ucSkip: 1,
	}
}

// SetEncoding overrides the code page used to decode \'xx escapes and raw
// high bytes. The document's own \ansicpg declaration, if present, takes
// effect when the lexer reaches it.
func (l *Lexer) SetEncoding(enc encoding.Encoding) {
	if enc != nil {
		l.enc = enc
	}
}

// Scan tokenizes an entire RTF document and returns the complete ordered
// token sequence. On failure it returns a *LexError and no tokens; a
// partial sequence is never produced.
func Scan(input string) ([]Token, error) {
	l := NewLexer(strings.NewReader(input))
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, *tok)
	}
}

// NextToken returns the next token from the input. At end of input it
// returns a token of type TokenEOF.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		start := l.pos
		b, err := l.readByte()
		if err == io.EOF {
			return &Token{Type: TokenEOF, Pos: l.pos}, nil
		}
		if err != nil {
			return nil, err
		}

		switch b {
		case '{':
			l.skip = 0
			return &Token{Type: TokenGroupOpen, Pos: start}, nil
		case '}':
			l.skip = 0
			return &Token{Type: TokenGroupClose, Pos: start}, nil
		case '\r', '\n':
			// RTF writers wrap lines freely; bare newlines are not content.
			continue
		case '\\':
			tok, err := l.readControl(start)
			if err != nil {
				return nil, err
			}
			if tok == nil {
				// Consumed entirely as \uN fallback.
				continue
			}
			return tok, nil
		default:
			tok, err := l.readText(b, start)
			if err != nil {
				return nil, err
			}
			if tok == nil {
				continue
			}
			return tok, nil
		}
	}
}

// readControl reads whatever follows a backslash: a control word, a control
// symbol, a hex escape, or a newline standing in for \par.
func (l *Lexer) readControl(start int64) (*Token, error) {
	b, err := l.readByte()
	if err == io.EOF {
		return nil, l.errAt(start, ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, err
	}

	switch {
	case b == '\'':
		return l.readHexEscape(start)

	case b == '\r' || b == '\n':
		// A backslash followed by a raw newline is a paragraph break,
		// equivalent to \par.
		l.skip = 0
		if b == '\r' {
			if next, err := l.peek(); err == nil && next == '\n' {
				l.readByte()
			}
		}
		return &Token{Type: TokenControlWord, Name: "par", Pos: start}, nil

	case isAlpha(b):
		return l.readControlWord(b, start)

	case isDigit(b):
		// A parameter can only follow a control word name.
		return nil, l.errAt(start, ErrMalformedControlWord)

	default:
		// Any other single non-letter character is a control symbol,
		// covering the escaped literals \{ \} \\ and symbol keywords
		// like \~ \- \_ \*.
		l.skip = 0
		return &Token{Type: TokenControlSymbol, Symbol: b, Pos: start}, nil
	}
}

// readControlWord reads the letters of a control word, its optional signed
// decimal parameter, and the optional single-space delimiter. Like group
// delimiters and control symbols, a control word ends any pending \uN
// fallback run; only \u itself re-arms the skip counter below.
func (l *Lexer) readControlWord(first byte, start int64) (*Token, error) {
	l.skip = 0
	name := []byte{first}
	for {
		b, err := l.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isAlpha(b) {
			break
		}
		l.readByte()
		name = append(name, b)
	}

	param := 0
	hasParam := false
	neg := false
	if b, err := l.peek(); err == nil && (b == '-' || isDigit(b)) {
		if b == '-' {
			l.readByte()
			neg = true
			next, err := l.peek()
			if err == io.EOF {
				return nil, l.errAt(start, ErrUnexpectedEOF)
			}
			if err != nil {
				return nil, err
			}
			if !isDigit(next) {
				return nil, l.errAt(start, ErrMalformedControlWord)
			}
		}
		for {
			b, err := l.peek()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			if !isDigit(b) {
				break
			}
			l.readByte()
			param = param*10 + int(b-'0')
			hasParam = true
		}
		if neg {
			param = -param
		}
	}

	// A single trailing space is the word's delimiter, not text. Any other
	// following character is left for the next token.
	if b, err := l.peek(); err == nil && b == ' ' {
		l.readByte()
	}

	word := string(name)
	switch word {
	case "bin":
		// The N raw bytes that follow cannot be tokenized; refuse rather
		// than misread the payload as tokens.
		return nil, l.errAt(start, ErrUnsupportedBinary)
	case "u":
		if hasParam {
			return l.unicodeEscape(param, start), nil
		}
	case "uc":
		if hasParam && param >= 0 {
			l.ucSkip = param
		} else {
			l.ucSkip = 1
		}
	case "ansi":
		l.enc = codepage.FromCodePage(1252)
	case "mac":
		l.enc = codepage.FromCodePage(10000)
	case "pc":
		l.enc = codepage.FromCodePage(437)
	case "pca":
		l.enc = codepage.FromCodePage(850)
	case "ansicpg":
		if hasParam {
			l.enc = codepage.FromCodePage(param)
		}
	}

	return &Token{Type: TokenControlWord, Name: word, Param: param, HasParam: hasParam, Pos: start}, nil
}

// unicodeEscape turns a \uN parameter into a one-code-point text token and
// arms the fallback skip counter.
func (l *Lexer) unicodeEscape(param int, start int64) *Token {
	// Code points above 32767 are written as negative numbers, per the
	// signed 16-bit convention of RTF parameters.
	if param < 0 {
		param += 65536
	}
	l.skip = l.ucSkip
	return &Token{Type: TokenText, Text: string(rune(param)), Pos: start}
}

// readHexEscape reads one or more consecutive \'xx escapes and decodes the
// assembled bytes under the active code page. Consecutive escapes are
// decoded as one run so that double-byte code pages see whole characters.
// The leading \' has already been consumed.
func (l *Lexer) readHexEscape(start int64) (*Token, error) {
	var raw []byte
	for {
		h1, err := l.readByte()
		if err == io.EOF {
			return nil, l.errAt(start, ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, err
		}
		h2, err := l.readByte()
		if err == io.EOF {
			return nil, l.errAt(start, ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, err
		}
		if !isHexDigit(h1) || !isHexDigit(h2) {
			return nil, l.errAt(start, ErrInvalidEscape)
		}

		val := hexValue(h1)*16 + hexValue(h2)
		if l.skip > 0 {
			// This escape is \uN fallback text; one escape counts as one
			// skipped character.
			l.skip--
		} else {
			raw = append(raw, val)
		}

		next, err := l.peekN(2)
		if err != nil || len(next) < 2 || next[0] != '\\' || next[1] != '\'' {
			break
		}
		l.readByte()
		l.readByte()
	}

	if len(raw) == 0 {
		return nil, nil
	}
	return &Token{Type: TokenText, Text: codepage.Decode(l.enc, raw), Pos: start}, nil
}

// readText reads a run of plain characters up to the next control sequence
// or group boundary. Bare newlines inside the run are dropped; bytes above
// 0x7F are decoded under the active code page.
func (l *Lexer) readText(first byte, start int64) (*Token, error) {
	var buf bytes.Buffer
	if l.skip > 0 {
		l.skip--
	} else {
		buf.WriteByte(first)
	}

	for {
		b, err := l.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if b == '\\' || b == '{' || b == '}' {
			break
		}
		l.readByte()
		if b == '\r' || b == '\n' {
			continue
		}
		if l.skip > 0 {
			l.skip--
			continue
		}
		buf.WriteByte(b)
	}

	if buf.Len() == 0 {
		return nil, nil
	}

	text := buf.String()
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			text = codepage.Decode(l.enc, buf.Bytes())
			break
		}
	}
	return &Token{Type: TokenText, Text: text, Pos: start}, nil
}

// readByte reads a single byte and advances the position.
func (l *Lexer) readByte() (byte, error) {
	b, err := l.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	l.pos++
	return b, nil
}

// peek looks at the next byte without consuming it.
func (l *Lexer) peek() (byte, error) {
	bytes, err := l.reader.Peek(1)
	if err != nil {
		return 0, err
	}
	return bytes[0], nil
}

// peekN looks at the next n bytes without consuming them.
func (l *Lexer) peekN(n int) ([]byte, error) {
	return l.reader.Peek(n)
}

func (l *Lexer) errAt(pos int64, err error) error {
	return &LexError{Pos: pos, Err: err}
}

// Helper functions

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func hexValue(b byte) byte {
	if b >= '0' && b <= '9' {
		return b - '0'
	}
	if b >= 'a' && b <= 'f' {
		return b - 'a' + 10
	}
	if b >= 'A' && b <= 'F' {
		return b - 'A' + 10
	}
	return 0
}
