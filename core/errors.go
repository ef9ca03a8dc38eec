package core

import (
	"errors"
	"fmt"
)

// Lexing errors. Scan and Lexer.NextToken wrap these in a *LexError.
var (
	// ErrUnexpectedEOF is returned when the input ends inside an open
	// escape sequence or control-word parameter.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrMalformedControlWord is returned when a backslash is followed by
	// something that is neither a control word nor a valid control symbol.
	ErrMalformedControlWord = errors.New("malformed control word")

	// ErrInvalidEscape is returned for an escape sequence that cannot be
	// decoded, such as \' followed by non-hexadecimal digits.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrUnsupportedBinary is returned when a \bin control word is
	// encountered. Raw binary payloads are not supported; continuing past
	// one would desynchronize the token stream.
	ErrUnsupportedBinary = errors.New("embedded binary data is not supported")
)

// Parsing errors. Parser.Parse wraps these in a *ParseError.
var (
	// ErrUnbalancedGroups is returned when a } has no matching {, or when
	// the input ends with groups still open.
	ErrUnbalancedGroups = errors.New("unbalanced groups")

	// ErrUnexpectedToken is returned when a token cannot appear where it
	// was found.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrGroupTooDeep is returned when group nesting exceeds the parser's
	// depth limit. The group stack lives on the heap, so the limit guards
	// memory growth on hostile input rather than the call stack.
	ErrGroupTooDeep = errors.New("group nesting too deep")
)

// LexError reports a failure during tokenization. It wraps one of the
// lexing sentinel errors and records the byte offset of the failure, so
// callers can both locate the problem and match the kind with errors.Is.
type LexError struct {
	Pos int64 // byte offset in the input
	Err error
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lexing failed at byte %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *LexError) Unwrap() error {
	return e.Err
}

// ParseError reports a failure while interpreting the token sequence. It
// wraps one of the parsing sentinel errors and records the position of the
// offending token.
type ParseError struct {
	Pos int64 // byte offset of the token that caused the failure
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing failed at byte %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
