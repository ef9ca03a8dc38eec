// Package richtext provides a fluent API for parsing Rich Text Format
// documents into a structured, formatting-aware document model.
//
// Basic usage:
//
//	text, err := richtext.Open("document.rtf").Text()
//	if err != nil {
//	    // handle error
//	}
//
// The full document model, with the header tables and per-block styles, is
// also available:
//
//	doc, err := richtext.Open("document.rtf").Document()
//	for _, block := range doc.Body {
//	    fmt.Printf("%q bold=%v\n", block.Text, block.Painter.Bold)
//	}
//
// For advanced use cases, the lower-level core, model and reader packages
// are also available.
package richtext

import (
	"io"

	"github.com/tsawler/richtext/model"
)

// Open prepares the named RTF file for parsing and returns an Extractor
// for fluent configuration. The file is not read until a terminal
// operation such as Document or Text is called.
//
// Example:
//
//	doc, err := richtext.Open("document.rtf").Document()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor over an already-opened stream. The
// stream is consumed by the first terminal operation.
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		source:  r,
		options: defaultOptions(),
	}
}

// FromString creates an Extractor over an in-memory RTF document.
func FromString(content string) *Extractor {
	return &Extractor{
		content:    content,
		hasContent: true,
		options:    defaultOptions(),
	}
}

// ParseString is a convenience composition of scanning and parsing for an
// in-memory document.
func ParseString(content string) (*model.Document, error) {
	return FromString(content).Document()
}

// ParseFile is a convenience composition of reading, scanning and parsing
// for a file on disk.
func ParseFile(filename string) (*model.Document, error) {
	return Open(filename).Document()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := richtext.Must(richtext.Open("document.rtf").Text())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
