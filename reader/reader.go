package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Reader obtains the raw bytes of an RTF document from a file or stream.
// It is the I/O collaborator in front of the core lexer and parser: read
// failures surface here, as distinct errors, before any lexing or parsing
// takes place.
type Reader struct {
	data []byte
}

// Open reads the named file into memory.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return New(f)
}

// New reads the full contents of r into memory.
func New(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return FromBytes(data), nil
}

// FromBytes wraps an in-memory document. A leading UTF-8 byte order mark,
// which some editors prepend even though RTF is an ASCII grammar, is
// stripped.
func FromBytes(data []byte) *Reader {
	data = bytes.TrimPrefix(data, []byte{0xef, 0xbb, 0xbf})
	return &Reader{data: data}
}

// Bytes returns the document bytes.
func (r *Reader) Bytes() []byte {
	return r.data
}

// Text returns the document as a string.
func (r *Reader) Text() string {
	return string(r.data)
}

// Size returns the document length in bytes.
func (r *Reader) Size() int64 {
	return int64(len(r.data))
}
