// Package format provides file format detection for the richtext library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a recognized document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// RTF indicates a Rich Text Format document.
	RTF
	// Text indicates a plain text file.
	Text
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case RTF:
		return "RTF"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case RTF:
		return ".rtf"
	case Text:
		return ".txt"
	default:
		return ""
	}
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".rtf":
		return RTF
	case ".txt", ".text":
		return Text
	default:
		return Unknown
	}
}

// rtfMagic is the opening of every RTF document: the root group and its
// \rtf control word.
var rtfMagic = []byte(`{\rtf`)

// DetectContent determines the format by sniffing the leading bytes.
// A UTF-8 byte order mark before the magic is tolerated.
func DetectContent(data []byte) Format {
	data = bytes.TrimPrefix(data, []byte{0xef, 0xbb, 0xbf})
	if bytes.HasPrefix(data, rtfMagic) {
		return RTF
	}
	return Unknown
}

// IsRTF reports whether data looks like an RTF document.
func IsRTF(data []byte) bool {
	return DetectContent(data) == RTF
}
