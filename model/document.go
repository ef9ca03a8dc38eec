package model

import "strings"

// StyledBlock is a maximal contiguous run of body text sharing one Painter
// and one Paragraph. Blocks appear in source order and are immutable once
// the parser has appended them.
//
// ParagraphEnd marks blocks whose run was ended by \par or \line rather
// than by a style change, so paragraph boundaries survive even when
// adjacent paragraphs share identical layout. Text ignores it.
type StyledBlock struct {
	Painter      Painter
	Paragraph    Paragraph
	Text         string
	ParagraphEnd bool
}

// Document is a parsed RTF document: the header tables and the ordered
// sequence of styled text blocks that make up the body. The caller owns the
// document outright once parsing returns.
type Document struct {
	Header Header
	Body   []StyledBlock
}

// NewDocument returns an empty document with an initialized header.
func NewDocument() *Document {
	return &Document{Header: NewHeader()}
}

// Text returns the plain text of the document: every block's text
// concatenated in body order. Paragraph boundaries are structural (block
// boundaries) and are deliberately not rendered as separator characters;
// callers that need them can walk Body themselves.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, block := range d.Body {
		sb.WriteString(block.Text)
	}
	return sb.String()
}

// Font resolves a block's painter against the font table. The second
// return value reports whether the referenced font was declared.
func (d *Document) Font(p Painter) (Font, bool) {
	f, ok := d.Header.FontTable[p.FontRef]
	return f, ok
}

// Color resolves a painter's foreground color against the color table,
// falling back to black for out-of-range references.
func (d *Document) Color(p Painter) Color {
	return d.Header.ColorTable.Get(p.ColorRef)
}
