package model

// Painter is the character-level style snapshot applied to a run of text:
// the font reference, size and emphasis flags. Painters are plain values
// compared with ==; two runs belong to the same StyledBlock exactly when
// their Painters and Paragraphs are equal.
type Painter struct {
	FontRef      int // index into the font table
	FontSize     int // half-points, per the \fs convention
	ColorRef     int // foreground index into the color table (\cf)
	BackColorRef int // background index into the color table (\cb)

	Bold        bool
	Italic      bool
	Underline   bool
	Superscript bool
	Subscript   bool
	Smallcaps   bool
	Strike      bool
}

// DefaultPainter returns the painter in effect before any formatting
// control word has been seen.
func DefaultPainter() Painter {
	return Painter{}
}

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	// LeftAligned is the default alignment (\ql).
	LeftAligned Alignment = iota
	// RightAligned corresponds to \qr.
	RightAligned
	// Centered corresponds to \qc.
	Centered
	// Justified corresponds to \qj.
	Justified
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case RightAligned:
		return "RightAligned"
	case Centered:
		return "Centered"
	case Justified:
		return "Justified"
	default:
		return "LeftAligned"
	}
}

// LineSpacing is the \sl line-spacing value. Auto reports that spacing is
// determined by the tallest character on the line, which is both the
// default and the meaning of \sl1000.
type LineSpacing struct {
	Auto   bool
	Height int // twips; set only when Auto is false
}

// AutoLineSpacing returns the default, automatic line spacing.
func AutoLineSpacing() LineSpacing {
	return LineSpacing{Auto: true}
}

// ExactLineSpacing returns line spacing of the given height. A negative
// height means "exactly |height|" in RTF, so the absolute value is kept.
func ExactLineSpacing(height int) LineSpacing {
	if height < 0 {
		height = -height
	}
	return LineSpacing{Height: height}
}

// Spacing is the vertical spacing of a paragraph, in twips.
type Spacing struct {
	Before         int // \sb
	After          int // \sa
	BetweenLine    LineSpacing
	LineMultiplier int // \slmul; meaningful only alongside \sl
}

// Indent is the indentation of a paragraph, in twips.
type Indent struct {
	Left      int // \li
	Right     int // \ri
	FirstLine int // \fi
}

// Paragraph is the block-level layout snapshot: alignment, spacing,
// indentation and tab width. Like Painter it is a plain value compared
// with ==.
type Paragraph struct {
	Alignment Alignment
	Spacing   Spacing
	Indent    Indent
	TabWidth  int // twips, from \tx or \pardeftab
}

// DefaultParagraph returns the paragraph layout in effect before any
// paragraph control word has been seen, and the layout \pard resets to.
func DefaultParagraph() Paragraph {
	return Paragraph{
		Spacing: Spacing{BetweenLine: AutoLineSpacing()},
	}
}
