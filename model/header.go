package model

// CharacterSet identifies the base character set declared in the document
// header (\ansi, \mac, \pc, \pca).
type CharacterSet int

const (
	// Ansi is the default character set (Windows-1252 in practice).
	Ansi CharacterSet = iota
	// Mac is the Apple Macintosh character set.
	Mac
	// Pc is the IBM PC code page 437 character set.
	Pc
	// Pca is the IBM PC code page 850 character set.
	Pca
)

// String returns the string representation of the character set.
func (c CharacterSet) String() string {
	switch c {
	case Mac:
		return "Mac"
	case Pc:
		return "Pc"
	case Pca:
		return "Pca"
	default:
		return "Ansi"
	}
}

// CodePage returns the Windows code page number conventionally associated
// with the character set.
func (c CharacterSet) CodePage() int {
	switch c {
	case Mac:
		return 10000
	case Pc:
		return 437
	case Pca:
		return 850
	default:
		return 1252
	}
}

// FontFamily identifies the general family of a font table entry
// (\fnil, \froman, \fswiss, ...).
type FontFamily int

const (
	FamilyNil FontFamily = iota
	FamilyRoman
	FamilySwiss
	FamilyModern
	FamilyScript
	FamilyDecor
	FamilyTech
	FamilyBidi
)

// String returns the string representation of the font family.
func (f FontFamily) String() string {
	switch f {
	case FamilyRoman:
		return "Roman"
	case FamilySwiss:
		return "Swiss"
	case FamilyModern:
		return "Modern"
	case FamilyScript:
		return "Script"
	case FamilyDecor:
		return "Decor"
	case FamilyTech:
		return "Tech"
	case FamilyBidi:
		return "Bidi"
	default:
		return "Nil"
	}
}

// FontFamilyFromKeyword maps a font-family control word name ("fswiss",
// "froman", ...) to its FontFamily. The second return value reports whether
// the name was a font-family keyword at all.
func FontFamilyFromKeyword(name string) (FontFamily, bool) {
	switch name {
	case "fnil":
		return FamilyNil, true
	case "froman":
		return FamilyRoman, true
	case "fswiss":
		return FamilySwiss, true
	case "fmodern":
		return FamilyModern, true
	case "fscript":
		return FamilyScript, true
	case "fdecor":
		return FamilyDecor, true
	case "ftech":
		return FamilyTech, true
	case "fbidi":
		return FamilyBidi, true
	}
	return FamilyNil, false
}

// Font is one entry of the font table.
type Font struct {
	Name    string
	Charset int // \fcharset value; 0 means ANSI
	Family  FontFamily
}

// FontTable maps font indexes (the N of \fN) to their Font entries.
type FontTable map[int]Font

// Color is an RGB triple from the color table.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// ColorTable is the ordered sequence of colors declared by \colortbl.
// Index 0 is the "auto" color slot when the table declares one.
type ColorTable []Color

// Get returns the color at index i, or black when the index is out of
// range. Black is the defined default for documents without a \colortbl
// group.
func (ct ColorTable) Get(i int) Color {
	if i < 0 || i >= len(ct) {
		return Color{}
	}
	return ct[i]
}

// Style is one entry of the stylesheet: a named snapshot of character and
// paragraph formatting, referenced from the body with \sN.
type Style struct {
	Name      string
	Painter   Painter
	Paragraph Paragraph
}

// StyleSheet maps style indexes (the N of \sN) to their Style entries.
type StyleSheet map[int]Style

// Header holds the document-level tables parsed from the RTF header:
// the declared character set, the font table, the color table and the
// stylesheet.
type Header struct {
	CharacterSet CharacterSet
	CodePage     int // from \ansicpg; 0 when the document does not declare one
	FontTable    FontTable
	ColorTable   ColorTable
	StyleSheet   StyleSheet
}

// NewHeader returns an empty header with allocated tables.
func NewHeader() Header {
	return Header{
		FontTable:  make(FontTable),
		StyleSheet: make(StyleSheet),
	}
}
