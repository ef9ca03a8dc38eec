// Package codepage maps RTF character-set identifiers to text encodings.
//
// RTF names legacy code pages two ways: the \ansicpg control word carries a
// Windows code page number (1252, 932, ...), while \fcharset entries in the
// font table use the Windows charset byte (0, 128, 204, ...). Both are
// resolved here to golang.org/x/text encodings so that \'xx escape bytes can
// be decoded to Unicode text.
package codepage

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Default is the encoding used when a document does not declare a code page.
// RTF is an ANSI format by default, which in practice means Windows-1252.
var Default encoding.Encoding = charmap.Windows1252

// byCodePage maps Windows code page numbers, as used by \ansicpg.
var byCodePage = map[int]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
}

// byCharset maps Windows charset bytes, as used by \fcharset.
var byCharset = map[int]encoding.Encoding{
	0:   charmap.Windows1252, // ANSI
	1:   charmap.Windows1252, // default
	2:   charmap.Windows1252, // symbol; decoded as ANSI
	77:  charmap.Macintosh,
	128: japanese.ShiftJIS,
	129: korean.EUCKR,
	134: simplifiedchinese.GBK,
	136: traditionalchinese.Big5,
	161: charmap.Windows1253,
	162: charmap.Windows1254,
	163: charmap.Windows1258,
	177: charmap.Windows1255,
	178: charmap.Windows1256,
	186: charmap.Windows1257,
	204: charmap.Windows1251,
	222: charmap.Windows874,
	238: charmap.Windows1250,
	254: charmap.CodePage437,
}

// FromCodePage returns the encoding for a Windows code page number.
// Unknown code pages fall back to Default.
func FromCodePage(cp int) encoding.Encoding {
	if enc, ok := byCodePage[cp]; ok {
		return enc
	}
	return Default
}

// FromCharset returns the encoding for an RTF \fcharset value.
// Unknown charsets fall back to Default.
func FromCharset(cs int) encoding.Encoding {
	if enc, ok := byCharset[cs]; ok {
		return enc
	}
	return Default
}

// Decode converts a run of legacy bytes to a UTF-8 string under enc.
// Undecodable bytes are replaced rather than reported; hex escapes carry no
// recoverable position once the run has been assembled.
func Decode(enc encoding.Encoding, data []byte) string {
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
