package core

import "github.com/tsawler/richtext/model"

// wordOp is the tagged effect of a recognized control word. Dispatch is a
// static name-to-operation map followed by an exhaustive switch, never
// string-keyed behavior at the call site.
type wordOp int

const (
	opIgnore wordOp = iota // recognized, deliberately no effect

	opRtf
	opCharsetAnsi
	opCharsetMac
	opCharsetPc
	opCharsetPca
	opCodePage

	opDestFontTable
	opDestColorTable
	opDestStyleSheet
	opDestInfo
	opDestSkip

	opFontNumber
	opFontSize
	opFontCharset
	opFontFamily
	opColorRed
	opColorGreen
	opColorBlue
	opColorFore
	opColorBack

	opBold
	opItalic
	opUnderline
	opUnderlineNone
	opSuperscript
	opSubscript
	opSmallcaps
	opStrike
	opPlain

	opPar
	opLine
	opPard
	opAlignLeft
	opAlignRight
	opAlignCenter
	opAlignJustify
	opSpaceBefore
	opSpaceAfter
	opSpaceBetweenLine
	opSpaceLineMul
	opIndentLeft
	opIndentRight
	opIndentFirstLine
	opTabWidth
	opStyleRef

	opChar // inserts a fixed replacement character
)

// wordOps is the control-word dispatch table. Words absent from it are
// skipped without error, which is the format's forward-compatibility rule.
var wordOps = map[string]wordOp{
	"rtf":     opRtf,
	"ansi":    opCharsetAnsi,
	"mac":     opCharsetMac,
	"pc":      opCharsetPc,
	"pca":     opCharsetPca,
	"ansicpg": opCodePage,

	"fonttbl":    opDestFontTable,
	"colortbl":   opDestColorTable,
	"stylesheet": opDestStyleSheet,
	"info":       opDestInfo,
	"pict":       opDestSkip,
	"filetbl":    opDestSkip,
	"object":     opDestSkip,
	"header":     opDestSkip,
	"footer":     opDestSkip,
	"footnote":   opDestSkip,

	"f":        opFontNumber,
	"fs":       opFontSize,
	"fcharset": opFontCharset,
	"fnil":     opFontFamily,
	"froman":   opFontFamily,
	"fswiss":   opFontFamily,
	"fmodern":  opFontFamily,
	"fscript":  opFontFamily,
	"fdecor":   opFontFamily,
	"ftech":    opFontFamily,
	"fbidi":    opFontFamily,
	"red":      opColorRed,
	"green":    opColorGreen,
	"blue":     opColorBlue,
	"cf":       opColorFore,
	"cb":       opColorBack,

	"b":      opBold,
	"i":      opItalic,
	"ul":     opUnderline,
	"ulnone": opUnderlineNone,
	"super":  opSuperscript,
	"sub":    opSubscript,
	"scaps":  opSmallcaps,
	"strike": opStrike,
	"plain":  opPlain,

	"par":       opPar,
	"line":      opLine,
	"pard":      opPard,
	"sectd":     opIgnore,
	"uc":        opIgnore, // handled by the lexer
	"deff":      opIgnore,
	"ql":        opAlignLeft,
	"qr":        opAlignRight,
	"qc":        opAlignCenter,
	"qj":        opAlignJustify,
	"sb":        opSpaceBefore,
	"sa":        opSpaceAfter,
	"sl":        opSpaceBetweenLine,
	"slmul":     opSpaceLineMul,
	"li":        opIndentLeft,
	"ri":        opIndentRight,
	"fi":        opIndentFirstLine,
	"tx":        opTabWidth,
	"pardeftab": opTabWidth,
	"s":         opStyleRef,

	"tab":       opChar,
	"emdash":    opChar,
	"endash":    opChar,
	"bullet":    opChar,
	"lquote":    opChar,
	"rquote":    opChar,
	"ldblquote": opChar,
	"rdblquote": opChar,
	"emspace":   opChar,
	"enspace":   opChar,
}

// wordChars holds the replacement text for opChar words.
var wordChars = map[string]string{
	"tab":       "\t",
	"emdash":    "—",
	"endash":    "–",
	"bullet":    "•",
	"lquote":    "‘",
	"rquote":    "’",
	"ldblquote": "“",
	"rdblquote": "”",
	"emspace":   " ",
	"enspace":   " ",
}

// flagOn reports the boolean value of a style toggle: \b turns bold on,
// \b0 turns it off.
func flagOn(tok *Token) bool {
	return !tok.HasParam || tok.Param != 0
}

// controlWord applies one control word to the current frame.
func (p *Parser) controlWord(tok *Token) error {
	op, known := wordOps[tok.Name]
	top := p.top()

	if !known {
		// An unknown word after \* makes the whole group an ignorable
		// destination; otherwise unknown words are skipped silently.
		if top.ignorable {
			top.dest = destSkip
			top.ignorable = false
		}
		return nil
	}
	top.ignorable = false

	switch op {
	case opIgnore:
		// Recognized but deliberately without effect here.

	case opRtf:
		// Establishes the document. A missing or unexpected version
		// parameter is tolerated, not fatal.

	case opCharsetAnsi:
		p.header.CharacterSet = model.Ansi
	case opCharsetMac:
		p.header.CharacterSet = model.Mac
	case opCharsetPc:
		p.header.CharacterSet = model.Pc
	case opCharsetPca:
		p.header.CharacterSet = model.Pca
	case opCodePage:
		if tok.HasParam {
			p.header.CodePage = tok.Param
		}

	case opDestFontTable:
		top.dest = destFontTable
	case opDestColorTable:
		top.dest = destColorTable
	case opDestStyleSheet:
		top.dest = destStyleSheet
	case opDestInfo:
		top.dest = destInfo
	case opDestSkip:
		top.dest = destSkip

	case opFontNumber:
		if top.dest == destFontTable {
			// Uncommitted name text belongs to the previous entry.
			if len(top.name) > 0 {
				p.commitFont(top)
			}
			top.curFont = tok.Param
		} else if top.dest == destBody {
			top.painter.FontRef = tok.Param
		}
	case opFontSize:
		top.painter.FontSize = tok.Param
	case opFontCharset:
		if top.dest == destFontTable {
			f := fontEntry(top)
			f.Charset = tok.Param
			top.fonts[top.curFont] = f
		}
	case opFontFamily:
		if top.dest == destFontTable {
			f := fontEntry(top)
			f.Family, _ = model.FontFamilyFromKeyword(tok.Name)
			top.fonts[top.curFont] = f
		}
	case opColorRed:
		if top.dest == destColorTable {
			top.curColor.Red = clampByte(tok.Param)
		}
	case opColorGreen:
		if top.dest == destColorTable {
			top.curColor.Green = clampByte(tok.Param)
		}
	case opColorBlue:
		if top.dest == destColorTable {
			top.curColor.Blue = clampByte(tok.Param)
		}
	case opColorFore:
		top.painter.ColorRef = tok.Param
	case opColorBack:
		top.painter.BackColorRef = tok.Param

	case opBold:
		top.painter.Bold = flagOn(tok)
	case opItalic:
		top.painter.Italic = flagOn(tok)
	case opUnderline:
		top.painter.Underline = flagOn(tok)
	case opUnderlineNone:
		top.painter.Underline = false
	case opSuperscript:
		top.painter.Superscript = flagOn(tok)
	case opSubscript:
		top.painter.Subscript = flagOn(tok)
	case opSmallcaps:
		top.painter.Smallcaps = flagOn(tok)
	case opStrike:
		top.painter.Strike = flagOn(tok)
	case opPlain:
		top.painter = model.DefaultPainter()

	case opPar, opLine:
		// Paragraph and line breaks are structural: they end the pending
		// block without inserting a character.
		p.endParagraph()
	case opPard:
		top.paragraph = model.DefaultParagraph()
	case opAlignLeft:
		top.paragraph.Alignment = model.LeftAligned
	case opAlignRight:
		top.paragraph.Alignment = model.RightAligned
	case opAlignCenter:
		top.paragraph.Alignment = model.Centered
	case opAlignJustify:
		top.paragraph.Alignment = model.Justified
	case opSpaceBefore:
		top.paragraph.Spacing.Before = tok.Param
	case opSpaceAfter:
		top.paragraph.Spacing.After = tok.Param
	case opSpaceBetweenLine:
		// \sl1000 means automatic spacing; a negative value means
		// "exactly |N|".
		if tok.Param == 1000 || !tok.HasParam {
			top.paragraph.Spacing.BetweenLine = model.AutoLineSpacing()
		} else {
			top.paragraph.Spacing.BetweenLine = model.ExactLineSpacing(tok.Param)
		}
	case opSpaceLineMul:
		top.paragraph.Spacing.LineMultiplier = tok.Param
	case opIndentLeft:
		top.paragraph.Indent.Left = tok.Param
	case opIndentRight:
		top.paragraph.Indent.Right = tok.Param
	case opIndentFirstLine:
		top.paragraph.Indent.FirstLine = tok.Param
	case opTabWidth:
		top.paragraph.TabWidth = tok.Param

	case opStyleRef:
		if top.dest == destStyleSheet {
			if len(top.name) > 0 {
				p.commitStyle(top)
			}
			top.curStyle = tok.Param
		} else if style, ok := p.header.StyleSheet[tok.Param]; ok {
			top.painter = style.Painter
			top.paragraph = style.Paragraph
		}

	case opChar:
		p.text(wordChars[tok.Name])
	}

	return nil
}

// fontEntry returns the font entry under construction, creating the map
// and entry as needed.
func fontEntry(top *groupState) model.Font {
	if top.fonts == nil {
		top.fonts = make(map[int]model.Font)
	}
	return top.fonts[top.curFont]
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
