package core

import (
	"strings"

	"github.com/tsawler/richtext/model"
)

// DefaultMaxGroupDepth is the group nesting limit applied when the caller
// does not set one. The stack is heap-allocated, so the limit bounds memory
// on hostile input rather than protecting the call stack.
const DefaultMaxGroupDepth = 4096

// destination identifies where a group's content is routed. Most groups
// contribute to the visible body; the header groups and \pict instead feed
// side tables or are discarded.
type destination int

const (
	destBody destination = iota
	destFontTable
	destColorTable
	destStyleSheet
	destInfo
	destSkip
)

// groupState is one frame of the group stack: the formatting snapshot a
// brace scope inherits and may locally override, plus the accumulators a
// destination group fills before merging into the header at close.
//
// Pushing copies painter, paragraph and destination from the parent by
// value; accumulators always start fresh so nothing is merged twice.
type groupState struct {
	painter   model.Painter
	paragraph model.Paragraph
	dest      destination
	ignorable bool // saw \* at the start of this group

	// Destination accumulators, merged into the header when the frame pops.
	fonts  map[int]model.Font
	colors []model.Color
	styles map[int]model.Style

	// Entry under construction within a destination group.
	curFont  int
	curStyle int
	curColor model.Color
	name     []byte // font or style name accumulated before ';'
}

// Parser interprets a token sequence as an RTF document. It maintains a
// stack of groupState frames, a header accumulator, and a pending text
// buffer tagged with the style it was opened under. Create one with
// NewParser; a Parser is good for a single Parse call.
type Parser struct {
	tokens   []Token
	maxDepth int

	stack  []groupState
	header model.Header
	body   []model.StyledBlock

	buf          strings.Builder
	bufPainter   model.Painter
	bufParagraph model.Paragraph

	done bool
}

// NewParser creates a parser over a token sequence produced by Scan.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxGroupDepth,
	}
}

// SetMaxGroupDepth replaces the group nesting limit. Values below 1 restore
// the default.
func (p *Parser) SetMaxGroupDepth(n int) {
	if n < 1 {
		n = DefaultMaxGroupDepth
	}
	p.maxDepth = n
}

// Parse consumes the token sequence and returns the document model. The
// first error aborts parsing; a partially built document is never returned.
func (p *Parser) Parse() (*model.Document, error) {
	if p.done {
		return nil, &ParseError{Err: ErrUnexpectedToken}
	}
	p.done = true

	p.header = model.NewHeader()
	p.stack = []groupState{{
		painter:   model.DefaultPainter(),
		paragraph: model.DefaultParagraph(),
	}}

	for i := range p.tokens {
		tok := &p.tokens[i]
		switch tok.Type {
		case TokenGroupOpen:
			if len(p.stack) >= p.maxDepth {
				return nil, &ParseError{Pos: tok.Pos, Err: ErrGroupTooDeep}
			}
			top := p.top()
			p.stack = append(p.stack, groupState{
				painter:   top.painter,
				paragraph: top.paragraph,
				dest:      top.dest,
			})

		case TokenGroupClose:
			if len(p.stack) == 1 {
				return nil, &ParseError{Pos: tok.Pos, Err: ErrUnbalancedGroups}
			}
			p.flush()
			p.mergeTop()
			p.stack = p.stack[:len(p.stack)-1]

		case TokenControlWord:
			if err := p.controlWord(tok); err != nil {
				return nil, err
			}

		case TokenControlSymbol:
			p.controlSymbol(tok)

		case TokenText:
			p.text(tok.Text)

		case TokenEOF:
			// Scan does not emit EOF tokens; tolerate one anyway.

		default:
			return nil, &ParseError{Pos: tok.Pos, Err: ErrUnexpectedToken}
		}
	}

	if len(p.stack) != 1 {
		last := int64(0)
		if n := len(p.tokens); n > 0 {
			last = p.tokens[n-1].Pos
		}
		return nil, &ParseError{Pos: last, Err: ErrUnbalancedGroups}
	}

	p.flush()
	return &model.Document{Header: p.header, Body: p.body}, nil
}

func (p *Parser) top() *groupState {
	return &p.stack[len(p.stack)-1]
}

// endParagraph flushes the pending text buffer and marks the paragraph
// boundary on the last emitted block.
func (p *Parser) endParagraph() {
	p.flush()
	if len(p.body) > 0 {
		p.body[len(p.body)-1].ParagraphEnd = true
	}
}

// flush appends the pending text buffer to the body as one StyledBlock
// under the style the buffer was opened with.
func (p *Parser) flush() {
	if p.buf.Len() == 0 {
		return
	}
	p.body = append(p.body, model.StyledBlock{
		Painter:   p.bufPainter,
		Paragraph: p.bufParagraph,
		Text:      p.buf.String(),
	})
	p.buf.Reset()
}

// text routes a text run either into a destination grammar or into the
// pending body buffer, flushing first if the live style no longer matches
// the buffer's tag. This is what keeps every StyledBlock maximal and
// style-uniform.
func (p *Parser) text(s string) {
	top := p.top()
	if top.dest != destBody {
		p.destText(top, s)
		return
	}
	if p.buf.Len() > 0 && (p.bufPainter != top.painter || p.bufParagraph != top.paragraph) {
		p.flush()
	}
	if p.buf.Len() == 0 {
		p.bufPainter = top.painter
		p.bufParagraph = top.paragraph
	}
	p.buf.WriteString(s)
}

// destText applies a destination group's grammar to a text run. Font and
// style entries are ';'-terminated; color entries are committed on each
// ';'. Info and skipped destinations discard their text.
func (p *Parser) destText(top *groupState, s string) {
	// Splitting on the ';' byte is UTF-8 safe; multi-byte sequences never
	// contain it.
	switch top.dest {
	case destFontTable:
		for i := 0; i < len(s); i++ {
			if s[i] == ';' {
				p.commitFont(top)
			} else {
				top.name = append(top.name, s[i])
			}
		}
	case destStyleSheet:
		for i := 0; i < len(s); i++ {
			if s[i] == ';' {
				p.commitStyle(top)
			} else {
				top.name = append(top.name, s[i])
			}
		}
	case destColorTable:
		for i := 0; i < len(s); i++ {
			if s[i] == ';' {
				top.colors = append(top.colors, top.curColor)
				top.curColor = model.Color{}
			}
		}
	}
}

func (p *Parser) commitFont(top *groupState) {
	if top.fonts == nil {
		top.fonts = make(map[int]model.Font)
	}
	f := top.fonts[top.curFont]
	f.Name = strings.TrimSpace(string(top.name))
	top.fonts[top.curFont] = f
	top.name = top.name[:0]
}

func (p *Parser) commitStyle(top *groupState) {
	if top.styles == nil {
		top.styles = make(map[int]model.Style)
	}
	top.styles[top.curStyle] = model.Style{
		Name:      strings.TrimSpace(string(top.name)),
		Painter:   top.painter,
		Paragraph: top.paragraph,
	}
	top.name = top.name[:0]
}

// mergeTop folds a closing destination frame's accumulated entries into the
// header. Entries are merged only here, at pop time, so an aborted parse
// never leaves half a table behind. A name still pending at close belongs
// to the current entry; sloppy writers drop the final ';'.
func (p *Parser) mergeTop() {
	top := p.top()
	if len(top.name) > 0 {
		switch top.dest {
		case destFontTable:
			p.commitFont(top)
		case destStyleSheet:
			p.commitStyle(top)
		}
	}
	for ref, font := range top.fonts {
		p.header.FontTable[ref] = font
	}
	p.header.ColorTable = append(p.header.ColorTable, top.colors...)
	for ref, style := range top.styles {
		p.header.StyleSheet[ref] = style
	}
}

// controlSymbol interprets a control symbol token. Most symbols stand for
// a literal character; \* marks the enclosing group as an ignorable
// destination.
func (p *Parser) controlSymbol(tok *Token) {
	switch tok.Symbol {
	case '\\', '{', '}':
		p.text(string(tok.Symbol))
	case '~':
		p.text(" ") // non-breaking space
	case '_':
		p.text("‑") // non-breaking hyphen
	case '-':
		// Optional hyphen: a line-break hint, no visible character.
	case '*':
		top := p.top()
		if top.dest == destBody {
			top.ignorable = true
		}
	}
}
