package richtext

import (
	"io"
	"strings"

	"github.com/tsawler/richtext/core"
	"github.com/tsawler/richtext/htmlconv"
	"github.com/tsawler/richtext/internal/codepage"
	"github.com/tsawler/richtext/model"
	"github.com/tsawler/richtext/reader"
)

// Extractor parses one RTF document. Configure it with the chainable
// option methods, then call a terminal operation: Document, Text or HTML.
// Each terminal operation parses independently, except that a stream
// source is consumed by the first one.
type Extractor struct {
	filename   string
	source     io.Reader
	content    string
	hasContent bool
	options    ExtractOptions
}

// MaxGroupDepth sets the group nesting limit. Input nesting deeper than
// this fails with core.ErrGroupTooDeep. Values below 1 restore the
// default (core.DefaultMaxGroupDepth).
func (e *Extractor) MaxGroupDepth(n int) *Extractor {
	e.options = e.options.clone()
	e.options.maxGroupDepth = n
	return e
}

// CodePage sets the Windows code page used to decode \'xx escapes until
// the document declares its own with \ansicpg or a character-set word.
func (e *Extractor) CodePage(cp int) *Extractor {
	e.options = e.options.clone()
	e.options.codePage = cp
	return e
}

// Document reads, scans and parses the source and returns the document
// model. Read failures, lexing failures and parsing failures each keep
// their own error types.
func (e *Extractor) Document() (*model.Document, error) {
	content, err := e.load()
	if err != nil {
		return nil, err
	}

	lexer := core.NewLexer(strings.NewReader(content))
	if e.options.codePage != 0 {
		lexer.SetEncoding(codepage.FromCodePage(e.options.codePage))
	}

	var tokens []core.Token
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == core.TokenEOF {
			break
		}
		tokens = append(tokens, *tok)
	}

	parser := core.NewParser(tokens)
	if e.options.maxGroupDepth > 0 {
		parser.SetMaxGroupDepth(e.options.maxGroupDepth)
	}
	return parser.Parse()
}

// Text parses the source and returns its plain text: every styled block's
// text concatenated in body order, with no separators inserted for
// paragraph breaks.
func (e *Extractor) Text() (string, error) {
	doc, err := e.Document()
	if err != nil {
		return "", err
	}
	return doc.Text(), nil
}

// HTML parses the source and returns it as an HTML fragment.
func (e *Extractor) HTML() (string, error) {
	doc, err := e.Document()
	if err != nil {
		return "", err
	}
	return htmlconv.Convert(doc)
}

// load obtains the raw document text from whichever source the Extractor
// was created with.
func (e *Extractor) load() (string, error) {
	switch {
	case e.hasContent:
		return e.content, nil
	case e.source != nil:
		r, err := reader.New(e.source)
		if err != nil {
			return "", err
		}
		e.source = nil
		e.content = r.Text()
		e.hasContent = true
		return e.content, nil
	default:
		r, err := reader.Open(e.filename)
		if err != nil {
			return "", err
		}
		return r.Text(), nil
	}
}
