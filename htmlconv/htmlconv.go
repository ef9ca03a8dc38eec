package htmlconv

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/richtext/model"
)

// Convert renders a parsed document as an HTML fragment: one <p> element
// per paragraph, with character formatting expressed as nested inline
// elements. It is a structural projection of the model, like
// model.Document.Text, not a layout engine; measurements such as spacing
// and tab width are not carried over.
//
// Paragraph boundaries follow the document's block structure: a block
// marked ParagraphEnd closes its <p>, and so does a change of Paragraph
// value between adjacent blocks.
func Convert(doc *model.Document) (string, error) {
	var sb strings.Builder

	i := 0
	for i < len(doc.Body) {
		// One paragraph: the run of blocks sharing this Paragraph value,
		// up to and including the first \par-terminated block.
		para := doc.Body[i].Paragraph
		j := i
		for j < len(doc.Body) && doc.Body[j].Paragraph == para {
			j++
			if doc.Body[j-1].ParagraphEnd {
				break
			}
		}

		p := element(atom.P)
		if style := paragraphStyle(para); style != "" {
			p.Attr = append(p.Attr, html.Attribute{Key: "style", Val: style})
		}
		for _, block := range doc.Body[i:j] {
			p.AppendChild(inline(block))
		}

		if err := html.Render(&sb, p); err != nil {
			return "", err
		}
		sb.WriteByte('\n')
		i = j
	}

	return sb.String(), nil
}

// inline wraps a block's text in the inline elements its painter calls for.
func inline(block model.StyledBlock) *html.Node {
	node := &html.Node{Type: html.TextNode, Data: block.Text}

	// Innermost first, so the outermost wrapper ends up being <b>.
	if block.Painter.Smallcaps {
		span := element(atom.Span)
		span.Attr = append(span.Attr, html.Attribute{Key: "style", Val: "font-variant:small-caps"})
		node = wrap(span, node)
	}
	if block.Painter.Subscript {
		node = wrap(element(atom.Sub), node)
	}
	if block.Painter.Superscript {
		node = wrap(element(atom.Sup), node)
	}
	if block.Painter.Strike {
		node = wrap(element(atom.S), node)
	}
	if block.Painter.Underline {
		node = wrap(element(atom.U), node)
	}
	if block.Painter.Italic {
		node = wrap(element(atom.I), node)
	}
	if block.Painter.Bold {
		node = wrap(element(atom.B), node)
	}
	return node
}

// paragraphStyle returns the style attribute value for a paragraph, or ""
// when the defaults need no attribute.
func paragraphStyle(p model.Paragraph) string {
	switch p.Alignment {
	case model.RightAligned:
		return "text-align:right"
	case model.Centered:
		return "text-align:center"
	case model.Justified:
		return "text-align:justify"
	default:
		return ""
	}
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func wrap(parent, child *html.Node) *html.Node {
	parent.AppendChild(child)
	return parent
}
