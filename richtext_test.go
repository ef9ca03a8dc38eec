package richtext

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/richtext/core"
	"github.com/tsawler/richtext/model"
)

func TestOpenSampleFile(t *testing.T) {
	doc, err := Open("testdata/sample.rtf").Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Header.CharacterSet != model.Ansi || doc.Header.CodePage != 1252 {
		t.Errorf("header = %+v", doc.Header)
	}
	if doc.Header.FontTable[0].Name != "Helvetica" || doc.Header.FontTable[1].Name != "Times New Roman" {
		t.Errorf("font table = %+v", doc.Header.FontTable)
	}
	if len(doc.Header.ColorTable) != 2 {
		t.Errorf("color table = %+v", doc.Header.ColorTable)
	}

	text := doc.Text()
	if !strings.Contains(text, "café") {
		t.Errorf("hex escape not decoded: %q", text)
	}
	if !strings.Contains(text, "—") {
		t.Errorf("em dash not inserted: %q", text)
	}
	if strings.Contains(text, `\b`) || strings.Contains(text, "{") {
		t.Errorf("control grammar leaked into text: %q", text)
	}
}

func TestFromStringText(t *testing.T) {
	text, err := FromString(`{\rtf1\ansi{\fonttbl\f0\fswiss Helvetica;}\f0\pard Voici du texte en {\b gras}.\par}`).Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Voici du texte en gras." {
		t.Errorf("Text() = %q", text)
	}
}

func TestFromReader(t *testing.T) {
	doc, err := FromReader(strings.NewReader(`{\rtf1 hello}`)).Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text() != "hello" {
		t.Errorf("Text() = %q", doc.Text())
	}
}

func TestParseString(t *testing.T) {
	doc, err := ParseString(`{\rtf1 {\b a}b}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Body) != 2 || !doc.Body[0].Painter.Bold {
		t.Errorf("body = %+v", doc.Body)
	}
}

func TestHTML(t *testing.T) {
	html, err := FromString(`{\rtf1\qc centered {\b bold}\par}`).HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `text-align:center`) || !strings.Contains(html, "<b>bold</b>") {
		t.Errorf("HTML() = %q", html)
	}
}

func TestHTMLSeparatesParagraphs(t *testing.T) {
	// Same layout on both paragraphs; the \par breaks must still yield
	// two <p> elements.
	html, err := FromString(`{\rtf1 one\par two\par}`).HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p>one</p>\n<p>two</p>\n" {
		t.Errorf("HTML() = %q", html)
	}
}

func TestLexAndParseErrorsAreDistinct(t *testing.T) {
	_, err := FromString(`{\rtf1 \bin8 xxxxxxxx}`).Document()
	var lexErr *core.LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *core.LexError, got %v", err)
	}
	if !errors.Is(err, core.ErrUnsupportedBinary) {
		t.Errorf("got %v, want ErrUnsupportedBinary", err)
	}

	_, err = FromString(`{\rtf1 }}`).Document()
	var parseErr *core.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *core.ParseError, got %v", err)
	}
	if !errors.Is(err, core.ErrUnbalancedGroups) {
		t.Errorf("got %v, want ErrUnbalancedGroups", err)
	}
}

func TestOpenMissingFileError(t *testing.T) {
	_, err := Open("testdata/missing.rtf").Document()
	if err == nil {
		t.Fatal("expected a read error")
	}
	// Read failures are neither lexing nor parsing failures.
	var lexErr *core.LexError
	var parseErr *core.ParseError
	if errors.As(err, &lexErr) || errors.As(err, &parseErr) {
		t.Errorf("read failure misclassified: %v", err)
	}
}

func TestMaxGroupDepthOption(t *testing.T) {
	input := `{\rtf1 ` + strings.Repeat("{", 30) + "x" + strings.Repeat("}", 30) + `}`
	_, err := FromString(input).MaxGroupDepth(10).Document()
	if !errors.Is(err, core.ErrGroupTooDeep) {
		t.Fatalf("got %v, want ErrGroupTooDeep", err)
	}
	if _, err := FromString(input).Document(); err != nil {
		t.Fatalf("default limit should accept this input: %v", err)
	}
}

func TestCodePageOption(t *testing.T) {
	// 0xC4 is Д in Windows-1251; the document itself declares nothing.
	text, err := FromString(`{\rtf1 \'c4a}`).CodePage(1251).Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Дa" {
		t.Errorf("Text() = %q, want \"Дa\"", text)
	}
}

func TestMust(t *testing.T) {
	text := Must(FromString(`{\rtf1 ok}`).Text())
	if text != "ok" {
		t.Errorf("Must returned %q", text)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(FromString(`{\rtf1`).Text())
}
