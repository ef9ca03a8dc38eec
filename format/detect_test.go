package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"letter.rtf", RTF},
		{"LETTER.RTF", RTF},
		{"notes.txt", Text},
		{"notes.text", Text},
		{"report.pdf", Unknown},
		{"noextension", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"rtf magic", []byte(`{\rtf1\ansi hello}`), RTF},
		{"rtf magic with BOM", append([]byte{0xef, 0xbb, 0xbf}, []byte(`{\rtf1}`)...), RTF},
		{"plain text", []byte("hello"), Unknown},
		{"brace but no magic", []byte(`{\pard}`), Unknown},
		{"empty", nil, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectContent(tt.data); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRTF(t *testing.T) {
	if !IsRTF([]byte(`{\rtf1}`)) {
		t.Error("IsRTF rejected an RTF document")
	}
	if IsRTF([]byte("just text")) {
		t.Error("IsRTF accepted plain text")
	}
}

func TestFormatStrings(t *testing.T) {
	if RTF.String() != "RTF" || RTF.Extension() != ".rtf" {
		t.Error("RTF format metadata mismatch")
	}
	if Unknown.String() != "Unknown" || Unknown.Extension() != "" {
		t.Error("Unknown format metadata mismatch")
	}
}
