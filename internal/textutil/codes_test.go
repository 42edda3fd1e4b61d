package textutil

import (
	"testing"

	"github.com/kk-code-lab/fbview/internal/font"
)

func TestGlyphCodes(t *testing.T) {
	tests := []struct {
		name string
		line string
		enc  Encoding
		want string
	}{
		{name: "raw ascii", line: "hello", enc: EncodingRaw, want: "hello"},
		{name: "raw keeps high bytes", line: "caf\xe9", enc: EncodingRaw, want: "caf\xe9"},
		{name: "utf8 ascii fast path", line: "plain", enc: EncodingUTF8, want: "plain"},
		{name: "utf8 accents fold to base letters", line: "café naïve über", enc: EncodingUTF8, want: "cafe naive uber"},
		{name: "utf8 letter without glyph or base", line: "ß", enc: EncodingUTF8, want: "?"},
		{name: "utf8 shade block", line: "░█", enc: EncodingUTF8, want: "\xb0\xdb"},
		{name: "utf8 unmappable rune", line: "a中b", enc: EncodingUTF8, want: "a?b"},
		{name: "utf8 invalid byte", line: "a\xffb", enc: EncodingUTF8, want: "a?b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlyphCodes(tt.line, tt.enc); got != tt.want {
				t.Fatalf("GlyphCodes(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestGlyphCodesAreDrawable(t *testing.T) {
	line := GlyphCodes("café ü ß ░▒▓█ 中", EncodingUTF8)
	for i := 0; i < len(line); i++ {
		if code := line[i]; code != ' ' && !font.Defined(code) {
			t.Fatalf("code %#x at %d has no glyph", code, i)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    Encoding
		wantErr bool
	}{
		{in: "", want: EncodingRaw},
		{in: "raw", want: EncodingRaw},
		{in: "UTF-8", want: EncodingUTF8},
		{in: "utf8", want: EncodingUTF8},
		{in: "latin9", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseEncoding(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseEncoding(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseEncoding(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestFitColumn(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abcd"},
		{"", 3, "   "},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := FitColumn(tt.text, tt.width); got != tt.want {
			t.Fatalf("FitColumn(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "doc.txt", width: 20, want: "doc.txt"},
		{name: "ellipsis", text: "verylongname", width: 6, want: "veryl…"},
		{name: "only ellipsis", text: "example", width: 1, want: "…"},
		{name: "wide runes", text: "你好世界", width: 5, want: "你好…"},
		{name: "zero width", text: "anything", width: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateToWidth(tt.text, tt.width); got != tt.want {
				t.Fatalf("TruncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
