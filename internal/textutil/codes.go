package textutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/fbview/internal/font"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Encoding selects how document bytes become glyph codes.
type Encoding int

const (
	// EncodingRaw uses each byte of the file as a glyph code.
	EncodingRaw Encoding = iota
	// EncodingUTF8 decodes UTF-8 and folds each rune into a code the glyph
	// table can draw.
	EncodingUTF8
)

// ReplacementCode stands in for runes the glyph table cannot show.
const ReplacementCode = '?'

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf8"
	default:
		return "raw"
	}
}

// ParseEncoding accepts "raw" or "utf8" (case-insensitive).
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw", "bytes":
		return EncodingRaw, nil
	case "utf8", "utf-8":
		return EncodingUTF8, nil
	}
	return EncodingRaw, fmt.Errorf("unknown encoding %q", s)
}

// GlyphCodes converts a document line into one glyph code per byte of the
// result.
func GlyphCodes(line string, enc Encoding) string {
	if enc != EncodingUTF8 || isASCII(line) {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	for len(line) > 0 {
		r, size := utf8.DecodeRuneInString(line)
		line = line[size:]
		switch {
		case r == utf8.RuneError && size <= 1:
			b.WriteByte(ReplacementCode)
		case r < utf8.RuneSelf:
			b.WriteByte(byte(r))
		default:
			b.WriteByte(foldRune(r))
		}
	}
	return b.String()
}

// foldRune prefers the code page 437 glyph for r, then the ASCII base
// letter of its canonical decomposition (é -> e), then ReplacementCode.
func foldRune(r rune) byte {
	if code, ok := charmap.CodePage437.EncodeRune(r); ok && font.Defined(code) {
		return code
	}
	if base, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r))); base >= 0x20 && base < 0x7F {
		return byte(base)
	}
	return ReplacementCode
}

// FitColumn pads text with spaces or cuts it so it is exactly width bytes.
func FitColumn(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(text) >= width {
		return text[:width]
	}
	return text + strings.Repeat(" ", width-len(text))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
