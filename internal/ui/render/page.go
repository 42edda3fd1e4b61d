package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/fbview/internal/font"
	"github.com/kk-code-lab/fbview/internal/textutil"
)

var blankRow = strings.Repeat(" ", blankColumns)

// PageRenderer draws the page label and the fixed block of text rows.
type PageRenderer struct {
	canvas   Canvas
	source   TextSource
	theme    ColorTheme
	encoding textutil.Encoding
}

func NewPageRenderer(canvas Canvas, source TextSource, theme ColorTheme, enc textutil.Encoding) *PageRenderer {
	return &PageRenderer{
		canvas:   canvas,
		source:   source,
		theme:    theme,
		encoding: enc,
	}
}

// PageLabel is the indicator text for a start line.
func PageLabel(startLine, totalPages int) string {
	return fmt.Sprintf("Page: %d/%d", startLine/pageRows+1, totalPages)
}

// Render draws the page that begins at startLine. It always writes all
// rows: lines past the end of the document become blank rows so text left
// over from a longer page is erased. If the source cannot be read nothing
// is drawn and the error is returned.
func (r *PageRenderer) Render(startLine int) error {
	lines, err := r.source.Window(startLine, pageRows)
	if err != nil {
		return err
	}

	r.drawLabel(PageLabel(startLine, r.source.TotalPages()))

	t := r.theme
	for i := 0; i < pageRows; i++ {
		y := RowY(i)
		if i >= len(lines) {
			r.canvas.BlitText(textX, y, blankRow, t.TextFg, t.TextBg)
			continue
		}
		index := fmt.Sprintf("%*d ", indexColumns-1, startLine+i+1)
		r.canvas.BlitText(textX, y, index, t.IndexFg, t.TextBg)
		text := textutil.FitColumn(textutil.GlyphCodes(lines[i], r.encoding), textColumns)
		r.canvas.BlitText(textColumnX, y, text, t.TextFg, t.TextBg)
	}
	return nil
}

func (r *PageRenderer) drawLabel(label string) {
	if len(label) > labelColumns {
		label = label[:labelColumns]
	}
	x0 := labelRight - labelColumns*font.Width
	r.canvas.FillRect(x0, labelY, labelRight, labelY+font.Height, r.theme.LabelBg)
	r.canvas.BlitText(labelRight-len(label)*font.Width, labelY, label, r.theme.LabelFg, r.theme.LabelBg)
}
