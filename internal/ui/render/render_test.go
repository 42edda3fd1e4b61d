package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kk-code-lab/fbview/internal/surface"
	"github.com/kk-code-lab/fbview/internal/textutil"
)

type textCall struct {
	x, y   int
	text   string
	fg, bg surface.Color
}

type fillCall struct {
	x0, y0, x1, y1 int
	c              surface.Color
}

type recordingCanvas struct {
	texts []textCall
	fills []fillCall
}

func (c *recordingCanvas) Width() int  { return ReferenceWidth }
func (c *recordingCanvas) Height() int { return ReferenceHeight }

func (c *recordingCanvas) FillRect(x0, y0, x1, y1 int, col surface.Color) {
	c.fills = append(c.fills, fillCall{x0, y0, x1, y1, col})
}

func (c *recordingCanvas) BlitText(x, y int, text string, fg, bg surface.Color) {
	c.texts = append(c.texts, textCall{x, y, text, fg, bg})
}

// rows groups text draws by row y inside the text area.
func (c *recordingCanvas) rows() map[int][]textCall {
	out := make(map[int][]textCall)
	for _, call := range c.texts {
		if call.y >= textY && call.y < textY+pageRows*rowHeight {
			out[call.y] = append(out[call.y], call)
		}
	}
	return out
}

type fakeSource struct {
	lines []string
	err   error
}

func (s *fakeSource) TotalLines() int { return len(s.lines) }
func (s *fakeSource) TotalPages() int { return len(s.lines)/pageRows + 1 }

func (s *fakeSource) Window(start, count int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if start >= len(s.lines) {
		return nil, nil
	}
	end := start + count
	if end > len(s.lines) {
		end = len(s.lines)
	}
	return s.lines[start:end], nil
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

func TestPageRenderAlwaysDrawsAllRows(t *testing.T) {
	canvas := &recordingCanvas{}
	r := NewPageRenderer(canvas, &fakeSource{lines: numberedLines(10)}, GetColorTheme(), textutil.EncodingRaw)

	if err := r.Render(0); err != nil {
		t.Fatalf("Render: %v", err)
	}

	rows := canvas.rows()
	if len(rows) != pageRows {
		t.Fatalf("rendered %d rows, want %d", len(rows), pageRows)
	}
	textRows, blankRows := 0, 0
	for i := 0; i < pageRows; i++ {
		calls := rows[RowY(i)]
		switch len(calls) {
		case 2:
			textRows++
			if i >= 10 {
				t.Fatalf("row %d should be blank", i)
			}
		case 1:
			blankRows++
			if strings.TrimSpace(calls[0].text) != "" || len(calls[0].text) != blankColumns {
				t.Fatalf("row %d blank text = %q", i, calls[0].text)
			}
			if calls[0].x != textX {
				t.Fatalf("blank row %d starts at x=%d, want %d", i, calls[0].x, textX)
			}
		default:
			t.Fatalf("row %d has %d draws", i, len(calls))
		}
	}
	if textRows != 10 || blankRows != 25 {
		t.Fatalf("got %d text rows and %d blank rows, want 10 and 25", textRows, blankRows)
	}
}

func TestPageRenderRowContent(t *testing.T) {
	canvas := &recordingCanvas{}
	theme := GetColorTheme()
	r := NewPageRenderer(canvas, &fakeSource{lines: numberedLines(40)}, theme, textutil.EncodingRaw)

	if err := r.Render(35); err != nil {
		t.Fatalf("Render: %v", err)
	}

	first := canvas.rows()[RowY(0)]
	if len(first) != 2 {
		t.Fatalf("first row has %d draws", len(first))
	}
	if first[0].text != "   36 " || first[0].fg != theme.IndexFg || first[0].x != textX {
		t.Fatalf("index label = %+v", first[0])
	}
	if first[1].x != textColumnX || first[1].fg != theme.TextFg || first[1].bg != theme.TextBg {
		t.Fatalf("text draw = %+v", first[1])
	}
	if len(first[1].text) != textColumns || !strings.HasPrefix(first[1].text, "line 36 ") {
		t.Fatalf("text column = %q", first[1].text)
	}

	if rows := canvas.rows(); len(rows[RowY(4)]) != 2 || len(rows[RowY(5)]) != 1 {
		t.Fatalf("rows 36-40 should be text and the rest blank")
	}
}

func TestPageRenderLabel(t *testing.T) {
	tests := []struct {
		start int
		want  string
	}{
		{start: 0, want: "Page: 1/2"},
		{start: 35, want: "Page: 2/2"},
		{start: 38, want: "Page: 2/2"},
	}
	for _, tt := range tests {
		canvas := &recordingCanvas{}
		theme := GetColorTheme()
		r := NewPageRenderer(canvas, &fakeSource{lines: numberedLines(40)}, theme, textutil.EncodingRaw)
		if err := r.Render(tt.start); err != nil {
			t.Fatalf("Render: %v", err)
		}

		var label *textCall
		for i := range canvas.texts {
			if canvas.texts[i].y == labelY {
				label = &canvas.texts[i]
			}
		}
		if label == nil || label.text != tt.want {
			t.Fatalf("start %d: label = %+v, want %q", tt.start, label, tt.want)
		}
		if label.x+len(label.text)*8 != labelRight {
			t.Fatalf("label not right-aligned: x=%d", label.x)
		}
		if len(canvas.fills) != 1 || canvas.fills[0].x1 != labelRight || canvas.fills[0].c != theme.LabelBg {
			t.Fatalf("label extent not blanked first: %+v", canvas.fills)
		}
	}
}

func TestPageRenderSkipsOnReadError(t *testing.T) {
	canvas := &recordingCanvas{}
	readErr := errors.New("gone")
	r := NewPageRenderer(canvas, &fakeSource{err: readErr}, GetColorTheme(), textutil.EncodingRaw)

	if err := r.Render(0); !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if len(canvas.texts) != 0 || len(canvas.fills) != 0 {
		t.Fatalf("failed render must not draw, got %d texts %d fills", len(canvas.texts), len(canvas.fills))
	}
}

func TestPageRenderEmptyDocument(t *testing.T) {
	canvas := &recordingCanvas{}
	r := NewPageRenderer(canvas, &fakeSource{}, GetColorTheme(), textutil.EncodingRaw)
	if err := r.Render(0); err != nil {
		t.Fatalf("Render: %v", err)
	}
	rows := canvas.rows()
	for i := 0; i < pageRows; i++ {
		if len(rows[RowY(i)]) != 1 {
			t.Fatalf("row %d should be a single blank draw", i)
		}
	}
}

func TestRowsStayLeftOfTrack(t *testing.T) {
	if end := textColumnX + textColumns*8; end > trackX0 {
		t.Fatalf("text column ends at %d, past track at %d", end, trackX0)
	}
	if end := textX + blankColumns*8; end > trackX0 {
		t.Fatalf("blank row ends at %d, past track at %d", end, trackX0)
	}
	if bottom := RowY(pageRows); bottom > textAreaY1 {
		t.Fatalf("rows end at %d, past text area %d", bottom, textAreaY1)
	}
}

func TestPageRenderOnSurfaceErasesLongerPage(t *testing.T) {
	s := surface.New(ReferenceWidth, ReferenceHeight)
	theme := GetColorTheme()
	long := &fakeSource{lines: numberedLines(40)}
	for i := range long.lines {
		long.lines[i] = strings.Repeat("#", 100)
	}
	if err := NewPageRenderer(s, long, theme, textutil.EncodingRaw).Render(0); err != nil {
		t.Fatalf("Render: %v", err)
	}
	short := &fakeSource{lines: []string{"x"}}
	if err := NewPageRenderer(s, short, theme, textutil.EncodingRaw).Render(0); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for y := RowY(1); y < RowY(pageRows); y++ {
		for x := textX; x < textX+blankColumns*8; x++ {
			if got := s.At(x, y); got != theme.TextBg {
				t.Fatalf("stale pixel at (%d,%d): %#x", x, y, got)
			}
		}
	}
}
