package display

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fbview/internal/surface"
	"github.com/kk-code-lab/fbview/internal/textutil"
	"github.com/kk-code-lab/fbview/internal/ui/input"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	upperHalfBlock = '▀'
	// samplesPerAxis bounds the box filter used when shrinking the surface.
	samplesPerAxis = 4
)

// Mirror keeps an in-memory surface and presents a scaled copy of it on a
// terminal, one cell per two vertically stacked samples. The bottom row is a
// status line. Mirror is also the key source while it owns the terminal.
type Mirror struct {
	screen  tcell.Screen
	surface *surface.Surface
	status  string

	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
}

// OpenMirror takes over the controlling terminal.
func OpenMirror(width, height int, status string) (*Mirror, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	return NewMirror(screen, width, height, status)
}

// NewMirror initializes screen and allocates a width x height surface.
func NewMirror(screen tcell.Screen, width, height int, status string) (*Mirror, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	screen.HideCursor()

	m := &Mirror{
		screen:  screen,
		surface: surface.New(width, height),
		status:  textutil.SanitizeTerminalText(status),
		events:  make(chan tcell.Event, 16),
		quit:    make(chan struct{}),
	}
	go m.pumpEvents()
	return m, nil
}

func (m *Mirror) pumpEvents() {
	for {
		ev := m.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case m.events <- ev:
		case <-m.quit:
			return
		}
	}
}

func (m *Mirror) Surface() *surface.Surface {
	return m.surface
}

// Present resamples the whole surface onto the terminal.
func (m *Mirror) Present() error {
	cols, rows := m.screen.Size()
	pixelRows := rows - 1
	if cols <= 0 || pixelRows <= 0 {
		return nil
	}

	sw, sh := m.surface.Width(), m.surface.Height()
	for cy := 0; cy < pixelRows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x0, x1 := cx*sw/cols, (cx+1)*sw/cols
			top := m.average(x0, x1, (2*cy)*sh/(2*pixelRows), (2*cy+1)*sh/(2*pixelRows))
			bottom := m.average(x0, x1, (2*cy+1)*sh/(2*pixelRows), (2*cy+2)*sh/(2*pixelRows))
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			m.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
	m.drawStatus(cols, rows-1)
	m.screen.Show()
	return nil
}

func (m *Mirror) drawStatus(cols, row int) {
	text := textutil.TruncateToWidth(m.status, cols)
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range text {
		m.screen.SetContent(x, row, r, nil, style)
		x += textutil.DisplayWidth(string(r))
	}
	for ; x < cols; x++ {
		m.screen.SetContent(x, row, ' ', nil, style)
	}
}

// average blends up to samplesPerAxis^2 pixels of [x0,x1) x [y0,y1) in
// linear RGB so thin glyph strokes survive the downscale as shading.
func (m *Mirror) average(x0, x1, y0, y1 int) colorful.Color {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	stepX := max(1, (x1-x0)/samplesPerAxis)
	stepY := max(1, (y1-y0)/samplesPerAxis)

	var r, g, b float64
	n := 0
	for y := y0; y < y1; y += stepY {
		for x := x0; x < x1; x += stepX {
			lr, lg, lb := fromSurface(m.surface.At(x, y)).LinearRgb()
			r += lr
			g += lg
			b += lb
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}
	}
	return colorful.LinearRgb(r/float64(n), g/float64(n), b/float64(n)).Clamped()
}

// Poll returns the next key typed on the terminal. Resize events re-present
// the surface and are not reported.
func (m *Mirror) Poll() (byte, bool, error) {
	for {
		select {
		case ev := <-m.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				m.screen.Sync()
				if err := m.Present(); err != nil {
					return 0, false, err
				}
			case *tcell.EventKey:
				if key, ok := input.KeyFromEvent(ev); ok {
					return key, true, nil
				}
			}
		default:
			return 0, false, nil
		}
	}
}

// Close gives the terminal back.
func (m *Mirror) Close() error {
	m.closeOnce.Do(func() {
		close(m.quit)
		m.screen.Fini()
	})
	return nil
}

func fromSurface(c surface.Color) colorful.Color {
	r, g, b := c.RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var (
	_ Display         = (*Mirror)(nil)
	_ Display         = (*Framebuffer)(nil)
	_ input.KeySource = (*Mirror)(nil)
)
