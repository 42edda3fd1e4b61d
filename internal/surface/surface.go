// Package surface provides a bounds-checked view over a 32-bit pixel buffer
// and the primitive drawing operations the pager uses on it.
//
// Pixels are stored row-major at a fixed stride. A Color is 0xAARRGGBB held
// in a native uint32, so on little-endian hosts the bytes in memory are
// B, G, R, A, which is the layout of 32bpp Linux framebuffers.
package surface

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/fbview/internal/font"
)

// Color is a 0xAARRGGBB pixel value.
type Color uint32

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB255 splits c into its red, green and blue channels.
func (c Color) RGB255() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ErrInvalidGeometry is returned when a pixel buffer cannot hold the
// requested width, height and stride.
var ErrInvalidGeometry = errors.New("invalid surface geometry")

// Surface is a fixed-size pixel surface. It is never resized and is written
// only from the goroutine that owns it.
type Surface struct {
	width  int
	height int
	stride int
	pix    []uint32
}

// New allocates a memory-backed surface with stride equal to width.
func New(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]uint32, width*height),
	}
}

// Wrap builds a surface over an existing buffer, typically a mapped device.
// stride is measured in pixels.
func Wrap(pix []uint32, width, height, stride int) (*Surface, error) {
	if width <= 0 || height <= 0 || stride < width {
		return nil, fmt.Errorf("%w: %dx%d stride %d", ErrInvalidGeometry, width, height, stride)
	}
	if need := (height-1)*stride + width; len(pix) < need {
		return nil, fmt.Errorf("%w: buffer holds %d pixels, need %d", ErrInvalidGeometry, len(pix), need)
	}
	return &Surface{width: width, height: height, stride: stride, pix: pix}, nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// At returns the pixel at (x, y), or 0 outside the surface.
func (s *Surface) At(x, y int) Color {
	if !s.inBounds(x, y) {
		return 0
	}
	return Color(s.pix[y*s.stride+x])
}

// Plot writes a single pixel.
func (s *Surface) Plot(x, y int, c Color) {
	if !s.inBounds(x, y) {
		outOfBounds("plot", x, y, s.width, s.height)
		return
	}
	s.pix[y*s.stride+x] = uint32(c)
}

// Clear fills the whole surface, including any stride padding.
func (s *Surface) Clear(c Color) {
	v := uint32(c)
	for i := range s.pix {
		s.pix[i] = v
	}
}

// FillRect writes c to every pixel of [x0,x1) x [y0,y1) that lies on the
// surface.
func (s *Surface) FillRect(x0, y0, x1, y1 int, c Color) {
	if x0 < 0 || y0 < 0 || x1 > s.width || y1 > s.height {
		outOfBounds("fill", x1-1, y1-1, s.width, s.height)
	}
	x0, x1 = clampSpan(x0, x1, s.width)
	y0, y1 = clampSpan(y0, y1, s.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	v := uint32(c)
	for y := y0; y < y1; y++ {
		row := s.pix[y*s.stride+x0 : y*s.stride+x1]
		for i := range row {
			row[i] = v
		}
	}
}

// BlitGlyph draws the 8x16 cell for code with its top-left corner at (x, y).
// Set bits take fg, clear bits take bg. Tabs draw as a space.
func (s *Surface) BlitGlyph(x, y int, code byte, fg, bg Color) {
	if code == '\t' {
		code = ' '
	}
	if x < 0 || y < 0 || x+font.Width > s.width || y+font.Height > s.height {
		outOfBounds("glyph", x+font.Width-1, y+font.Height-1, s.width, s.height)
	}
	glyph := font.Lookup(code)
	for row := 0; row < font.Height; row++ {
		py := y + row
		if py < 0 || py >= s.height {
			continue
		}
		bits := glyph[row]
		base := py * s.stride
		for col := 0; col < font.Width; col++ {
			px := x + col
			if px >= 0 && px < s.width {
				if bits&0x80 != 0 {
					s.pix[base+px] = uint32(fg)
				} else {
					s.pix[base+px] = uint32(bg)
				}
			}
			bits <<= 1
		}
	}
}

// BlitText draws text left to right from (x, y), one glyph per byte,
// advancing x by the glyph width. There is no wrapping.
func (s *Surface) BlitText(x, y int, text string, fg, bg Color) {
	for i := 0; i < len(text); i++ {
		s.BlitGlyph(x, y, text[i], fg, bg)
		x += font.Width
	}
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

func clampSpan(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

func outOfBounds(op string, x, y, width, height int) {
	if !debugBounds {
		return
	}
	panic(fmt.Sprintf("surface: %s reaches (%d,%d) outside %dx%d", op, x, y, width, height))
}
