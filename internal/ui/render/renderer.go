// Package render draws the pager onto a pixel surface: the static chrome,
// the page of text and the scrollbar.
package render

import "github.com/kk-code-lab/fbview/internal/surface"

// Canvas is the subset of the surface writer the renderers draw with.
// *surface.Surface implements it; tests substitute a recorder.
type Canvas interface {
	Width() int
	Height() int
	FillRect(x0, y0, x1, y1 int, c surface.Color)
	BlitText(x, y int, text string, fg, bg surface.Color)
}

// TextSource is a line-counted, line-addressable document.
type TextSource interface {
	TotalLines() int
	TotalPages() int
	Window(start, count int) ([]string, error)
}

var _ Canvas = (*surface.Surface)(nil)
