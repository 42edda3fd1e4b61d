package render

import (
	"github.com/kk-code-lab/fbview/internal/font"
	"github.com/kk-code-lab/fbview/internal/fs"
)

// The layout is fixed to a 1280x720 reference screen anchored at the
// surface origin. Every coordinate below stays inside that area.
const (
	ReferenceWidth  = 1280
	ReferenceHeight = 720

	rowHeight = font.Height
	pageRows  = fs.LinesPerPage

	textX = 40
	textY = 80
	// indexColumns holds a right-aligned 5-digit line number and a space.
	indexColumns = 6
	textColumnX  = textX + (indexColumns+1)*font.Width
	// textColumns and blankColumns end every row at x=1216, short of the
	// scrollbar track.
	textColumns  = 140
	blankColumns = (textColumnX + textColumns*font.Width - textX) / font.Width

	textAreaX0 = 30
	textAreaY0 = 70
	textAreaX1 = 1250
	textAreaY1 = 650

	labelRight   = 1250
	labelY       = 54
	labelColumns = 32

	trackX0     = 1230
	trackX1     = 1250
	trackTop    = 70
	trackBottom = 650
	trackLength = trackBottom - trackTop

	frameLeft   = 20
	frameRight  = 1260
	frameTop    = 40
	frameBottom = 690

	titleX0        = 30
	titleY0        = 50
	titleY1        = 72
	titleTextX     = 38
	titleTextY     = 54
	titleMaxGlyphs = 100

	helpY = 660
)

// HelpText lists the key commands under the text area.
const HelpText = "Cmd> 'k' : up, 'j' : down, 'u': page up, 'd': page down, 'q' : quit"

// Fits reports whether a surface is large enough for the layout.
func Fits(width, height int) bool {
	return width >= ReferenceWidth && height >= ReferenceHeight
}

// RowY is the top edge of text row i of the page.
func RowY(i int) int {
	return textY + i*rowHeight
}
