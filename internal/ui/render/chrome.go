package render

import "github.com/kk-code-lab/fbview/internal/font"

// DrawChrome clears the canvas and draws everything that does not change
// while paging: the frame, the file name box, the text panel background and
// the command help line.
func DrawChrome(canvas Canvas, title string, theme ColorTheme) {
	canvas.FillRect(0, 0, canvas.Width(), canvas.Height(), theme.Background)

	canvas.BlitText((ReferenceWidth-len(HelpText)*font.Width)/2, helpY, HelpText, theme.HelpFg, theme.HelpBg)

	if len(title) > titleMaxGlyphs {
		title = title[:titleMaxGlyphs]
	}
	canvas.FillRect(titleX0, titleY0, len(title)*font.Width+46, titleY1, theme.TitleBg)
	canvas.BlitText(titleTextX, titleTextY, title, theme.TitleFg, theme.TitleBg)

	canvas.FillRect(textAreaX0, textAreaY0, textAreaX1, textAreaY1, theme.TextBg)

	canvas.FillRect(frameLeft, frameTop, frameRight, frameTop+1, theme.Frame)
	canvas.FillRect(frameRight, frameTop, frameRight+1, frameBottom, theme.Frame)
	canvas.FillRect(frameLeft, frameTop, frameLeft+1, frameBottom, theme.Frame)
	canvas.FillRect(frameLeft, frameBottom, frameRight+1, frameBottom+1, theme.Frame)
}
