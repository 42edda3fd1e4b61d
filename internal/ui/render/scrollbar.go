package render

// ScrollState is the scrollbar geometry for one view position.
type ScrollState struct {
	TrackTop    int
	TrackBottom int
	ThumbHeight int
	ThumbTop    int
}

// ThumbHeight is trackLength/totalLines, at least one pixel and at most the
// whole track.
func ThumbHeight(totalLines int) int {
	if totalLines < 1 {
		totalLines = 1
	}
	h := trackLength / totalLines
	if h < 1 {
		h = 1
	}
	if h > trackLength {
		h = trackLength
	}
	return h
}

// ScrollGeometry maps a start line onto the track. The thumb top moves
// linearly from the top of the track at line 0 to the position where the
// thumb touches the bottom at line totalLines-2.
func ScrollGeometry(startLine, totalLines int) ScrollState {
	thumb := ThumbHeight(totalLines)
	span := totalLines - 2
	if span < 1 {
		span = 1
	}
	top := trackTop + startLine*(trackLength-thumb)/span
	if top < trackTop {
		top = trackTop
	}
	if top > trackBottom-thumb {
		top = trackBottom - thumb
	}
	return ScrollState{
		TrackTop:    trackTop,
		TrackBottom: trackBottom,
		ThumbHeight: thumb,
		ThumbTop:    top,
	}
}

// ScrollbarRenderer draws the track and thumb at the right edge of the text
// area.
type ScrollbarRenderer struct {
	canvas Canvas
	theme  ColorTheme
}

func NewScrollbarRenderer(canvas Canvas, theme ColorTheme) *ScrollbarRenderer {
	return &ScrollbarRenderer{canvas: canvas, theme: theme}
}

// Render redraws the whole track, then the thumb for startLine.
func (r *ScrollbarRenderer) Render(startLine, totalLines int) ScrollState {
	state := ScrollGeometry(startLine, totalLines)
	r.canvas.FillRect(trackX0, state.TrackTop, trackX1, state.TrackBottom, r.theme.Track)
	r.canvas.FillRect(trackX0, state.ThumbTop, trackX1, state.ThumbTop+state.ThumbHeight, r.theme.Thumb)
	return state
}
