package render

import "github.com/kk-code-lab/fbview/internal/surface"

// ColorTheme defines the pager colors.
type ColorTheme struct {
	Background surface.Color
	Frame      surface.Color
	TitleBg    surface.Color
	TitleFg    surface.Color
	TextBg     surface.Color
	TextFg     surface.Color
	IndexFg    surface.Color
	LabelBg    surface.Color
	LabelFg    surface.Color
	HelpBg     surface.Color
	HelpFg     surface.Color
	Track      surface.Color
	Thumb      surface.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: 0xFF000000,
		Frame:      0xFFFFFFFF,
		TitleBg:    0xFF333333,
		TitleFg:    0xFFFFFFFF,
		TextBg:     0xFF111111, // near-black text panel
		TextFg:     0xFFFFFFFF,
		IndexFg:    0xFFFFFF00,
		LabelBg:    0xFF000000,
		LabelFg:    0xFFFFFFFF,
		HelpBg:     0xFF000000,
		HelpFg:     0xFFFFFFFF,
		Track:      0xFF555555,
		Thumb:      0xFFFFFF00,
	}
}
