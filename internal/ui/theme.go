package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// SetupTheme installs the named color theme. Unknown names fall back to glaze.
func SetupTheme(name string) {
	switch strings.ToLower(name) {
	case "rosepine":
		SetupRosePineTheme()
	default:
		SetupGlazeTheme()
	}
}

// SetupGlazeTheme configures the warm donut-shop palette
func SetupGlazeTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    tcell.NewRGBColor(43, 29, 22),    // cocoa (#2b1d16)
		ContrastBackgroundColor:     tcell.NewRGBColor(61, 42, 31),    // crust (#3d2a1f)
		MoreContrastBackgroundColor: tcell.NewRGBColor(84, 58, 43),    // crumb (#543a2b)
		BorderColor:                 tcell.NewRGBColor(140, 110, 90),  // dough (#8c6e5a)
		TitleColor:                  tcell.NewRGBColor(255, 193, 7),   // glaze (#ffc107)
		GraphicsColor:               tcell.NewRGBColor(246, 143, 180), // frosting (#f68fb4)
		PrimaryTextColor:            tcell.NewRGBColor(250, 240, 230), // cream (#faf0e6)
		SecondaryTextColor:          tcell.NewRGBColor(255, 193, 7),   // glaze (#ffc107)
		TertiaryTextColor:           tcell.NewRGBColor(190, 160, 140), // sugar (#bea08c)
		InverseTextColor:            tcell.NewRGBColor(43, 29, 22),    // cocoa (#2b1d16)
		ContrastSecondaryTextColor:  tcell.NewRGBColor(250, 240, 230), // cream (#faf0e6)
	}
}

// SetupRosePineTheme configures the Rose Pine color theme for the TUI
func SetupRosePineTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    tcell.NewRGBColor(35, 33, 54),    // base (#232136)
		ContrastBackgroundColor:     tcell.NewRGBColor(42, 39, 63),    // surface (#2a273f)
		MoreContrastBackgroundColor: tcell.NewRGBColor(57, 53, 82),    // overlay (#393552)
		BorderColor:                 tcell.NewRGBColor(110, 106, 134), // muted (#6e6a86)
		TitleColor:                  tcell.NewRGBColor(235, 188, 186), // rose (#ebbcba)
		GraphicsColor:               tcell.NewRGBColor(156, 207, 216), // foam (#9ccfd8)
		PrimaryTextColor:            tcell.NewRGBColor(224, 222, 244), // text (#e0def4)
		SecondaryTextColor:          tcell.NewRGBColor(144, 140, 170), // subtle (#908caa)
		TertiaryTextColor:           tcell.NewRGBColor(110, 106, 134), // muted (#6e6a86)
		InverseTextColor:            tcell.NewRGBColor(35, 33, 54),    // base (#232136)
		ContrastSecondaryTextColor:  tcell.NewRGBColor(224, 222, 244), // text (#e0def4)
	}
}
