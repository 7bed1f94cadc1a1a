package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Tree view colors
	TreeNormalText     tcell.Color
	TreeSelectedItem   tcell.Color
	TreeAnchorItem     tcell.Color
	TreeExpandedArrow  tcell.Color
	TreeCollapsedArrow tcell.Color
	TreeLeafMarker     tcell.Color

	// Mandala grid colors
	GridBorder     tcell.Color
	GridCellText   tcell.Color
	GridThemeCell  tcell.Color
	GridCursorCell tcell.Color

	// Editor colors
	EditorText   tcell.Color
	EditorCursor tcell.Color

	// Node search widget colors
	SearchLabel  tcell.Color
	SearchText   tcell.Color
	SearchCursor tcell.Color
	SearchMatch  tcell.Color

	// Command line colors
	CommandPrompt tcell.Color
	CommandText   tcell.Color
	CommandCursor tcell.Color

	// Help overlay colors
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color

	// Status line colors
	StatusMode     tcell.Color
	StatusMessage  tcell.Color
	StatusModified tcell.Color

	// Header colors
	HeaderTitle tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a theme using terminal default colors everywhere
func Default() *Theme {
	return &Theme{Name: "default"}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			Background:         HexToColor("#1a1b26"),
			TreeNormalText:     HexToColor("#c0caf5"),
			TreeSelectedItem:   HexToColor("#7aa2f7"),
			TreeAnchorItem:     HexToColor("#ff9e64"),
			TreeExpandedArrow:  HexToColor("#7dcfff"),
			TreeCollapsedArrow: HexToColor("#7dcfff"),
			TreeLeafMarker:     HexToColor("#565f89"),
			GridBorder:         HexToColor("#3b4261"),
			GridCellText:       HexToColor("#c0caf5"),
			GridThemeCell:      HexToColor("#bb9af7"),
			GridCursorCell:     HexToColor("#7aa2f7"),
			EditorText:         HexToColor("#c0caf5"),
			EditorCursor:       HexToColor("#7aa2f7"),
			SearchLabel:        HexToColor("#bb9af7"),
			SearchText:         HexToColor("#c0caf5"),
			SearchCursor:       HexToColor("#7aa2f7"),
			SearchMatch:        HexToColor("#9ece6a"),
			CommandPrompt:      HexToColor("#bb9af7"),
			CommandText:        HexToColor("#c0caf5"),
			CommandCursor:      HexToColor("#7aa2f7"),
			HelpBackground:     HexToColor("#1a1b26"),
			HelpBorder:         HexToColor("#7dcfff"),
			HelpTitle:          HexToColor("#bb9af7"),
			HelpContent:        HexToColor("#c0caf5"),
			StatusMode:         HexToColor("#bb9af7"),
			StatusMessage:      HexToColor("#9ece6a"),
			StatusModified:     HexToColor("#f7768e"),
			HeaderTitle:        HexToColor("#bb9af7"),
		},
	}
}
