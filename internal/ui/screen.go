package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mindala/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with a specific theme
func NewScreen(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position, advancing by display
// width so wide runes occupy two columns.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetCell(x, y, r, style)
		x += RuneWidth(r)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// FillLine fills a horizontal line from x to the right edge with spaces
func (s *Screen) FillLine(x, y int, style tcell.Style) {
	for ; x < s.width; x++ {
		s.SetCell(x, y, ' ', style)
	}
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// EnableMouse enables mouse support on the screen
func (s *Screen) EnableMouse() {
	s.tcellScreen.EnableMouse()
}

// DefaultStyle returns the default terminal style
func DefaultStyle() tcell.Style {
	return tcell.StyleDefault
}

// StyleBold returns a bold style
func StyleBold() tcell.Style {
	return tcell.StyleDefault.Bold(true)
}

// Theme-aware style methods

func (s *Screen) pair(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(s.Theme.Colors.Background)
}

// TreeNormalStyle returns the style for unselected tree nodes
func (s *Screen) TreeNormalStyle() tcell.Style {
	return s.pair(s.Theme.Colors.TreeNormalText)
}

// TreeSelectedStyle returns the style for selected tree nodes
func (s *Screen) TreeSelectedStyle() tcell.Style {
	return s.pair(s.Theme.Colors.TreeSelectedItem).Reverse(true)
}

// TreeAnchorStyle returns the style for the selection anchor
func (s *Screen) TreeAnchorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.TreeAnchorItem).Reverse(true).Bold(true)
}

// TreeExpandedArrowStyle returns the style for the expanded marker
func (s *Screen) TreeExpandedArrowStyle() tcell.Style {
	return s.pair(s.Theme.Colors.TreeExpandedArrow)
}

// TreeCollapsedArrowStyle returns the style for the collapsed marker
func (s *Screen) TreeCollapsedArrowStyle() tcell.Style {
	return s.pair(s.Theme.Colors.TreeCollapsedArrow)
}

// TreeLeafMarkerStyle returns the style for the leaf marker
func (s *Screen) TreeLeafMarkerStyle() tcell.Style {
	return s.pair(s.Theme.Colors.TreeLeafMarker)
}

// GridBorderStyle returns the style for mandala grid borders
func (s *Screen) GridBorderStyle() tcell.Style {
	return s.pair(s.Theme.Colors.GridBorder)
}

// GridCellStyle returns the style for mandala cell text
func (s *Screen) GridCellStyle() tcell.Style {
	return s.pair(s.Theme.Colors.GridCellText)
}

// GridThemeCellStyle returns the style for grid theme cells
func (s *Screen) GridThemeCellStyle() tcell.Style {
	return s.pair(s.Theme.Colors.GridThemeCell).Bold(true)
}

// GridCursorStyle returns the style for the mandala cursor cell
func (s *Screen) GridCursorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.GridCursorCell).Reverse(true)
}

// EditorStyle returns the style for inline editor text
func (s *Screen) EditorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.EditorText).Underline(true)
}

// EditorCursorStyle returns the style for the inline editor cursor
func (s *Screen) EditorCursorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.EditorCursor).Reverse(true)
}

// SearchLabelStyle returns the style for the search widget label
func (s *Screen) SearchLabelStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SearchLabel)
}

// SearchTextStyle returns the style for search input text
func (s *Screen) SearchTextStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SearchText)
}

// SearchCursorStyle returns the style for the search input cursor
func (s *Screen) SearchCursorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SearchCursor).Reverse(true)
}

// SearchMatchStyle returns the style for matched results
func (s *Screen) SearchMatchStyle() tcell.Style {
	return s.pair(s.Theme.Colors.SearchMatch)
}

// CommandPromptStyle returns the style for the command prompt
func (s *Screen) CommandPromptStyle() tcell.Style {
	return s.pair(s.Theme.Colors.CommandPrompt)
}

// CommandTextStyle returns the style for command input text
func (s *Screen) CommandTextStyle() tcell.Style {
	return s.pair(s.Theme.Colors.CommandText)
}

// CommandCursorStyle returns the style for the command input cursor
func (s *Screen) CommandCursorStyle() tcell.Style {
	return s.pair(s.Theme.Colors.CommandCursor).Reverse(true)
}

// HelpStyle returns the style for help overlay content
func (s *Screen) HelpStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.HelpContent).Background(s.Theme.Colors.HelpBackground)
}

// HelpBorderStyle returns the style for the help overlay border
func (s *Screen) HelpBorderStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.HelpBorder).Background(s.Theme.Colors.HelpBackground)
}

// HelpTitleStyle returns the style for the help overlay title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.HelpTitle).Background(s.Theme.Colors.HelpBackground).Bold(true)
}

// StatusModeStyle returns the style for the mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return s.pair(s.Theme.Colors.StatusMode).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return s.pair(s.Theme.Colors.StatusMessage)
}

// StatusModifiedStyle returns the style for the modified indicator
func (s *Screen) StatusModifiedStyle() tcell.Style {
	return s.pair(s.Theme.Colors.StatusModified)
}

// HeaderStyle returns the style for the header line
func (s *Screen) HeaderStyle() tcell.Style {
	return s.pair(s.Theme.Colors.HeaderTitle).Bold(true)
}
