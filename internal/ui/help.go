package ui

// HelpScreen displays the key binding overlay
type HelpScreen struct {
	visible bool
	scroll  int
}

type helpLine struct {
	key  string
	desc string
}

var helpSections = []struct {
	title string
	lines []helpLine
}{
	{
		title: "Navigation",
		lines: []helpLine{
			{"Down / j", "Select next visible node"},
			{"Up / k", "Select previous visible node"},
			{"Shift+Down / J", "Extend selection down"},
			{"Shift+Up / K", "Extend selection up"},
			{"Left / h", "Collapse node"},
			{"Right / l", "Expand node"},
			{"Click", "Select node under cursor"},
			{"Shift+Click", "Toggle node in selection"},
		},
	},
	{
		title: "Editing",
		lines: []helpLine{
			{"Enter", "Insert sibling below"},
			{"Tab", "Insert child"},
			{"Alt+p", "Group selection under new parent"},
			{"i / r", "Edit node text"},
			{"Space", "Toggle collapse"},
			{"Ctrl+Backspace", "Delete selected nodes"},
			{"Ctrl+Delete", "Delete selected nodes"},
		},
	},
	{
		title: "Views",
		lines: []helpLine{
			{"F2 / m", "Switch between mind map and mandala chart"},
			{"/", "Search nodes"},
			{":", "Command mode"},
			{"?", "This help"},
		},
	},
	{
		title: "Commands",
		lines: []helpLine{
			{":w", "Save"},
			{":q", "Quit"},
			{":wq", "Save and quit"},
			{":q!", "Quit without saving"},
			{":import <file>", "Import outline from file"},
			{":export <file>", "Export outline to file"},
			{":copy", "Copy outline to clipboard"},
			{":paste-import", "Import outline from clipboard"},
			{":mandala", "Show the mandala chart"},
			{":map", "Show the mind map"},
			{":debug", "Dump the document to the log"},
		},
	},
}

// NewHelpScreen creates a new help screen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

// Show makes the help screen visible
func (h *HelpScreen) Show() {
	h.visible = true
	h.scroll = 0
}

// Hide hides the help screen
func (h *HelpScreen) Hide() {
	h.visible = false
}

// IsVisible returns true when the overlay is shown
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// ScrollDown scrolls the help content down one line
func (h *HelpScreen) ScrollDown() {
	h.scroll++
}

// ScrollUp scrolls the help content up one line
func (h *HelpScreen) ScrollUp() {
	if h.scroll > 0 {
		h.scroll--
	}
}

func (h *HelpScreen) contentLines() []helpLine {
	var lines []helpLine
	for i, section := range helpSections {
		if i > 0 {
			lines = append(lines, helpLine{})
		}
		lines = append(lines, helpLine{key: section.title})
		for _, l := range section.lines {
			lines = append(lines, l)
		}
	}
	return lines
}

// Render draws the help overlay centered on the screen
func (h *HelpScreen) Render(screen *Screen) {
	if !h.visible {
		return
	}

	width, height := screen.Size()

	boxWidth := 52
	if boxWidth > width-2 {
		boxWidth = width - 2
	}
	boxHeight := height - 4
	if boxHeight < 5 {
		boxHeight = height
	}

	x0 := (width - boxWidth) / 2
	y0 := (height - boxHeight) / 2

	border := screen.HelpBorderStyle()
	body := screen.HelpStyle()

	for y := y0; y < y0+boxHeight; y++ {
		for x := x0; x < x0+boxWidth; x++ {
			screen.SetCell(x, y, ' ', body)
		}
	}

	screen.SetCell(x0, y0, '╭', border)
	screen.SetCell(x0+boxWidth-1, y0, '╮', border)
	screen.SetCell(x0, y0+boxHeight-1, '╰', border)
	screen.SetCell(x0+boxWidth-1, y0+boxHeight-1, '╯', border)
	for x := x0 + 1; x < x0+boxWidth-1; x++ {
		screen.SetCell(x, y0, '─', border)
		screen.SetCell(x, y0+boxHeight-1, '─', border)
	}
	for y := y0 + 1; y < y0+boxHeight-1; y++ {
		screen.SetCell(x0, y, '│', border)
		screen.SetCell(x0+boxWidth-1, y, '│', border)
	}

	title := " Help "
	screen.DrawString(x0+(boxWidth-StringWidth(title))/2, y0, title, screen.HelpTitleStyle())

	lines := h.contentLines()
	maxScroll := len(lines) - (boxHeight - 2)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if h.scroll > maxScroll {
		h.scroll = maxScroll
	}

	keyColumn := 18
	row := y0 + 1
	for i := h.scroll; i < len(lines) && row < y0+boxHeight-1; i++ {
		line := lines[i]
		if line.desc == "" {
			screen.DrawStringLimited(x0+2, row, line.key, boxWidth-4, screen.HelpTitleStyle())
		} else {
			screen.DrawStringLimited(x0+2, row, line.key, keyColumn, body)
			screen.DrawStringLimited(x0+2+keyColumn, row, line.desc, boxWidth-4-keyColumn, body)
		}
		row++
	}
}
