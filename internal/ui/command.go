package ui

import (
	"github.com/gdamore/tcell/v2"
)

// CommandResult describes the outcome of a key event in command mode
type CommandResult int

const (
	// CommandContinue means command mode is still active
	CommandContinue CommandResult = iota
	// CommandExecute means the user pressed Enter
	CommandExecute
	// CommandCancel means the user dismissed command mode
	CommandCancel
)

// CommandMode implements a vim-style command line at the bottom of the
// screen, activated with ':'.
type CommandMode struct {
	active  bool
	input   []rune
	cursor  int
	message string
	history *History
}

// NewCommandMode creates a new command mode instance
func NewCommandMode() *CommandMode {
	return &CommandMode{
		history: NewHistory(100),
	}
}

// Activate enters command mode with an empty input
func (c *CommandMode) Activate() {
	c.active = true
	c.input = c.input[:0]
	c.cursor = 0
	c.message = ""
	c.history.Reset()
}

// Deactivate leaves command mode
func (c *CommandMode) Deactivate() {
	c.active = false
	c.input = c.input[:0]
	c.cursor = 0
}

// IsActive returns true while command mode is receiving input
func (c *CommandMode) IsActive() bool {
	return c.active
}

// Input returns the current command text without the leading ':'
func (c *CommandMode) Input() string {
	return string(c.input)
}

// SetMessage sets a status message shown on the command line while
// command mode is inactive.
func (c *CommandMode) SetMessage(msg string) {
	c.message = msg
}

// Message returns the current status message
func (c *CommandMode) Message() string {
	return c.message
}

// HandleKey processes a key event. When it returns CommandExecute the
// caller should read Input, run the command and call Deactivate.
func (c *CommandMode) HandleKey(ev *tcell.EventKey) CommandResult {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.Deactivate()
		return CommandCancel
	case tcell.KeyEnter:
		c.history.Add(string(c.input))
		return CommandExecute
	case tcell.KeyUp:
		if !c.history.IsNavigating() {
			c.history.SetTemporary(string(c.input))
		}
		if entry, ok := c.history.Previous(); ok {
			c.input = []rune(entry)
			c.cursor = len(c.input)
		}
	case tcell.KeyDown:
		if entry, ok := c.history.Next(); ok {
			c.input = []rune(entry)
			c.cursor = len(c.input)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if c.cursor > 0 {
			c.input = append(c.input[:c.cursor-1], c.input[c.cursor:]...)
			c.cursor--
		} else if len(c.input) == 0 {
			// backspace on an empty command line dismisses it
			c.Deactivate()
			return CommandCancel
		}
	case tcell.KeyDelete:
		if c.cursor < len(c.input) {
			c.input = append(c.input[:c.cursor], c.input[c.cursor+1:]...)
		}
	case tcell.KeyLeft:
		if c.cursor > 0 {
			c.cursor--
		}
	case tcell.KeyRight:
		if c.cursor < len(c.input) {
			c.cursor++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		c.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		c.cursor = len(c.input)
	case tcell.KeyCtrlU:
		c.input = append([]rune{}, c.input[c.cursor:]...)
		c.cursor = 0
	case tcell.KeyRune:
		r := ev.Rune()
		c.input = append(c.input[:c.cursor], append([]rune{r}, c.input[c.cursor:]...)...)
		c.cursor++
	}
	return CommandContinue
}

// Render draws the command line on the given row
func (c *CommandMode) Render(screen *Screen, row int) {
	width, _ := screen.Size()
	screen.FillLine(0, row, screen.CommandTextStyle())

	if !c.active {
		if c.message != "" {
			screen.DrawString(0, row, TruncateToWidth(c.message, width), screen.StatusMessageStyle())
		}
		return
	}

	screen.DrawString(0, row, ":", screen.CommandPromptStyle())
	screen.DrawString(1, row, TruncateToWidth(string(c.input), width-1), screen.CommandTextStyle())

	cursorCol := 1 + StringWidth(string(c.input[:c.cursor]))
	if cursorCol < width {
		var under rune = ' '
		if c.cursor < len(c.input) {
			under = c.input[c.cursor]
		}
		screen.DrawString(cursorCol, row, string(under), screen.CommandCursorStyle())
	}
}
