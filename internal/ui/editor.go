package ui

import (
	"github.com/gdamore/tcell/v2"
)

// LineEditor is a single-line inline text editor. It does not touch the data
// model: the caller starts it with the current text, feeds it key events and
// commits the result itself when editing ends. That keeps the tree value
// immutable while an edit is in flight.
type LineEditor struct {
	text      []rune
	cursorPos int
	active    bool
}

// EditResult describes why the editor finished handling a key
type EditResult int

const (
	EditContinue EditResult = iota // still editing
	EditCommit                     // Enter: caller should apply Text()
	EditCancel                     // Escape: caller should discard
)

// NewLineEditor creates an editor pre-filled with text, cursor at the end
func NewLineEditor(text string) *LineEditor {
	runes := []rune(text)
	return &LineEditor{
		text:      runes,
		cursorPos: len(runes),
		active:    true,
	}
}

// Text returns the current text
func (e *LineEditor) Text() string {
	return string(e.text)
}

// SetText replaces the text and moves the cursor to the end
func (e *LineEditor) SetText(text string) {
	e.text = []rune(text)
	e.cursorPos = len(e.text)
}

// IsActive returns whether the editor is active
func (e *LineEditor) IsActive() bool {
	return e.active
}

// HandleKey handles a key press and reports whether editing continues
func (e *LineEditor) HandleKey(ev *tcell.EventKey) EditResult {
	if !e.active {
		return EditCancel
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		e.active = false
		return EditCancel
	case tcell.KeyEnter:
		e.active = false
		return EditCommit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.cursorPos > 0 {
			e.text = append(e.text[:e.cursorPos-1], e.text[e.cursorPos:]...)
			e.cursorPos--
		}
	case tcell.KeyDelete:
		if e.cursorPos < len(e.text) {
			e.text = append(e.text[:e.cursorPos], e.text[e.cursorPos+1:]...)
		}
	case tcell.KeyLeft:
		if e.cursorPos > 0 {
			e.cursorPos--
		}
	case tcell.KeyRight:
		if e.cursorPos < len(e.text) {
			e.cursorPos++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.cursorPos = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		e.cursorPos = len(e.text)
	case tcell.KeyCtrlU:
		e.text = append([]rune{}, e.text[e.cursorPos:]...)
		e.cursorPos = 0
	case tcell.KeyCtrlK:
		e.text = e.text[:e.cursorPos]
	case tcell.KeyRune:
		r := ev.Rune()
		e.text = append(e.text[:e.cursorPos], append([]rune{r}, e.text[e.cursorPos:]...)...)
		e.cursorPos++
	}

	return EditContinue
}

// Render draws the editor text with a block cursor at x,y within maxWidth
func (e *LineEditor) Render(screen *Screen, x, y, maxWidth int) {
	if maxWidth <= 0 {
		return
	}

	textStyle := screen.EditorStyle()
	cursorStyle := screen.EditorCursorStyle()

	col := x
	for i, r := range e.text {
		if col-x >= maxWidth {
			break
		}
		style := textStyle
		if i == e.cursorPos {
			style = cursorStyle
		}
		screen.SetCell(col, y, r, style)
		col += RuneWidth(r)
	}

	// Cursor past the end of the text.
	if e.cursorPos >= len(e.text) && col-x < maxWidth {
		screen.SetCell(col, y, ' ', cursorStyle)
		col++
	}

	for col-x < maxWidth {
		screen.SetCell(col, y, ' ', textStyle)
		col++
	}
}
