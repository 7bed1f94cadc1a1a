package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func typeRunes(t *testing.T, e *LineEditor, s string) {
	t.Helper()
	for _, r := range s {
		result := e.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		assert.Equal(t, EditContinue, result)
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestEditorTypeAndCommit(t *testing.T) {
	e := NewLineEditor("")
	typeRunes(t, e, "hello")

	result := e.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, EditCommit, result)
	assert.Equal(t, "hello", e.Text())
	assert.False(t, e.IsActive())
}

func TestEditorCancelKeepsOriginalForCaller(t *testing.T) {
	e := NewLineEditor("original")
	typeRunes(t, e, "x")

	result := e.HandleKey(key(tcell.KeyEscape))
	assert.Equal(t, EditCancel, result)
	assert.False(t, e.IsActive())
}

func TestEditorInsertAtCursor(t *testing.T) {
	e := NewLineEditor("ad")
	e.HandleKey(key(tcell.KeyLeft))
	typeRunes(t, e, "bc")
	assert.Equal(t, "abcd", e.Text())
}

func TestEditorBackspaceAndDelete(t *testing.T) {
	e := NewLineEditor("abc")
	e.HandleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, "ab", e.Text())

	e.HandleKey(key(tcell.KeyHome))
	e.HandleKey(key(tcell.KeyDelete))
	assert.Equal(t, "b", e.Text())
}

func TestEditorKillLine(t *testing.T) {
	e := NewLineEditor("hello world")
	e.HandleKey(key(tcell.KeyEnd))
	e.HandleKey(key(tcell.KeyCtrlU))
	assert.Equal(t, "", e.Text())

	e.SetText("hello world")
	for i := 0; i < 6; i++ {
		e.HandleKey(key(tcell.KeyLeft))
	}
	e.HandleKey(key(tcell.KeyCtrlK))
	assert.Equal(t, "hello", e.Text())
}

func TestEditorWideRunes(t *testing.T) {
	e := NewLineEditor("")
	typeRunes(t, e, "日本語")
	assert.Equal(t, "日本語", e.Text())

	e.HandleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, "日本", e.Text())
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(10)
	h.Add("first")
	h.Add("second")
	h.Add("third")

	entry, ok := h.Previous()
	assert.True(t, ok)
	assert.Equal(t, "third", entry)

	entry, _ = h.Previous()
	assert.Equal(t, "second", entry)

	entry, _ = h.Next()
	assert.Equal(t, "third", entry)
}

func TestHistorySkipsDuplicatesAndEmpty(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.Add("a")
	h.Add("")
	h.Add("b")

	entry, _ := h.Previous()
	assert.Equal(t, "b", entry)
	entry, _ = h.Previous()
	assert.Equal(t, "a", entry)
	entry, _ = h.Previous()
	assert.Equal(t, "a", entry)
}

func TestHistoryRestoresTemporaryInput(t *testing.T) {
	h := NewHistory(10)
	h.Add("old")
	h.SetTemporary("typing")

	entry, _ := h.Previous()
	assert.Equal(t, "old", entry)

	entry, ok := h.Next()
	assert.True(t, ok)
	assert.Equal(t, "typing", entry)
	assert.False(t, h.IsNavigating())
}

func TestHistoryTrimsToMax(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")

	entry, _ := h.Previous()
	assert.Equal(t, "c", entry)
	entry, _ = h.Previous()
	assert.Equal(t, "b", entry)
	entry, _ = h.Previous()
	assert.Equal(t, "b", entry)
}

func TestCommandModeInput(t *testing.T) {
	c := NewCommandMode()
	c.Activate()
	assert.True(t, c.IsActive())

	for _, r := range "wq" {
		result := c.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		assert.Equal(t, CommandContinue, result)
	}

	result := c.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, CommandExecute, result)
	assert.Equal(t, "wq", c.Input())
}

func TestCommandModeEscapeCancels(t *testing.T) {
	c := NewCommandMode()
	c.Activate()
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	result := c.HandleKey(key(tcell.KeyEscape))
	assert.Equal(t, CommandCancel, result)
	assert.False(t, c.IsActive())
}

func TestCommandModeBackspaceOnEmptyDismisses(t *testing.T) {
	c := NewCommandMode()
	c.Activate()

	result := c.HandleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, CommandCancel, result)
	assert.False(t, c.IsActive())
}

func TestCommandModeHistoryRecall(t *testing.T) {
	c := NewCommandMode()
	c.Activate()
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	c.HandleKey(key(tcell.KeyEnter))
	c.Deactivate()

	c.Activate()
	c.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, "w", c.Input())
}

func TestGridViewCursorMapping(t *testing.T) {
	v := NewGridView()

	grid, cell := v.Cursor()
	assert.Equal(t, 4, grid)
	assert.Equal(t, 4, cell)

	// one step right from the board center stays in the center grid
	v.Move(1, 0)
	grid, cell = v.Cursor()
	assert.Equal(t, 4, grid)
	assert.Equal(t, 5, cell)

	// another step crosses into the right theme grid
	v.Move(1, 0)
	grid, cell = v.Cursor()
	assert.Equal(t, 5, grid)
	assert.Equal(t, 3, cell)
}

func TestGridViewCursorClamped(t *testing.T) {
	v := NewGridView()
	v.Move(-100, -100)
	grid, cell := v.Cursor()
	assert.Equal(t, 0, grid)
	assert.Equal(t, 0, cell)

	v.Move(100, 100)
	grid, cell = v.Cursor()
	assert.Equal(t, 8, grid)
	assert.Equal(t, 8, cell)
}

func TestGridViewSetCursorRoundTrip(t *testing.T) {
	v := NewGridView()
	for g := 0; g < 9; g++ {
		for c := 0; c < 9; c++ {
			v.SetCursor(g, c)
			grid, cell := v.Cursor()
			assert.Equal(t, g, grid)
			assert.Equal(t, c, cell)
		}
	}
}
