package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var order = []string{"root", "a", "a1", "a2", "b", "c"}

func TestMoveNextReplaces(t *testing.T) {
	s := New("a")
	s.MoveNext(order, false)

	assert.Equal(t, "a1", s.Anchor())
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.IsSelected("a"))
}

func TestMoveNextExtends(t *testing.T) {
	s := New("a")
	s.MoveNext(order, true)
	s.MoveNext(order, true)

	assert.Equal(t, "a2", s.Anchor())
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.IsSelected("a"))
	assert.True(t, s.IsSelected("a1"))
}

func TestMoveAtEdgesStays(t *testing.T) {
	s := New("root")
	s.MovePrev(order, false)
	assert.Equal(t, "root", s.Anchor())

	s = New("c")
	s.MoveNext(order, true)
	assert.Equal(t, "c", s.Anchor())
	assert.Equal(t, 1, s.Size())
}

func TestMoveReattachesLostAnchor(t *testing.T) {
	// The anchor can vanish from the visible order when an ancestor
	// collapses; movement then restarts at the first visible node.
	s := New("gone")
	s.MoveNext(order, false)

	assert.Equal(t, "root", s.Anchor())
	assert.Equal(t, 1, s.Size())
}

func TestClick(t *testing.T) {
	s := New("a")
	s.MoveNext(order, true)
	s.Click("c")

	assert.Equal(t, "c", s.Anchor())
	assert.Equal(t, 1, s.Size())
}

func TestShiftClickToggles(t *testing.T) {
	s := New("a")
	s.ShiftClick("b")
	assert.True(t, s.IsSelected("b"))
	assert.Equal(t, "b", s.Anchor())

	// Toggle off: anchor still moves to the clicked id.
	s.ShiftClick("a")
	assert.False(t, s.IsSelected("a"))
	assert.Equal(t, "a", s.Anchor())
	assert.Equal(t, 1, s.Size())
}

func TestCanEdit(t *testing.T) {
	s := New("a")
	assert.True(t, s.CanEdit())

	s.MoveNext(order, true)
	assert.False(t, s.CanEdit(), "multi-selection offers no edit affordance")

	s.Click("b")
	assert.True(t, s.CanEdit())
}

func TestFallbackScansBackward(t *testing.T) {
	s := New("a2")
	s.MovePrev(order, true) // a1 and a2 selected, anchor a1

	assert.Equal(t, "a", s.Fallback(order))
}

func TestFallbackToFirstVisible(t *testing.T) {
	// Everything before the anchor is selected: fall back to the first
	// visible node.
	s := New("root")
	s.MoveNext(order, true)
	s.MoveNext(order, true) // root, a, a1 selected, anchor a1

	assert.Equal(t, "root", s.Fallback(order))
}

func TestFallbackAnchorAtStart(t *testing.T) {
	s := New("root")
	assert.Equal(t, "root", s.Fallback(order))
}

func TestIDsInVisibleOrder(t *testing.T) {
	s := New("b")
	s.ShiftClick("a")
	s.ShiftClick("root")

	assert.Equal(t, []string{"root", "a", "b"}, s.IDs(order))
}

func TestIDsKeepsHiddenSelection(t *testing.T) {
	s := New("x")
	s.ShiftClick("a")

	ids := s.IDs(order)
	assert.Contains(t, ids, "x")
	assert.Contains(t, ids, "a")
	assert.Equal(t, "a", ids[0], "visible ids come first")
}

func TestContains(t *testing.T) {
	s := New("a")
	assert.True(t, s.Contains("a", "b"))
	assert.False(t, s.Contains("b", "c"))
}
