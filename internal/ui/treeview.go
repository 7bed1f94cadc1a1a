package ui

import (
	"mindala/internal/model"
	"mindala/internal/selection"
)

const (
	expandedMarker  = '▾'
	collapsedMarker = '▸'
	leafMarker      = '•'
	indentWidth     = 2
)

// TreeView renders the mind map as an indented outline with expand markers
// and multi-selection highlighting. It owns the viewport offset and the
// mapping between screen rows and node ids.
type TreeView struct {
	items       []model.VisibleNode
	viewportTop int
}

// NewTreeView creates an empty tree view
func NewTreeView() *TreeView {
	return &TreeView{}
}

// Rebuild recomputes the visible rows from the current tree. Call after every
// tree mutation or collapse change.
func (t *TreeView) Rebuild(tree *model.Tree) {
	t.items = tree.Visible()
	if t.viewportTop >= len(t.items) {
		t.viewportTop = 0
	}
}

// Order returns the visible node ids in display order
func (t *TreeView) Order() []string {
	ids := make([]string, len(t.items))
	for i, item := range t.items {
		ids[i] = item.Node.ID
	}
	return ids
}

// ItemCount returns the number of visible rows
func (t *TreeView) ItemCount() int {
	return len(t.items)
}

func (t *TreeView) indexOf(id string) int {
	for i, item := range t.items {
		if item.Node.ID == id {
			return i
		}
	}
	return -1
}

// EnsureVisible scrolls the viewport so the given node's row is on screen
func (t *TreeView) EnsureVisible(id string, height int) {
	idx := t.indexOf(id)
	if idx < 0 || height <= 0 {
		return
	}
	if idx < t.viewportTop {
		t.viewportTop = idx
	} else if idx >= t.viewportTop+height {
		t.viewportTop = idx - height + 1
	}
}

// HitTest maps a screen row back to the node rendered there. y0 is the first
// row the tree occupies on screen.
func (t *TreeView) HitTest(y, y0, height int) (string, bool) {
	row := y - y0
	if row < 0 || row >= height {
		return "", false
	}
	idx := t.viewportTop + row
	if idx < 0 || idx >= len(t.items) {
		return "", false
	}
	return t.items[idx].Node.ID, true
}

// RowOf returns the screen row a node occupies, or false when scrolled off
func (t *TreeView) RowOf(id string, y0, height int) (int, bool) {
	idx := t.indexOf(id)
	if idx < 0 {
		return 0, false
	}
	row := idx - t.viewportTop
	if row < 0 || row >= height {
		return 0, false
	}
	return y0 + row, true
}

// Render draws the tree between y0 and y0+height. When an editor is active on
// the anchor node its input line replaces that node's text.
func (t *TreeView) Render(screen *Screen, sel *selection.State, editor *LineEditor, y0, height int) {
	width, _ := screen.Size()

	for row := 0; row < height; row++ {
		y := y0 + row
		idx := t.viewportTop + row
		if idx >= len(t.items) {
			screen.FillLine(0, y, screen.TreeNormalStyle())
			continue
		}

		item := t.items[idx]
		node := item.Node
		selected := sel.IsSelected(node.ID)
		isAnchor := node.ID == sel.Anchor()

		lineStyle := screen.TreeNormalStyle()
		if isAnchor && selected {
			lineStyle = screen.TreeAnchorStyle()
		} else if selected {
			lineStyle = screen.TreeSelectedStyle()
		}
		screen.FillLine(0, y, lineStyle)

		x := item.Depth * indentWidth
		marker := leafMarker
		markerStyle := screen.TreeLeafMarkerStyle()
		if !node.IsLeaf() {
			if node.Collapsed {
				marker = collapsedMarker
				markerStyle = screen.TreeCollapsedArrowStyle()
			} else {
				marker = expandedMarker
				markerStyle = screen.TreeExpandedArrowStyle()
			}
		}
		if selected {
			markerStyle = lineStyle
		}
		screen.SetCell(x, y, marker, markerStyle)
		x += 2

		if editor != nil && editor.IsActive() && isAnchor {
			editor.Render(screen, x, y, width-x)
			continue
		}

		screen.DrawStringLimited(x, y, node.Text, width-x, lineStyle)
	}
}
