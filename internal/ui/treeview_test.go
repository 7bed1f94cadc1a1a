package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindala/internal/model"
)

func viewTree() *model.Tree {
	root := model.NewNode("Root")
	for _, text := range []string{"A", "B", "C", "D", "E"} {
		root.Children = append(root.Children, model.NewNode(text))
	}
	return model.NewTree(root)
}

func TestTreeViewOrderMatchesVisible(t *testing.T) {
	tree := viewTree()
	view := NewTreeView()
	view.Rebuild(tree)

	assert.Equal(t, tree.VisibleIDs(), view.Order())
	assert.Equal(t, 6, view.ItemCount())
}

func TestTreeViewScrollsToKeepNodeOnScreen(t *testing.T) {
	tree := viewTree()
	view := NewTreeView()
	view.Rebuild(tree)

	// viewport of 3 rows, last node is off screen until ensured
	last := tree.Root.Children[4].ID
	view.EnsureVisible(last, 3)

	id, ok := view.HitTest(2, 0, 3)
	require.True(t, ok)
	assert.Equal(t, last, id)

	// scrolling back up
	view.EnsureVisible(tree.Root.ID, 3)
	id, ok = view.HitTest(0, 0, 3)
	require.True(t, ok)
	assert.Equal(t, tree.Root.ID, id)
}

func TestTreeViewHitTestOutsideArea(t *testing.T) {
	tree := viewTree()
	view := NewTreeView()
	view.Rebuild(tree)

	_, ok := view.HitTest(10, 0, 6)
	assert.False(t, ok)

	_, ok = view.HitTest(0, 1, 6)
	assert.False(t, ok)
}

func TestTreeViewRebuildResetsStaleViewport(t *testing.T) {
	tree := viewTree()
	view := NewTreeView()
	view.Rebuild(tree)
	view.EnsureVisible(tree.Root.Children[4].ID, 2)

	small := model.NewTree(model.NewNode("Root"))
	view.Rebuild(small)

	id, ok := view.HitTest(0, 0, 2)
	require.True(t, ok)
	assert.Equal(t, small.Root.ID, id)
}
