package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds Root -> [A -> [A1, A2], B -> [B1], C]
func sample() *Tree {
	a := NewNode("A")
	a.Children = []*Node{NewNode("A1"), NewNode("A2")}
	b := NewNode("B")
	b.Children = []*Node{NewNode("B1")}
	root := NewNode("Root")
	root.Children = []*Node{a, b, NewNode("C")}
	return &Tree{Root: root}
}

func visibleTexts(t *Tree) []string {
	var out []string
	for _, v := range t.Visible() {
		out = append(out, v.Node.Text)
	}
	return out
}

func TestVisiblePreOrder(t *testing.T) {
	tree := sample()
	assert.Equal(t, []string{"Root", "A", "A1", "A2", "B", "B1", "C"}, visibleTexts(tree))
}

func TestVisibleSkipsCollapsedSubtrees(t *testing.T) {
	tree := sample()
	tree.Root.Children[0].Collapsed = true

	assert.Equal(t, []string{"Root", "A", "B", "B1", "C"}, visibleTexts(tree))
}

func TestVisibleDepths(t *testing.T) {
	tree := sample()
	visible := tree.Visible()

	depths := make([]int, len(visible))
	for i, v := range visible {
		depths[i] = v.Depth
	}
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2, 1}, depths)
}

func TestVisibleCollapsedRoot(t *testing.T) {
	tree := sample()
	tree.Root.Collapsed = true

	assert.Equal(t, []string{"Root"}, visibleTexts(tree))
}

func TestAllIgnoresCollapse(t *testing.T) {
	tree := sample()
	tree.Root.Children[0].Collapsed = true

	assert.Len(t, tree.All(), 7)
}

func TestFindByID(t *testing.T) {
	tree := sample()
	a1 := tree.Root.Children[0].Children[0]

	assert.Same(t, a1, tree.FindByID(a1.ID))
	assert.Nil(t, tree.FindByID("missing"))
}

func TestPathTo(t *testing.T) {
	tree := sample()
	b1 := tree.Root.Children[1].Children[0]

	path := tree.PathTo(b1.ID)
	require.Len(t, path, 3)
	assert.Same(t, tree.Root, path[0])
	assert.Equal(t, "B", path[1].Text)
	assert.Same(t, b1, path[2])
}

func TestPathToRoot(t *testing.T) {
	tree := sample()
	path := tree.PathTo(tree.Root.ID)
	require.Len(t, path, 1)
	assert.Same(t, tree.Root, path[0])
}

func TestPathToMissing(t *testing.T) {
	assert.Nil(t, sample().PathTo("missing"))
}

func TestNewNodeIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		n := NewNode("x")
		require.NotEmpty(t, n.ID)
		require.False(t, seen[n.ID])
		seen[n.ID] = true
	}
}

func TestCloneShallowSharesChildren(t *testing.T) {
	tree := sample()
	c := tree.Root.CloneShallow()

	assert.Equal(t, tree.Root.ID, c.ID)
	assert.Same(t, tree.Root.Children[0], c.Children[0])
}
