package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindala/internal/model"
)

func searchTree() *model.Tree {
	root := model.NewNode("Root")
	a := model.NewNode("Alpha Project")
	b := model.NewNode("Beta Notes")
	c := model.NewNode("Hidden Item")
	b.Collapsed = true
	b.Children = append(b.Children, c)
	root.Children = append(root.Children, a, b)
	return model.NewTree(root)
}

func typeQuery(s *SearchMode, tree *model.Tree, query string) {
	for _, r := range query {
		s.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		s.Update(tree)
	}
}

func TestSearchFindsNodeByFuzzyMatch(t *testing.T) {
	tree := searchTree()
	s := NewSearchMode()
	s.Activate()

	typeQuery(s, tree, "alpha")

	match, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Alpha Project", match.Text)

	result := s.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, SearchJump, result)
}

func TestSearchFindsNodesInsideCollapsedSubtrees(t *testing.T) {
	tree := searchTree()
	s := NewSearchMode()
	s.Activate()

	typeQuery(s, tree, "hidden")

	match, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Hidden Item", match.Text)
}

func TestSearchEnterWithoutMatchCancels(t *testing.T) {
	tree := searchTree()
	s := NewSearchMode()
	s.Activate()

	typeQuery(s, tree, "zzzzzz")

	result := s.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, SearchCancel, result)
	assert.False(t, s.IsActive())
}

func TestSearchEmptyQueryHasNoMatches(t *testing.T) {
	tree := searchTree()
	s := NewSearchMode()
	s.Activate()
	s.Update(tree)

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Height())
}
