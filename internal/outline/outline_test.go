package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindala/internal/model"
)

func TestParseBasic(t *testing.T) {
	tree := Parse("Root\n  - Child 1\n    - Grandchild 1\n  - Child 2\n")

	require.NotNil(t, tree.Root)
	assert.Equal(t, "Root", tree.Root.Text)
	require.Len(t, tree.Root.Children, 2)

	c1 := tree.Root.Children[0]
	assert.Equal(t, "Child 1", c1.Text)
	require.Len(t, c1.Children, 1)
	assert.Equal(t, "Grandchild 1", c1.Children[0].Text)

	c2 := tree.Root.Children[1]
	assert.Equal(t, "Child 2", c2.Text)
	assert.Empty(t, c2.Children)
}

func TestParseSyntheticRoot(t *testing.T) {
	// No depth-0 line: everything attaches below a synthetic root.
	tree := Parse("  - Alpha\n    - Beta\n  - Gamma\n")

	assert.Equal(t, SyntheticRootText, tree.Root.Text)
	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, "Alpha", tree.Root.Children[0].Text)
	assert.Equal(t, "Gamma", tree.Root.Children[1].Text)
}

func TestParseMixedTabsAndSpaces(t *testing.T) {
	tree := Parse("Root\n\t- Child\n\t  - Grandchild\n")

	require.Len(t, tree.Root.Children, 1)
	child := tree.Root.Children[0]
	assert.Equal(t, "Child", child.Text)
	require.Len(t, child.Children, 1)
	assert.Equal(t, "Grandchild", child.Children[0].Text)
}

func TestParseBulletVariants(t *testing.T) {
	tree := Parse("Root\n  - dash\n  + plus\n  * star\n  plain\n")

	assert.Equal(t, []string{"dash", "plus", "star", "plain"}, childTexts(tree.Root))
}

func TestParseSkipsBlankLines(t *testing.T) {
	tree := Parse("Root\n\n  - Child 1\n   \n  - Child 2\n")

	assert.Equal(t, []string{"Child 1", "Child 2"}, childTexts(tree.Root))
}

func TestParseDedentByMultipleLevels(t *testing.T) {
	tree := Parse("Root\n  - A\n    - B\n      - C\n  - D\n")

	require.Len(t, tree.Root.Children, 2)
	assert.Equal(t, "D", tree.Root.Children[1].Text)
	a := tree.Root.Children[0]
	require.Len(t, a.Children, 1)
	require.Len(t, a.Children[0].Children, 1)
	assert.Equal(t, "C", a.Children[0].Children[0].Text)
}

func TestParseOddIndentRoundsDown(t *testing.T) {
	// Three spaces is still depth 1.
	tree := Parse("Root\n   - Child\n")

	require.Len(t, tree.Root.Children, 1)
	assert.Equal(t, "Child", tree.Root.Children[0].Text)
}

func TestParseEmptyInput(t *testing.T) {
	for _, content := range []string{"", "\n\n", "   \n\t\n"} {
		tree := Parse(content)
		require.NotNil(t, tree.Root)
		assert.Equal(t, SyntheticRootText, tree.Root.Text)
		assert.Empty(t, tree.Root.Children)
	}
}

func TestParseSecondTopLevelLineIsDropped(t *testing.T) {
	// With an explicit root at depth 0 there is no parent left for another
	// depth-0 line; the line is dropped rather than crashing.
	tree := Parse("Root\nOrphan\n  - Child\n")

	assert.Equal(t, "Root", tree.Root.Text)
	assert.Nil(t, findText(tree, "Orphan"))
}

func TestWrite(t *testing.T) {
	tree := Parse("Root\n  - Child 1\n    - Grandchild 1\n  - Child 2\n")

	got := Write(tree)
	want := "- Root\n  - Child 1\n    - Grandchild 1\n  - Child 2\n"
	assert.Equal(t, want, got)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"Root\n  - Child 1\n    - Grandchild 1\n  - Child 2\n",
		"- Solo\n",
		"Top\n  - a\n  - b\n    - c\n      - d\n  - e\n",
	}
	for _, input := range inputs {
		first := Parse(input)
		second := Parse(Write(first))
		assertSameShape(t, first.Root, second.Root)
	}
}

func TestRoundTripDoesNotIntroduceSyntheticRoot(t *testing.T) {
	tree := Parse("  - Alpha\n  - Beta\n")
	require.Equal(t, SyntheticRootText, tree.Root.Text)

	// The writer emits that root at depth 0, so a second round trip keeps
	// the exact shape instead of wrapping again.
	again := Parse(Write(tree))
	assertSameShape(t, tree.Root, again.Root)
}

func assertSameShape(t *testing.T, a, b *model.Node) {
	t.Helper()
	require.Equal(t, a.Text, b.Text)
	require.Len(t, b.Children, len(a.Children))
	for i := range a.Children {
		assertSameShape(t, a.Children[i], b.Children[i])
	}
}

func childTexts(n *model.Node) []string {
	out := make([]string, len(n.Children))
	for i, child := range n.Children {
		out[i] = child.Text
	}
	return out
}

func findText(tree *model.Tree, text string) *model.Node {
	for _, n := range tree.All() {
		if n.Text == text {
			return n
		}
	}
	return nil
}
