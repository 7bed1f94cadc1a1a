package outline

import (
	"strings"

	"mindala/internal/model"
)

// Write linearizes a tree to the outline text format: one line per node in
// pre-order, two spaces of indent per depth level, each line bulleted. The
// root is always emitted as a depth-0 line so re-parsing recovers it as the
// explicit root. Collapse state does not affect the output.
func Write(t *model.Tree) string {
	var sb strings.Builder
	writeNode(&sb, t.Root, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *model.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("- ")
	sb.WriteString(n.Text)
	sb.WriteString("\n")
	for _, child := range n.Children {
		writeNode(sb, child, depth+1)
	}
}
