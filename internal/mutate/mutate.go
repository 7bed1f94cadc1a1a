// Package mutate implements the structural edit operations on a mind map
// tree. Every operation takes a whole tree and returns a whole tree: on
// success the result is a fresh value sharing untouched subtrees with the
// input, on invalid input the input is returned unchanged. No operation
// panics or surfaces an error.
package mutate

import "mindala/internal/model"

// Default labels for nodes created by the edit operations
const (
	DefaultSiblingText = "New Node"
	DefaultChildText   = "New Child"
	DefaultParentText  = "New Parent"
)

// Rename sets the text of the node matching id. No-op if id is not found.
func Rename(t *model.Tree, id, text string) *model.Tree {
	root, ok := renameIn(t.Root, id, text)
	if !ok {
		return t
	}
	return &model.Tree{Root: root}
}

func renameIn(n *model.Node, id, text string) (*model.Node, bool) {
	if n.ID == id {
		c := n.CloneShallow()
		c.Text = text
		return c, true
	}
	for i, child := range n.Children {
		if nc, ok := renameIn(child, id, text); ok {
			return replaceChild(n, i, nc), true
		}
	}
	return n, false
}

// InsertSibling creates a new node immediately after refID under the same
// parent. The root has no parent, so a sibling of the root is undefined and
// the tree is returned unchanged.
func InsertSibling(t *model.Tree, refID string) *model.Tree {
	if t.Root.ID == refID {
		return t
	}
	root, ok := insertAfter(t.Root, refID)
	if !ok {
		return t
	}
	return &model.Tree{Root: root}
}

func insertAfter(n *model.Node, refID string) (*model.Node, bool) {
	for i, child := range n.Children {
		if child.ID == refID {
			kids := make([]*model.Node, 0, len(n.Children)+1)
			kids = append(kids, n.Children[:i+1]...)
			kids = append(kids, model.NewNode(DefaultSiblingText))
			kids = append(kids, n.Children[i+1:]...)
			c := n.CloneShallow()
			c.Children = kids
			return c, true
		}
	}
	for i, child := range n.Children {
		if nc, ok := insertAfter(child, refID); ok {
			return replaceChild(n, i, nc), true
		}
	}
	return n, false
}

// InsertChild appends a new node to parentID's children and expands the
// parent so the new child is visible. No-op if parentID is not found.
func InsertChild(t *model.Tree, parentID string) *model.Tree {
	root, ok := appendChild(t.Root, parentID)
	if !ok {
		return t
	}
	return &model.Tree{Root: root}
}

func appendChild(n *model.Node, parentID string) (*model.Node, bool) {
	if n.ID == parentID {
		kids := make([]*model.Node, 0, len(n.Children)+1)
		kids = append(kids, n.Children...)
		kids = append(kids, model.NewNode(DefaultChildText))
		c := n.CloneShallow()
		c.Children = kids
		c.Collapsed = false
		return c, true
	}
	for i, child := range n.Children {
		if nc, ok := appendChild(child, parentID); ok {
			return replaceChild(n, i, nc), true
		}
	}
	return n, false
}

// RemoveNodes removes every node whose id is in ids, together with its
// subtree, wherever it occurs. The root is never removed, even if listed.
// Descendants of a removed node go with it; they are not matched against ids
// individually.
func RemoveNodes(t *model.Tree, ids []string) *model.Tree {
	if len(ids) == 0 {
		return t
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	delete(drop, t.Root.ID)
	root, changed := filterOut(t.Root, drop)
	if !changed {
		return t
	}
	return &model.Tree{Root: root}
}

func filterOut(n *model.Node, drop map[string]bool) (*model.Node, bool) {
	changed := false
	kids := make([]*model.Node, 0, len(n.Children))
	for _, child := range n.Children {
		if drop[child.ID] {
			changed = true
			continue
		}
		nc, c := filterOut(child, drop)
		if c {
			changed = true
		}
		kids = append(kids, nc)
	}
	if !changed {
		return n, false
	}
	c := n.CloneShallow()
	c.Children = kids
	return c, true
}

// InsertParent promotes a subset of siblings under a new synthetic parent.
//
// The common parent is the parent of the first id in targetIDs. Targets that
// are not direct children of that parent are silently dropped (best effort).
// The new parent node takes over the position of the first moved child; the
// moved children keep their relative order. No-op when the root is targeted,
// the first id is missing, or nothing remains after filtering.
func InsertParent(t *model.Tree, targetIDs []string, text string) *model.Tree {
	if len(targetIDs) == 0 {
		return t
	}
	if text == "" {
		text = DefaultParentText
	}
	for _, id := range targetIDs {
		if id == t.Root.ID {
			return t
		}
	}
	path := t.PathTo(targetIDs[0])
	if len(path) < 2 {
		return t
	}
	parent := path[len(path)-2]

	want := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		want[id] = true
	}

	group := model.NewNode(text)
	kids := make([]*model.Node, 0, len(parent.Children))
	placed := false
	for _, child := range parent.Children {
		if !want[child.ID] {
			kids = append(kids, child)
			continue
		}
		group.Children = append(group.Children, child)
		if !placed {
			kids = append(kids, group)
			placed = true
		}
	}
	if len(group.Children) == 0 {
		return t
	}

	newParent := parent.CloneShallow()
	newParent.Children = kids
	return &model.Tree{Root: rebuildPath(path[:len(path)-1], newParent)}
}

// rebuildPath replaces the last node of a root-first path with repl and
// copies every ancestor above it, sharing all untouched siblings.
func rebuildPath(path []*model.Node, repl *model.Node) *model.Node {
	for i := len(path) - 2; i >= 0; i-- {
		old := path[i+1]
		node := path[i]
		for j, child := range node.Children {
			if child == old {
				repl = replaceChild(node, j, repl)
				break
			}
		}
	}
	return repl
}

// replaceChild clones n with child i swapped for repl
func replaceChild(n *model.Node, i int, repl *model.Node) *model.Node {
	kids := make([]*model.Node, len(n.Children))
	copy(kids, n.Children)
	kids[i] = repl
	c := n.CloneShallow()
	c.Children = kids
	return c
}

// SetCollapsed sets the collapse flag on the node matching id. Collapsing a
// leaf is allowed and has no visible effect. No-op if id is not found.
func SetCollapsed(t *model.Tree, id string, collapsed bool) *model.Tree {
	root, ok := setCollapsedIn(t.Root, id, collapsed)
	if !ok {
		return t
	}
	return &model.Tree{Root: root}
}

func setCollapsedIn(n *model.Node, id string, collapsed bool) (*model.Node, bool) {
	if n.ID == id {
		if n.Collapsed == collapsed {
			return n, false
		}
		c := n.CloneShallow()
		c.Collapsed = collapsed
		return c, true
	}
	for i, child := range n.Children {
		if nc, ok := setCollapsedIn(child, id, collapsed); ok {
			return replaceChild(n, i, nc), true
		}
	}
	return n, false
}
