package model

// VisibleNode pairs a node with its depth in the visible order
type VisibleNode struct {
	Node  *Node
	Depth int
}

// Visible returns the depth-first pre-order sequence of nodes reachable under
// the current expand/collapse state. Collapsed subtrees contribute only their
// root node. The traversal is iterative; the stack holds pending subtrees in
// reverse child order so siblings come out in display order.
func (t *Tree) Visible() []VisibleNode {
	if t == nil || t.Root == nil {
		return nil
	}
	var out []VisibleNode
	stack := []VisibleNode{{Node: t.Root, Depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, top)
		if top.Node.Collapsed {
			continue
		}
		for i := len(top.Node.Children) - 1; i >= 0; i-- {
			stack = append(stack, VisibleNode{Node: top.Node.Children[i], Depth: top.Depth + 1})
		}
	}
	return out
}

// VisibleIDs returns just the ids of Visible, in the same order
func (t *Tree) VisibleIDs() []string {
	visible := t.Visible()
	ids := make([]string, len(visible))
	for i, v := range visible {
		ids[i] = v.Node.ID
	}
	return ids
}

// All returns every node in the tree in pre-order, ignoring collapse state
func (t *Tree) All() []*Node {
	if t == nil || t.Root == nil {
		return nil
	}
	var out []*Node
	stack := []*Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return out
}

// FindByID finds a node by its ID anywhere in the tree, or nil
func (t *Tree) FindByID(id string) *Node {
	for _, n := range t.All() {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// PathTo returns the root-to-node path for id, or nil if the id is absent.
// The path always starts at the root; for the root itself it has length 1.
func (t *Tree) PathTo(id string) []*Node {
	if t == nil || t.Root == nil {
		return nil
	}
	parents := make(map[string]*Node)
	stack := []*Node{t.Root}
	var target *Node
	for len(stack) > 0 && target == nil {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.ID == id {
			target = n
			break
		}
		for _, child := range n.Children {
			parents[child.ID] = n
			stack = append(stack, child)
		}
	}
	if target == nil {
		return nil
	}
	var path []*Node
	for n := target; n != nil; n = parents[n.ID] {
		path = append(path, n)
	}
	// reverse into root-first order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
