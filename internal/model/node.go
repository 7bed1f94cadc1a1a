// Package model contains the data model for the mind map tree.
package model

import "github.com/google/uuid"

// Node represents a single node in the mind map tree.
//
// Nodes are treated as immutable once they are part of a Tree: structural
// edits copy the path from the root down to the touched node and share
// everything else, so callers can detect change by comparing tree references.
type Node struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Children  []*Node `json:"children,omitempty"`
	Collapsed bool    `json:"collapsed,omitempty"` // absent means expanded
}

// Tree represents a whole mind map. Root is never nil.
type Tree struct {
	Root *Node `json:"root"`
}

// NewNode creates a new expanded leaf node with a generated ID
func NewNode(text string) *Node {
	return &Node{
		ID:   uuid.NewString(),
		Text: text,
	}
}

// NewTree creates a tree rooted at the given node
func NewTree(root *Node) *Tree {
	return &Tree{Root: root}
}

// DefaultTree returns the tree used when no snapshot exists
func DefaultTree() *Tree {
	return NewTree(NewNode("Root"))
}

// CloneShallow copies the node itself, sharing the children slice. Callers
// that modify Children must replace the slice, never append in place.
func (n *Node) CloneShallow() *Node {
	c := *n
	return &c
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
