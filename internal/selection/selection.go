// Package selection tracks which mind map nodes are selected and which one
// is the anchor (the edit-focus target). All movement is computed over the
// visible order the caller derives from the current tree, so the state never
// holds node pointers, only ids.
package selection

// State holds the current selection. In steady state the set is non-empty
// and the anchor is a member of it.
type State struct {
	selected map[string]bool
	anchor   string
}

// New creates a selection containing just the given id
func New(id string) *State {
	s := &State{}
	s.Reset(id)
	return s
}

// Reset replaces the whole selection with a single id
func (s *State) Reset(id string) {
	s.selected = map[string]bool{id: true}
	s.anchor = id
}

// Anchor returns the current edit-focus id
func (s *State) Anchor() string {
	return s.anchor
}

// IsSelected reports whether id is part of the selection
func (s *State) IsSelected(id string) bool {
	return s.selected[id]
}

// Size returns the number of selected ids
func (s *State) Size() int {
	return len(s.selected)
}

// IDs returns the selected ids in visible order. Ids that are no longer part
// of the visible order (collapsed away) are appended at the end so they are
// never silently lost from structural operations.
func (s *State) IDs(order []string) []string {
	out := make([]string, 0, len(s.selected))
	seen := make(map[string]bool, len(s.selected))
	for _, id := range order {
		if s.selected[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	for id := range s.selected {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

// MoveNext moves the anchor to the next id in the visible order. With extend
// set the new id is added to the selection, otherwise the selection is
// replaced. At the end of the order nothing moves.
func (s *State) MoveNext(order []string, extend bool) {
	s.move(order, 1, extend)
}

// MovePrev moves the anchor to the previous id in the visible order
func (s *State) MovePrev(order []string, extend bool) {
	s.move(order, -1, extend)
}

func (s *State) move(order []string, delta int, extend bool) {
	idx := indexOf(order, s.anchor)
	if idx < 0 {
		// Anchor fell out of the visible order (collapse, deletion race);
		// reattach at the first visible node.
		if len(order) > 0 {
			s.Reset(order[0])
		}
		return
	}
	next := idx + delta
	if next < 0 || next >= len(order) {
		return
	}
	id := order[next]
	if extend {
		s.selected[id] = true
	} else {
		s.selected = map[string]bool{id: true}
	}
	s.anchor = id
}

// Click replaces the selection with the clicked id
func (s *State) Click(id string) {
	s.Reset(id)
}

// ShiftClick toggles the clicked id's membership and anchors on it either way
func (s *State) ShiftClick(id string) {
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
	s.anchor = id
}

// CanEdit reports whether a single-node text edit affordance should be
// offered: exactly one id selected and it is the anchor.
func (s *State) CanEdit() bool {
	return len(s.selected) == 1 && s.selected[s.anchor]
}

// Fallback computes the id to focus after deleting the current selection:
// the first id before the anchor in the visible order that is not selected,
// or the first visible node when the scan finds nothing.
func (s *State) Fallback(order []string) string {
	if len(order) == 0 {
		return ""
	}
	idx := indexOf(order, s.anchor)
	for i := idx - 1; i >= 0; i-- {
		if !s.selected[order[i]] {
			return order[i]
		}
	}
	return order[0]
}

// Contains reports whether any of the given ids is selected
func (s *State) Contains(ids ...string) bool {
	for _, id := range ids {
		if s.selected[id] {
			return true
		}
	}
	return false
}

func indexOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}
