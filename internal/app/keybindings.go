package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mindala/internal/model"
	"mindala/internal/mutate"
	"mindala/internal/ui"
)

// handleRawEvent routes an input event to the active mode. Modes are checked
// in priority order: command line, search, inline editor, help overlay, then
// normal keys for whichever view is active.
func (a *App) handleRawEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Size()
		return
	}

	if a.command.IsActive() {
		if keyEv, ok := ev.(*tcell.EventKey); ok {
			switch a.command.HandleKey(keyEv) {
			case ui.CommandExecute:
				cmd := a.command.Input()
				a.command.Deactivate()
				a.handleCommand(cmd)
			case ui.CommandCancel:
			}
		}
		return
	}

	if a.search.IsActive() {
		if keyEv, ok := ev.(*tcell.EventKey); ok {
			switch a.search.HandleKey(keyEv) {
			case ui.SearchJump:
				if match, ok := a.search.Selected(); ok {
					a.search.Deactivate()
					a.jumpToNode(match.ID)
				}
			case ui.SearchContinue:
				a.search.Update(a.doc.MindMap)
			case ui.SearchCancel:
			}
		}
		return
	}

	if a.editor != nil && a.editor.IsActive() {
		if keyEv, ok := ev.(*tcell.EventKey); ok {
			switch a.editor.HandleKey(keyEv) {
			case ui.EditCommit:
				a.commitEdit(a.editor.Text())
				a.editor = nil
			case ui.EditCancel:
				a.editor = nil
			}
		}
		return
	}

	if a.help.IsVisible() {
		if keyEv, ok := ev.(*tcell.EventKey); ok {
			switch keyEv.Key() {
			case tcell.KeyEscape:
				a.help.Hide()
			case tcell.KeyDown:
				a.help.ScrollDown()
			case tcell.KeyUp:
				a.help.ScrollUp()
			default:
				switch keyEv.Rune() {
				case '?', 'q':
					a.help.Hide()
				case 'j':
					a.help.ScrollDown()
				case 'k':
					a.help.ScrollUp()
				}
			}
		}
		return
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.debugMode {
			a.SetStatus(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
		}
		if a.view == ViewMandala {
			a.handleMandalaKey(ev)
		} else {
			a.handleMindMapKey(ev)
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

// commitEdit writes the editor text back into whichever cell or node was
// being edited.
func (a *App) commitEdit(text string) {
	if a.view == ViewMandala {
		g, c := a.grid.Cursor()
		a.applyChart(a.doc.Mandala.SetCell(g, c, text))
		return
	}
	if a.applyTree(mutate.Rename(a.doc.MindMap, a.sel.Anchor(), text)) {
		a.SetStatus("Renamed")
	}
}

// handleMindMapKey handles normal-mode keys in the tree view
func (a *App) handleMindMapKey(ev *tcell.EventKey) {
	order := a.doc.MindMap.VisibleIDs()
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	alt := ev.Modifiers()&tcell.ModAlt != 0

	switch ev.Key() {
	case tcell.KeyDown:
		a.sel.MoveNext(order, shift)
		return
	case tcell.KeyUp:
		a.sel.MovePrev(order, shift)
		return
	case tcell.KeyLeft:
		a.collapseAnchor(true)
		return
	case tcell.KeyRight:
		a.collapseAnchor(false)
		return
	case tcell.KeyEnter:
		a.insertSibling()
		return
	case tcell.KeyTab:
		a.insertChild()
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ctrl {
			a.removeSelection(order)
		}
		return
	case tcell.KeyDelete:
		if ctrl {
			a.removeSelection(order)
		}
		return
	case tcell.KeyF2:
		a.view = ViewMandala
		return
	case tcell.KeyCtrlS:
		a.save()
		a.SetStatus("Saved")
		return
	}

	switch ev.Rune() {
	case 'j':
		a.sel.MoveNext(order, false)
	case 'J':
		a.sel.MoveNext(order, true)
	case 'k':
		a.sel.MovePrev(order, false)
	case 'K':
		a.sel.MovePrev(order, true)
	case 'h':
		a.collapseAnchor(true)
	case 'l':
		a.collapseAnchor(false)
	case ' ':
		a.toggleAnchorCollapse()
	case 'i', 'r':
		a.startNodeEdit()
	case 'p':
		if alt {
			a.groupSelection(order)
		}
	case 'd':
		a.removeSelection(order)
	case 'm':
		a.view = ViewMandala
	case '/':
		a.search.Activate()
	case '?':
		a.help.Show()
	case ':':
		a.command.Activate()
	}
}

// handleMandalaKey handles normal-mode keys in the chart view
func (a *App) handleMandalaKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyDown:
		a.grid.Move(0, 1)
		return
	case tcell.KeyUp:
		a.grid.Move(0, -1)
		return
	case tcell.KeyLeft:
		a.grid.Move(-1, 0)
		return
	case tcell.KeyRight:
		a.grid.Move(1, 0)
		return
	case tcell.KeyEnter:
		a.startCellEdit()
		return
	case tcell.KeyF2, tcell.KeyEscape:
		a.view = ViewMindMap
		return
	case tcell.KeyCtrlS:
		a.save()
		a.SetStatus("Saved")
		return
	}

	switch ev.Rune() {
	case 'j':
		a.grid.Move(0, 1)
	case 'k':
		a.grid.Move(0, -1)
	case 'h':
		a.grid.Move(-1, 0)
	case 'l':
		a.grid.Move(1, 0)
	case 'i':
		a.startCellEdit()
	case 'm':
		a.view = ViewMindMap
	case '?':
		a.help.Show()
	case ':':
		a.command.Activate()
	}
}

// handleMouse routes clicks to the active view
func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	width, height := a.screen.Size()
	contentTop := 1
	contentHeight := height - 3

	if a.view == ViewMandala {
		if g, c, ok := a.grid.HitTest(x, y, width, contentTop, contentHeight); ok {
			a.grid.SetCursor(g, c)
		}
		return
	}

	id, ok := a.tree.HitTest(y, contentTop, contentHeight)
	if !ok {
		return
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		a.sel.ShiftClick(id)
	} else {
		a.sel.Click(id)
	}
}

// startNodeEdit opens the inline editor on the anchor node. Editing is only
// offered for single-node selections.
func (a *App) startNodeEdit() {
	if !a.sel.CanEdit() {
		a.SetStatus("Select a single node to edit")
		return
	}
	node := a.doc.MindMap.FindByID(a.sel.Anchor())
	if node == nil {
		return
	}
	a.editor = ui.NewLineEditor(node.Text)
}

// startCellEdit opens the inline editor on the chart cell under the cursor
func (a *App) startCellEdit() {
	g, c := a.grid.Cursor()
	a.editor = ui.NewLineEditor(a.doc.Mandala.Cell(g, c))
}

// collapseAnchor collapses or expands the anchor node
func (a *App) collapseAnchor(collapsed bool) {
	a.applyTree(mutate.SetCollapsed(a.doc.MindMap, a.sel.Anchor(), collapsed))
}

func (a *App) toggleAnchorCollapse() {
	node := a.doc.MindMap.FindByID(a.sel.Anchor())
	if node == nil {
		return
	}
	a.applyTree(mutate.SetCollapsed(a.doc.MindMap, node.ID, !node.Collapsed))
}

// insertSibling inserts a new node after the anchor and selects it
func (a *App) insertSibling() {
	refID := a.sel.Anchor()
	next := mutate.InsertSibling(a.doc.MindMap, refID)
	if !a.applyTree(next) {
		a.SetStatus("Cannot add a sibling to the root")
		return
	}
	if id := siblingAfter(next, refID); id != "" {
		a.sel.Reset(id)
	}
	a.SetStatus("Added sibling")
}

// insertChild appends a new child under the anchor and selects it
func (a *App) insertChild() {
	parentID := a.sel.Anchor()
	next := mutate.InsertChild(a.doc.MindMap, parentID)
	if !a.applyTree(next) {
		return
	}
	if parent := next.FindByID(parentID); parent != nil && len(parent.Children) > 0 {
		a.sel.Reset(parent.Children[len(parent.Children)-1].ID)
	}
	a.SetStatus("Added child")
}

// removeSelection deletes every selected node and re-anchors the selection
// on the nearest surviving node above the old anchor. A selection that
// includes the root is left alone.
func (a *App) removeSelection(order []string) {
	if a.sel.IsSelected(a.doc.MindMap.Root.ID) {
		a.SetStatus("Cannot delete the root")
		return
	}
	fallback := a.sel.Fallback(order)
	next := mutate.RemoveNodes(a.doc.MindMap, a.sel.IDs(order))
	if !a.applyTree(next) {
		return
	}
	if fallback != "" && next.FindByID(fallback) != nil {
		a.sel.Reset(fallback)
	} else {
		a.sel.Reset(next.Root.ID)
	}
	a.SetStatus("Deleted")
}

// groupSelection wraps the selected nodes in a new parent node and selects it
func (a *App) groupSelection(order []string) {
	ids := a.sel.IDs(order)
	next := mutate.InsertParent(a.doc.MindMap, ids, mutate.DefaultParentText)
	if !a.applyTree(next) {
		a.SetStatus("Cannot group the root")
		return
	}
	if path := next.PathTo(ids[0]); len(path) >= 2 {
		a.sel.Reset(path[len(path)-2].ID)
	}
	a.SetStatus("Grouped under new parent")
}

// jumpToNode expands the path to a node and selects it
func (a *App) jumpToNode(id string) {
	a.revealPath(id)
	if a.doc.MindMap.FindByID(id) != nil {
		a.sel.Reset(id)
	}
}

// siblingAfter finds the node that directly follows refID among its parent's
// children, used to locate a freshly inserted sibling.
func siblingAfter(t *model.Tree, refID string) string {
	path := t.PathTo(refID)
	if len(path) < 2 {
		return ""
	}
	parent := path[len(path)-2]
	for i, child := range parent.Children {
		if child.ID == refID && i+1 < len(parent.Children) {
			return parent.Children[i+1].ID
		}
	}
	return ""
}
