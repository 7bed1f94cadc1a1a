package app

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"mindala/internal/config"
	"mindala/internal/mandala"
	"mindala/internal/model"
	"mindala/internal/mutate"
	"mindala/internal/selection"
	"mindala/internal/storage"
	"mindala/internal/theme"
	"mindala/internal/ui"
)

// ViewMode selects which of the two views is on screen
type ViewMode int

const (
	// ViewMindMap shows the tree outline
	ViewMindMap ViewMode = iota
	// ViewMandala shows the 9×9 chart
	ViewMandala
)

// App is the main application controller. It owns the document, the
// selection, the views and the input modes, and wires them together in the
// event loop. The mind map tree and the mandala chart are both immutable;
// every mutation swaps in a new value and snapshots the document to disk.
type App struct {
	screen  *ui.Screen
	store   *storage.SnapshotStore
	doc     *storage.Document
	sel     *selection.State
	tree    *ui.TreeView
	grid    *ui.GridView
	editor  *ui.LineEditor
	search  *ui.SearchMode
	help    *ui.HelpScreen
	command *ui.CommandMode

	view       ViewMode
	statusMsg  string
	statusTime time.Time
	quit       bool
	debugMode  bool
}

// NewApp creates the application: loads the theme from config, initializes
// the screen and loads (or creates) the document snapshot.
func NewApp(cfg *config.Config, snapshotPath string) (*App, error) {
	th := theme.LoadThemeOrDefault(cfg.Theme)

	screen, err := ui.NewScreen(th)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	screen.EnableMouse()

	store := storage.NewSnapshotStoreWithBackups(snapshotPath, cfg.BackupCount)
	doc, err := store.Load()
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	tree := ui.NewTreeView()
	tree.Rebuild(doc.MindMap)

	return &App{
		screen:     screen,
		store:      store,
		doc:        doc,
		sel:        selection.New(doc.MindMap.Root.ID),
		tree:       tree,
		grid:       ui.NewGridView(),
		search:     ui.NewSearchMode(),
		help:       ui.NewHelpScreen(),
		command:    ui.NewCommandMode(),
		statusMsg:  "Ready",
		statusTime: time.Now(),
	}, nil
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case <-ticker.C:
			a.render()
		}
	}

	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// SetDebugMode enables or disables key-event logging in the status line
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
}

// applyTree installs a new tree value if the mutation produced one. No-op
// mutations return the same tree reference and are not saved.
func (a *App) applyTree(next *model.Tree) bool {
	if next == a.doc.MindMap {
		return false
	}
	a.doc.MindMap = next
	a.tree.Rebuild(next)
	a.save()
	return true
}

// applyChart installs a new chart value, same contract as applyTree
func (a *App) applyChart(next *mandala.Chart) bool {
	if next == a.doc.Mandala {
		return false
	}
	a.doc.Mandala = next
	a.save()
	return true
}

// save writes the document snapshot. Called after every successful mutation
// so the on-disk state never trails the screen by more than one edit.
func (a *App) save() {
	if err := a.store.Save(a.doc); err != nil {
		log.Printf("save failed: %v", err)
		a.SetStatus("Save failed: " + err.Error())
	}
}

// reselect re-anchors the selection when its anchor no longer exists in the
// tree, e.g. after an import replaced the whole document.
func (a *App) reselect() {
	if a.doc.MindMap.FindByID(a.sel.Anchor()) == nil {
		a.sel.Reset(a.doc.MindMap.Root.ID)
	}
}

// revealPath expands every ancestor of id so the node is visible
func (a *App) revealPath(id string) {
	path := a.doc.MindMap.PathTo(id)
	tree := a.doc.MindMap
	for i := 0; i < len(path)-1; i++ {
		tree = mutate.SetCollapsed(tree, path[i].ID, false)
	}
	a.applyTree(tree)
}

// render draws the current state to the screen
func (a *App) render() {
	a.screen.Clear()

	width, height := a.screen.Size()

	title := " mindala "
	if a.view == ViewMandala {
		title += "· mandala chart "
	} else {
		title += "· mind map "
	}
	a.screen.FillLine(0, 0, a.screen.HeaderStyle())
	a.screen.DrawStringLimited(0, 0, title, width, a.screen.HeaderStyle())

	contentTop := 1
	contentHeight := height - 3
	if a.search.IsActive() {
		contentHeight -= a.search.Height()
	}
	if contentHeight < 1 {
		contentHeight = 1
	}

	switch a.view {
	case ViewMindMap:
		a.tree.EnsureVisible(a.sel.Anchor(), contentHeight)
		a.tree.Render(a.screen, a.sel, a.editor, contentTop, contentHeight)
	case ViewMandala:
		a.grid.Render(a.screen, a.doc.Mandala, a.editor, contentTop, contentHeight)
	}

	if a.search.IsActive() {
		a.search.Render(a.screen, height-3)
	}

	a.command.Render(a.screen, height-2)

	a.renderStatusLine(height - 1)

	a.help.Render(a.screen)

	a.screen.Show()
}

func (a *App) renderStatusLine(row int) {
	a.screen.FillLine(0, row, a.screen.StatusModeStyle())

	mode := "NORMAL"
	if a.editor != nil && a.editor.IsActive() {
		mode = "INSERT"
	} else if a.command.IsActive() {
		mode = "COMMAND"
	} else if a.search.IsActive() {
		mode = "SEARCH"
	}
	left := fmt.Sprintf(" -- %s -- ", mode)
	a.screen.DrawString(0, row, left, a.screen.StatusModeStyle())

	if a.statusMsg != "" && a.statusMsg != "Ready" && time.Since(a.statusTime) <= 3*time.Second {
		a.screen.DrawString(ui.StringWidth(left)+1, row, a.statusMsg, a.screen.StatusMessageStyle())
	}
}
