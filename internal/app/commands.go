package app

import (
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/davecgh/go-spew/spew"

	"mindala/internal/outline"
)

// handleCommand executes a command entered on the ':' line
func (a *App) handleCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "q", "quit":
		a.quit = true
	case "q!", "quit!":
		a.quit = true
	case "w", "write":
		a.save()
		a.SetStatus("Saved")
	case "wq":
		a.save()
		a.quit = true
	case "import":
		if len(parts) < 2 {
			a.SetStatus("Usage: :import <file>")
			return
		}
		a.importOutline(parts[1])
	case "export":
		if len(parts) < 2 {
			a.SetStatus("Usage: :export <file>")
			return
		}
		a.exportOutline(parts[1])
	case "copy":
		a.copyOutline()
	case "paste-import":
		a.pasteImport()
	case "mandala":
		a.view = ViewMandala
	case "map":
		a.view = ViewMindMap
	case "debug":
		log.Printf("document dump:\n%s", spew.Sdump(a.doc))
		a.SetStatus("Document dumped to log")
	case "help":
		a.help.Show()
	default:
		a.SetStatus("Unknown command: " + parts[0])
	}
}

// importOutline replaces the mind map with the parsed contents of a file
func (a *App) importOutline(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		a.SetStatus("Import failed: " + err.Error())
		return
	}
	a.applyTree(outline.Parse(string(data)))
	a.reselect()
	a.SetStatus("Imported " + path)
}

// exportOutline writes the mind map as outline text to a file
func (a *App) exportOutline(path string) {
	text := outline.Write(a.doc.MindMap)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		a.SetStatus("Export failed: " + err.Error())
		return
	}
	a.SetStatus("Exported " + path)
}

// copyOutline puts the outline text on the system clipboard
func (a *App) copyOutline() {
	if err := clipboard.WriteAll(outline.Write(a.doc.MindMap)); err != nil {
		a.SetStatus("Copy failed: " + err.Error())
		return
	}
	a.SetStatus("Copied outline to clipboard")
}

// pasteImport replaces the mind map with outline text from the clipboard
func (a *App) pasteImport() {
	text, err := clipboard.ReadAll()
	if err != nil {
		a.SetStatus("Paste failed: " + err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		a.SetStatus("Clipboard is empty")
		return
	}
	a.applyTree(outline.Parse(text))
	a.reselect()
	a.SetStatus("Imported from clipboard")
}
