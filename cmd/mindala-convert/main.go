// mindala-convert converts between the JSON snapshot and the plain-text
// outline and mandala formats, for scripting and for inspecting snapshots
// without the TUI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mindala/internal/mandala"
	"mindala/internal/outline"
	"mindala/internal/storage"
)

func main() {
	snapshot := flag.String("snapshot", "", "Snapshot file (default: the standard location)")
	mode := flag.String("mode", "export-outline", "One of: export-outline, export-mandala, import-outline, import-mandala")
	file := flag.String("file", "-", "Text file to read or write, - for stdin/stdout")
	flag.Parse()

	store := storage.NewSnapshotStore(*snapshot)
	doc, err := store.Load()
	if err != nil {
		fail("load snapshot: %v", err)
	}

	switch *mode {
	case "export-outline":
		writeText(*file, outline.Write(doc.MindMap))
	case "export-mandala":
		writeText(*file, mandala.Write(doc.Mandala))
	case "import-outline":
		doc.MindMap = outline.Parse(readText(*file))
		if err := store.Save(doc); err != nil {
			fail("save snapshot: %v", err)
		}
	case "import-mandala":
		doc.Mandala = mandala.Parse(readText(*file))
		if err := store.Save(doc); err != nil {
			fail("save snapshot: %v", err)
		}
	default:
		fail("unknown mode %q", *mode)
	}
}

func readText(path string) string {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fail("read %s: %v", path, err)
	}
	return string(data)
}

func writeText(path, text string) {
	if path == "-" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		fail("write %s: %v", path, err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
