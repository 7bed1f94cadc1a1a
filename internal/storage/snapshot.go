// Package storage persists the whole document as a single JSON snapshot.
// The snapshot is read once at startup and rewritten after every mutation;
// a missing or unreadable snapshot falls back to the default document.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mindala/internal/mandala"
	"mindala/internal/model"
)

// Document is the whole persisted state: the mind map tree plus the mandala
// chart.
type Document struct {
	MindMap *model.Tree    `json:"mindmap"`
	Mandala *mandala.Chart `json:"mandala"`
}

// DefaultDocument returns the document used when no snapshot exists
func DefaultDocument() *Document {
	return &Document{
		MindMap: model.DefaultTree(),
		Mandala: mandala.New(),
	}
}

// SnapshotStore handles JSON snapshot persistence for one file path
type SnapshotStore struct {
	FilePath string
	backups  *BackupRotation
}

// NewSnapshotStore creates a store for the given path. An empty path uses
// the default location under the user's data directory.
func NewSnapshotStore(filePath string) *SnapshotStore {
	return NewSnapshotStoreWithBackups(filePath, DefaultBackupCount)
}

// NewSnapshotStoreWithBackups creates a store keeping the given number of
// timestamped backups.
func NewSnapshotStoreWithBackups(filePath string, keep int) *SnapshotStore {
	if filePath == "" {
		filePath = DefaultSnapshotPath()
	}
	if keep <= 0 {
		keep = DefaultBackupCount
	}
	return &SnapshotStore{
		FilePath: filePath,
		backups:  NewBackupRotation(filePath, keep),
	}
}

// DefaultSnapshotPath returns the standard snapshot location
func DefaultSnapshotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/tmp", "mindala", "mindala.json")
	}
	return filepath.Join(home, ".local", "share", "mindala", "mindala.json")
}

// Load reads the snapshot. A missing file is not an error: the default
// document is returned. An unparsable snapshot also degrades to the default
// document with a diagnostic log line; the corrupt file is left in place
// (the next save rotates it into the backups).
func (s *SnapshotStore) Load() (*Document, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultDocument(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("snapshot %s is unparsable, starting from default document: %v", s.FilePath, err)
		return DefaultDocument(), nil
	}

	// Repair partial snapshots from older versions.
	if doc.MindMap == nil || doc.MindMap.Root == nil {
		doc.MindMap = model.DefaultTree()
	}
	if doc.Mandala == nil {
		doc.Mandala = mandala.New()
	} else {
		doc.Mandala = doc.Mandala.Normalize()
	}

	return &doc, nil
}

// Save writes the snapshot, rotating the previous file into the backups
func (s *SnapshotStore) Save(doc *Document) error {
	dir := filepath.Dir(s.FilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	if err := s.backups.Rotate(); err != nil {
		// Backups are best effort; a failed rotation never blocks the save.
		log.Printf("backup rotation failed: %v", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(s.FilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// FileExists checks if the snapshot file exists
func (s *SnapshotStore) FileExists() bool {
	_, err := os.Stat(s.FilePath)
	return err == nil
}
