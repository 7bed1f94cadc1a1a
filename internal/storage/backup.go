package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// DefaultBackupCount is how many timestamped backups are kept per snapshot
const DefaultBackupCount = 10

// BackupRotation keeps timestamped copies of a snapshot file next to it,
// pruning the oldest ones beyond a fixed count.
type BackupRotation struct {
	filePath string
	keep     int
}

// NewBackupRotation creates a rotation for the given snapshot path
func NewBackupRotation(filePath string, keep int) *BackupRotation {
	if keep < 1 {
		keep = 1
	}
	return &BackupRotation{filePath: filePath, keep: keep}
}

// Rotate copies the current snapshot into a timestamped backup and prunes
// old backups. A missing snapshot is not an error; there is simply nothing
// to back up yet.
func (b *BackupRotation) Rotate() error {
	data, err := os.ReadFile(b.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read snapshot for backup: %w", err)
	}

	backupPath := fmt.Sprintf("%s.%s.bak", b.filePath, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return b.prune()
}

// Backups returns the existing backup paths, oldest first
func (b *BackupRotation) Backups() ([]string, error) {
	dir := filepath.Dir(b.filePath)
	base := filepath.Base(b.filePath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, base+".") || !strings.HasSuffix(name, ".bak") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	// The timestamp format sorts lexicographically.
	slices.Sort(paths)
	return paths, nil
}

func (b *BackupRotation) prune() error {
	paths, err := b.Backups()
	if err != nil {
		return err
	}
	for len(paths) > b.keep {
		if err := os.Remove(paths[0]); err != nil {
			return fmt.Errorf("failed to prune backup: %w", err)
		}
		paths = paths[1:]
	}
	return nil
}
