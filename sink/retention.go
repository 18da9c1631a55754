package sink

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cleanup removes files under dir (including dated subdirectories) matching
// pattern whose modification time is older than maxAge, returning the paths
// it removed. Subdirectories the sweep leaves empty are removed as well. A
// zero maxAge disables pruning. Unreadable entries are skipped; pruning is
// best effort.
func Cleanup(dir, pattern string, maxAge time.Duration) []string {
	if maxAge <= 0 || strings.TrimSpace(dir) == "" {
		return nil
	}
	cutoff := time.Now().Add(-maxAge)

	var removed []string
	filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return nil
		}
		if pattern != "" {
			matched, err := filepath.Match(pattern, entry.Name())
			if err != nil || !matched {
				return nil
			}
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err == nil {
			removed = append(removed, path)
		}
		return nil
	})

	// Day directories the sweep emptied; Remove fails on non-empty ones,
	// which is the behavior wanted here.
	if entries, err := os.ReadDir(dir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				os.Remove(filepath.Join(dir, entry.Name()))
			}
		}
	}
	return removed
}
