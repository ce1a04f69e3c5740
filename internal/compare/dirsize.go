package compare

import (
	"os"
	"path/filepath"
)

// CacheSizeMB returns the total size in megabytes of all regular files
// under dir, recursively. ok is false when dir does not exist or is not
// a directory.
func CacheSizeMB(dir string) (float64, bool) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return 0, false
	}

	var total int64
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries just don't count
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})

	return float64(total) / (1024 * 1024), true
}
