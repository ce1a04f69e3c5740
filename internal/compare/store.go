package compare

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the comparison record.
type Store interface {
	Save(c Comparison) error
	Path() string
}

// FileStore implements Store by writing the record as indented JSON,
// overwriting any previous record.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(c Comparison) error {
	// A failed label persists as an empty mapping, not null.
	if c.Original == nil {
		c.Original = Metrics{}
	}
	if c.Optimized == nil {
		c.Optimized = Metrics{}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) Path() string {
	return s.path
}
