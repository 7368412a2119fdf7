package mdblist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/moviequiz/internal/fileutil"
)

// FixtureStore reads and writes recorded provider responses stored as
// <dir>/<identifier>.json.
type FixtureStore struct {
	Dir string
}

// Path returns the fixture path for id.
func (s FixtureStore) Path(id string) string {
	return filepath.Join(s.Dir, fileutil.SanitizeFilename(id)+".json")
}

// Exists reports whether a fixture for id has been recorded.
func (s FixtureStore) Exists(id string) bool {
	return fileutil.FileExists(s.Path(id))
}

// Read returns the fixture contents unchanged.
func (s FixtureStore) Read(id string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return data, nil
}

// Write stores data as the fixture for id, replacing any previous recording.
func (s FixtureStore) Write(id string, data []byte) error {
	if _, err := fileutil.WriteFileWithOverwrite(s.Path(id), data, 0o644, true); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	return nil
}
