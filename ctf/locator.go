package ctf

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// metadataMarker is the file that marks a directory as holding a trace.
const metadataMarker = "metadata"

// FindTraceDir returns the first directory at or below root that contains a
// metadata marker file. It fails with ErrTraceNotFound when no such directory
// exists.
func FindTraceDir(root string) (string, error) {
	if _, err := os.Stat(filepath.Join(root, metadataMarker)); err == nil {
		return root, nil
	}

	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if _, err := os.Stat(filepath.Join(path, metadataMarker)); err == nil {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching %q for a trace: %w", root, err)
	}
	if found == "" {
		return "", fmt.Errorf("%q: %w", root, ErrTraceNotFound)
	}
	return found, nil
}
