package lttng

import (
	"fmt"
	"os"
	"path/filepath"
)

// Consumer is an arbitrary trace consumer a session records into.
type Consumer interface {
	// ToURL returns the locator passed to the lttng session.
	ToURL() string
}

// FileSystemConsumer records traces into a directory on the local file
// system.
type FileSystemConsumer struct {
	path string
}

// NewFileSystemConsumer builds a consumer over the given directory, creating
// it if necessary.
func NewFileSystemConsumer(path string) (*FileSystemConsumer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving consumer path %q: %w", path, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating consumer path %q: %w", abs, err)
	}
	return &FileSystemConsumer{path: abs}, nil
}

// Path returns the absolute directory the consumer records into.
func (c *FileSystemConsumer) Path() string { return c.path }

// ToURL returns the directory as a file:// locator.
func (c *FileSystemConsumer) ToURL() string { return "file://" + c.path }
