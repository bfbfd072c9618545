package replay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// SchemaVersion is the on-disk snapshot format version. Increment when the
// snapshot layout changes; ReadTrace rejects snapshots from other versions.
const SchemaVersion uint16 = 1

// eventsFile holds the msgpack-encoded event list inside a trace directory.
const eventsFile = "events.mp"

// metadataContent marks a directory as a replay trace for the locator.
const metadataContent = "ctfkit replay trace\n"

// snapshot is the on-disk payload.
type snapshot struct {
	Schema uint16
	Events []Event
}

// WriteTrace lays out a replay trace under dir: the metadata marker the trace
// locator recognizes plus the msgpack-encoded events. The events file is
// written to a temp file and renamed into place.
func WriteTrace(dir string, events []Event) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata"), []byte(metadataContent), 0o644); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(snapshot{Schema: SchemaVersion, Events: events}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), filepath.Join(dir, eventsFile))
}

// ReadTrace loads the events of a replay trace written by WriteTrace.
func ReadTrace(dir string) ([]Event, error) {
	f, err := os.Open(filepath.Join(dir, eventsFile))
	if err != nil {
		return nil, fmt.Errorf("replay: opening trace events: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := msgpack.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("replay: decoding trace events: %w", err)
	}
	if snap.Schema != SchemaVersion {
		return nil, fmt.Errorf("replay: snapshot schema %d, want %d", snap.Schema, SchemaVersion)
	}
	return snap.Events, nil
}
