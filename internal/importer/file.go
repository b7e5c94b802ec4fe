// Package importer reads and writes itinerary snapshot files.
//
// The file format is the persisted snapshot wire format: a version tag
// plus the full entry sequence. Imported files are validated before
// they are allowed to replace stored state.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vincenthsieh/tokyosync/internal/domain"
)

// ReadFile loads a snapshot from a JSON file. The content is decoded
// only; call Validate before saving it.
func ReadFile(path string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	return &snap, nil
}

// WriteFile writes a snapshot to a JSON file, indented for hand editing.
func WriteFile(path string, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
