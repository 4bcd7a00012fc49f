// Package snapshotio persists a chip8.Snapshot to disk using encoding/gob.
package snapshotio

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/mkessler-dev/octachip/internal/chip8"
)

// Save writes snap to path in gob format.
func Save(path string, snap chip8.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshotio: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(snap); err != nil {
		return fmt.Errorf("snapshotio: encode: %w", err)
	}
	return nil
}

// Load reads a snapshot previously written by Save.
func Load(path string) (chip8.Snapshot, error) {
	var snap chip8.Snapshot

	f, err := os.Open(path)
	if err != nil {
		return snap, fmt.Errorf("snapshotio: %w", err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return snap, fmt.Errorf("snapshotio: decode: %w", err)
	}
	return snap, nil
}
