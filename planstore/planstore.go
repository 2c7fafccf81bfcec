// Package planstore persists the outcome of a block allocation between
// runs: the reservation list fed to the allocator plus the block chosen on
// a previous run, as one small JSON document. The allocator is consulted
// only while no prior choice exists; writing the choice back is the
// caller's move, keeping the arithmetic core free of I/O.
package planstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Plan is the on-disk document.
type Plan struct {
	// Reservations lists the blocks already taken, as A.B.C.D/N strings.
	Reservations []string `json:"reservations"`
	// Allocated is the block chosen on a previous run, empty until then.
	Allocated string `json:"allocated,omitempty"`
}

// Load reads the plan at path. A missing file is not an error: it yields an
// empty plan, the state before any run.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Plan{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the plan through a temp file and rename, so a crash mid-write
// cannot leave a truncated document behind.
func Save(path string, p *Plan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".plan-*")
	if err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write plan: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
