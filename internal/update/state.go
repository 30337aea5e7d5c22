// Package update implements skillpack's best-effort self-update check:
// a rate-limited lookup of the latest published version, gated by a small
// per-user state file. Nothing in this package is allowed to fail the
// command that triggered it.
package update

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/tailscale/hujson"
)

// State is the persisted update-check record.
type State struct {
	LastCheck int64 `json:"lastCheck"` // epoch milliseconds of the last attempted check
}

// DefaultStatePath returns the per-user location of the update-check state
// file, under the XDG cache directory.
func DefaultStatePath() string {
	return filepath.Join(xdg.CacheHome, "skillpack", "update-check.json")
}

// LoadState reads the state file at path. A missing, unreadable, or
// corrupt file yields the zero State ("never checked") — the check is
// advisory, so state problems must not surface as errors.
func LoadState(path string) State {
	var st State
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	// Tolerate comments and trailing commas in a hand-edited file.
	std, err := hujson.Standardize(data)
	if err != nil {
		return State{}
	}
	if err := json.Unmarshal(std, &st); err != nil {
		return State{}
	}
	return st
}

// SaveState writes the state file atomically, creating parent directories.
func SaveState(path string, st State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// Due reports whether a new check is due given the last-check time and the
// rolling interval.
func (s State) Due(now time.Time, interval time.Duration) bool {
	last := time.UnixMilli(s.LastCheck)
	return now.Sub(last) >= interval
}
