package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileLoader reads tuning overrides from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a loader backed by LoadTuning.
func NewFileLoader() *FileLoader { return &FileLoader{} }

func (l *FileLoader) Load(path string) (Tuning, error) {
	return LoadTuning(path)
}

// LoadTuning reads a JSON tuning override file and merges it over the
// defaults. An empty path returns the defaults unchanged. Fields absent from
// the file keep their default values, so an override file only needs the
// knobs it changes.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading tuning file: %w", err)
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("parsing tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}
