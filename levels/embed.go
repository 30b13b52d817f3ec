package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the level loaded when none is named.
const DefaultLevel = "tower.json"

// ErrNotFound is returned when a level exists neither on disk nor embedded.
var ErrNotFound = errors.New("levels: not found")

// Load reads a level by name. A file on disk at name (or levels/name) wins
// over the embedded copy so levels can be edited without rebuilding.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if data, err := os.ReadFile(name); err == nil {
		return parseNamed(name, data)
	}
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return parseNamed(clean, data)
	}
	return LoadLevelFromFS(LevelsFS, clean)
}

// LoadLevelFromFS loads a level JSON from an fs.FS (e.g. embedded levels).
func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := fs.ReadFile(fsys, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return parseNamed(clean, data)
}

// Names lists the embedded level files.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	return names
}

func parseNamed(name string, data []byte) (*Level, error) {
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	return lvl, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
