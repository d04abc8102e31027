package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"revolver/internal/naming"
)

// Discover lists the source clips directly inside folder: regular files, or
// symlinks to them, with a movie extension and no proxy or intermediate tag
// in the name. Paths are returned sorted for a deterministic job order.
func Discover(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}
	var sources []string
	for _, entry := range entries {
		if !naming.IsFileEntry(folder, entry) {
			continue
		}
		name := entry.Name()
		if !naming.IsMovieFile(name) || !naming.IsOriginalName(name) {
			continue
		}
		sources = append(sources, filepath.Join(folder, name))
	}
	sort.Strings(sources)
	return sources, nil
}
