package builds

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

var ErrNoSources = errors.New("no .jack sources")

const sourceExt = ".jack"

// Collect expands directories into the .jack files directly inside them.
// Explicitly named files are kept whatever their extension.
func Collect(paths []string) (files []string, err error) {
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %q: %w", path, err)
		}
		if !stat.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %q: %w", path, err)
		}
		n := len(files)
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != sourceExt {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
		if len(files) == n {
			return nil, fmt.Errorf("%q: %w", path, ErrNoSources)
		}
	}

	slices.Sort(files)
	files = slices.Compact(files)
	return files, nil
}
