package fragment

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Sections groups fragments by type name. Each list is sorted by
// identifier so builds are deterministic regardless of directory
// enumeration order.
type Sections map[string][]Fragment

// CollectError reports a fragments directory that could not be read.
type CollectError struct {
	Dir string
	Err error
}

func (e *CollectError) Error() string {
	return fmt.Sprintf("collecting fragments from %s: %v", e.Dir, e.Err)
}

func (e *CollectError) Unwrap() error { return e.Err }

// Collect loads every fragment in dir and groups them into sections.
// Entries that fail to load (bad name, unreadable, non-UTF-8) are
// skipped; only an unreadable directory is fatal.
func Collect(dir string) (Sections, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &CollectError{Dir: dir, Err: err}
	}

	sections := make(Sections)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		frag, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		sections[frag.Type] = append(sections[frag.Type], frag)
	}

	for _, frags := range sections {
		sortFragments(frags)
	}

	return sections, nil
}

// CollectPaths returns the paths of directory entries whose file names
// are valid fragment names, in the same order the directory lists them.
// Callers use this to hand the consumed fragment files to git removal.
func CollectPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &CollectError{Dir: dir, Err: err}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if Validate(entry.Name()) != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}

// sortFragments orders by identifier (see ID.Less), tie-breaking on
// content so equal ids still compare deterministically.
func sortFragments(frags []Fragment) {
	sort.Slice(frags, func(i, j int) bool {
		a, b := frags[i], frags[j]
		if a.ID.Less(b.ID) {
			return true
		}
		if b.ID.Less(a.ID) {
			return false
		}
		return a.Content < b.Content
	})
}
