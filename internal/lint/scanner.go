package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner resolves directory arguments into the set of directories that
// contain Go files. Go-style "./..." patterns scan recursively.
type Scanner struct{}

// NewScanner creates a directory scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan expands the given directory patterns. Vendor trees, testdata and
// directories starting with "." or "_" are skipped during recursive scans.
func (s *Scanner) Scan(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	for _, pattern := range patterns {
		recursive := false
		dir := pattern
		if strings.HasSuffix(pattern, "/...") {
			recursive = true
			dir = strings.TrimSuffix(pattern, "/...")
			if dir == "" {
				dir = "."
			}
		}

		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", dir, err)
		}

		if !recursive {
			if hasGoFiles(absDir) && !seen[absDir] {
				seen[absDir] = true
				dirs = append(dirs, absDir)
			}
			continue
		}

		err = filepath.WalkDir(absDir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() {
				return nil
			}
			name := entry.Name()
			if path != absDir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			if hasGoFiles(path) && !seen[path] {
				seen[path] = true
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", absDir, err)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// GoFiles lists the Go source files in a single directory, excluding
// generated-looking files is left to the caller.
func (s *Scanner) GoFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasPrefix(name, ".") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") {
			return true
		}
	}
	return false
}
