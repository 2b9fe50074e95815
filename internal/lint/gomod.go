package lint

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// DefaultImportPath is the canonical import path of the runtime library.
// Forks published under a different module path can override it with the
// -module flag.
const DefaultImportPath = "github.com/sanjacob/tiny-api-client/pkg/tinyapi"

// FindGoMod walks up from dir looking for a go.mod file.
func FindGoMod(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(current, "go.mod")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// ModulePath extracts the module path from a go.mod file.
func ModulePath(goModPath string) (string, error) {
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("reading go.mod: %w", err)
	}
	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return "", fmt.Errorf("parsing go.mod: %w", err)
	}
	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration in %s", goModPath)
	}
	return modFile.Module.Mod.Path, nil
}

// ResolveImportPath decides which import path identifies the runtime
// library in the scanned tree. An explicit override wins; otherwise, when
// the scanned module is itself a fork of tiny-api-client, the library path
// is derived from its module path so self-linting works.
func ResolveImportPath(override, startDir string) string {
	if override != "" {
		return override
	}
	if goModPath, ok := FindGoMod(startDir); ok {
		if module, err := ModulePath(goModPath); err == nil {
			if filepath.Base(module) == "tiny-api-client" {
				return module + "/pkg/tinyapi"
			}
		}
	}
	return DefaultImportPath
}
