package lint

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
)

// FileReader parses Go source files with caching so repeated passes over
// the same tree stay cheap.
type FileReader struct {
	fileSet  *token.FileSet
	astCache *cache[string, *ast.File]
}

// NewFileReader creates a FileReader with a fresh token.FileSet.
func NewFileReader() *FileReader {
	return &FileReader{
		fileSet:  token.NewFileSet(),
		astCache: newCache[string, *ast.File](),
	}
}

// FileSet returns the token.FileSet shared by all parsed files.
func (fr *FileReader) FileSet() *token.FileSet {
	return fr.fileSet
}

// ParseGoFile parses a Go source file, returning a cached AST when the file
// is unchanged on disk.
func (fr *FileReader) ParseGoFile(filePath string) (*ast.File, error) {
	cleanPath, err := filepath.Abs(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("resolving path %s: %w", filePath, err)
	}

	if cached, ok := fr.astCache.getValid(cleanPath, cleanPath); ok {
		return cached, nil
	}

	file, err := parser.ParseFile(fr.fileSet, cleanPath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(cleanPath), err)
	}

	// Best effort; an uncacheable file is parsed again next time.
	_ = fr.astCache.setWithFileInfo(cleanPath, file, cleanPath)

	return file, nil
}

// ParseGoSource parses Go source from a string, mainly for tests.
func (fr *FileReader) ParseGoSource(filename, source string) (*ast.File, error) {
	file, err := parser.ParseFile(fr.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source %s: %w", filename, err)
	}
	return file, nil
}
