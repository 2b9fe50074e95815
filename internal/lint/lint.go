package lint

import (
	"go/ast"
	"go/token"
	"sort"

	"golang.org/x/tools/go/ast/inspector"
)

// Options configures a lint run.
type Options struct {
	// ImportPath identifies the runtime library in the scanned source.
	// Empty means: derive it from the scanned module, falling back to
	// DefaultImportPath.
	ImportPath string
}

// Linter scans directories of Go source and reports static diagnostics for
// tinyapi endpoint call sites.
type Linter struct {
	reader     *FileReader
	scanner    *Scanner
	importPath string
}

// NewLinter creates a Linter.
func NewLinter(opts Options) *Linter {
	return &Linter{
		reader:     NewFileReader(),
		scanner:    NewScanner(),
		importPath: opts.ImportPath,
	}
}

// Run lints every package directory matched by the patterns and returns all
// findings, ordered by source position. Static findings are never fatal;
// an error means the scan itself failed.
func (l *Linter) Run(patterns []string) ([]Finding, error) {
	dirs, err := l.scanner.Scan(patterns)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, dir := range dirs {
		importPath := l.importPath
		if importPath == "" {
			importPath = ResolveImportPath("", dir)
		}

		paths, err := l.scanner.GoFiles(dir)
		if err != nil {
			return nil, err
		}

		var files []*ast.File
		var aliases []string
		for _, path := range paths {
			file, err := l.reader.ParseGoFile(path)
			if err != nil {
				// Unparseable files are the compiler's problem.
				continue
			}
			files = append(files, file)
			aliases = append(aliases, libraryAlias(file, importPath))
		}

		findings = append(findings, checkPackage(files, aliases, l.reader.FileSet())...)
	}

	sortFindings(findings)
	return findings, nil
}

// CheckSource lints a single in-memory source file against the default
// import path. Used by tests and by editor integrations.
func (l *Linter) CheckSource(filename, source string) ([]Finding, error) {
	file, err := l.reader.ParseGoSource(filename, source)
	if err != nil {
		return nil, err
	}
	importPath := l.importPath
	if importPath == "" {
		importPath = DefaultImportPath
	}
	alias := libraryAlias(file, importPath)
	findings := checkPackage([]*ast.File{file}, []string{alias}, l.reader.FileSet())
	sortFindings(findings)
	return findings, nil
}

// checkPackage runs the three passes over one package's files: collect
// clients, collect endpoint declarations, then check call sites.
// Declarations are collected across all files first so order of
// declaration never matters.
func checkPackage(files []*ast.File, aliases []string, fset *token.FileSet) []Finding {
	index := newPackageIndex()
	aliasByFile := make(map[string]string, len(files))
	for i, file := range files {
		collectClients(file, aliases[i], index)
		aliasByFile[fset.Position(file.Pos()).Filename] = aliases[i]
	}
	for i, file := range files {
		collectEndpoints(file, aliases[i], index)
	}

	var findings []Finding
	insp := inspector.New(files)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		alias := aliasByFile[fset.Position(call.Pos()).Filename]
		findings = append(findings, checkCall(call, alias, index, fset)...)
	})
	return findings
}

func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i].Pos, findings[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
