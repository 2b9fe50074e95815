package lint

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/sanjacob/tiny-api-client/pkg/tinyapi"
)

// clientDecl is a discovered client declaration: its identifier, the parsed
// base URL template when the URL was a literal, and the parameter names
// that have a statically visible default at client scope.
type clientDecl struct {
	name     string
	base     *tinyapi.Route
	defaults map[string]bool
}

// packageIndex holds everything collected from one package directory.
// Endpoint entries may map to nil: the declaration was found but is not
// statically analyzable (non-literal route, unparseable spec), so its call
// sites are skipped rather than misreported.
type packageIndex struct {
	clients   map[string]*clientDecl
	endpoints map[string]*Signature
}

func newPackageIndex() *packageIndex {
	return &packageIndex{
		clients:   make(map[string]*clientDecl),
		endpoints: make(map[string]*Signature),
	}
}

// libraryAlias returns the local name under which a file imports the
// runtime library, or "" when the file does not import it.
func libraryAlias(file *ast.File, importPath string) string {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != importPath {
			continue
		}
		if spec.Name != nil {
			return spec.Name.Name
		}
		if i := strings.LastIndex(path, "/"); i >= 0 {
			return path[i+1:]
		}
		return path
	}
	return ""
}

// eachBinding visits every single-value binding in the file: both
// assignments (x := expr) and var declarations (var x = expr).
func eachBinding(file *ast.File, visit func(name string, value ast.Expr)) {
	ast.Inspect(file, func(node ast.Node) bool {
		switch stmt := node.(type) {
		case *ast.AssignStmt:
			if len(stmt.Rhs) == 1 {
				// Covers both x := f() and x, err := f().
				if ident, ok := stmt.Lhs[0].(*ast.Ident); ok {
					visit(ident.Name, stmt.Rhs[0])
				}
				return true
			}
			if len(stmt.Lhs) != len(stmt.Rhs) {
				return true
			}
			for i, lhs := range stmt.Lhs {
				if ident, ok := lhs.(*ast.Ident); ok {
					visit(ident.Name, stmt.Rhs[i])
				}
			}
		case *ast.ValueSpec:
			if len(stmt.Values) == 1 {
				visit(stmt.Names[0].Name, stmt.Values[0])
				return true
			}
			if len(stmt.Names) != len(stmt.Values) {
				return true
			}
			for i, ident := range stmt.Names {
				visit(ident.Name, stmt.Values[i])
			}
		}
		return true
	})
}

// collectClients records tinyapi.New / tinyapi.MustNew declarations.
func collectClients(file *ast.File, alias string, index *packageIndex) {
	if alias == "" {
		return
	}
	eachBinding(file, func(name string, value ast.Expr) {
		call, ok := value.(*ast.CallExpr)
		if !ok {
			return
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}
		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != alias {
			return
		}
		if sel.Sel.Name != "New" && sel.Sel.Name != "MustNew" {
			return
		}

		decl := &clientDecl{name: name, defaults: make(map[string]bool)}
		if len(call.Args) > 0 {
			if url, ok := stringLit(call.Args[0]); ok && url != "" {
				if base, err := tinyapi.Parse(url); err == nil {
					decl.base = base
				}
			}
		}
		if len(call.Args) > 1 {
			for _, arg := range call.Args[1:] {
				if names, ok := defaultsOption(arg, alias, "WithDefaults"); ok {
					for n := range names {
						decl.defaults[n] = true
					}
				}
			}
		}
		index.clients[name] = decl
	})
}

// collectEndpoints records endpoint declarations on previously collected
// clients: verb helpers, Endpoint, and Spec / MustSpec.
func collectEndpoints(file *ast.File, alias string, index *packageIndex) {
	eachBinding(file, func(name string, value ast.Expr) {
		call, ok := value.(*ast.CallExpr)
		if !ok {
			return
		}
		sig, recognized := endpointSignature(call, alias, index, name)
		if recognized {
			index.endpoints[name] = sig
		}
	})
}

var verbMethods = map[string]bool{
	"Get": true, "Post": true, "Put": true, "Patch": true, "Delete": true,
}

// endpointSignature classifies a call expression as an endpoint
// declaration on a known client. The second result reports whether the
// expression was an endpoint declaration at all; the signature itself is
// nil when the declaration is not statically analyzable.
func endpointSignature(call *ast.CallExpr, alias string, index *packageIndex, name string) (*Signature, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}
	receiver, ok := sel.X.(*ast.Ident)
	if !ok {
		return nil, false
	}
	client, ok := index.clients[receiver.Name]
	if !ok {
		return nil, false
	}

	var route string
	var optArgs []ast.Expr
	passthrough := make(map[string]bool)

	switch method := sel.Sel.Name; {
	case verbMethods[method]:
		lit, ok := stringLit(argAt(call, 0))
		if !ok {
			return nil, true
		}
		route = lit
		optArgs = call.Args[1:]

	case method == "Endpoint":
		lit, ok := stringLit(argAt(call, 1))
		if !ok {
			return nil, true
		}
		route = lit
		if len(call.Args) > 2 {
			optArgs = call.Args[2:]
		}

	case method == "Spec" || method == "MustSpec":
		lit, ok := stringLit(argAt(call, 0))
		if !ok {
			return nil, true
		}
		info, err := tinyapi.ParseSpecInfo(lit)
		if err != nil {
			return nil, true
		}
		route = info.Route
		optArgs = call.Args[1:]
		for _, n := range info.Passthrough {
			passthrough[n] = true
		}

	default:
		return nil, false
	}

	parsed, err := tinyapi.Parse(route)
	if err != nil {
		return nil, true
	}

	endpointDefaults := make(map[string]bool)
	for _, arg := range optArgs {
		if names, ok := defaultsOption(arg, alias, "Defaults"); ok {
			for n := range names {
				endpointDefaults[n] = true
			}
		}
		for _, n := range passthroughOption(arg, alias) {
			passthrough[n] = true
		}
	}

	return &Signature{
		Method:      name,
		Class:       client.name,
		Route:       route,
		Params:      synthesize(parsed, client.base, endpointDefaults, client.defaults),
		Passthrough: passthrough,
	}, true
}

// defaultsOption extracts the statically visible default names from a
// WithDefaults / Defaults option argument. A default is visible only when
// its key is a string literal and its value is a literal; a key with a
// computed value contributes no default, so its placeholder stays required.
func defaultsOption(arg ast.Expr, alias, optionName string) (map[string]bool, bool) {
	call, ok := libraryCall(arg, alias, optionName)
	if !ok || len(call.Args) != 1 {
		return nil, false
	}
	lit, ok := call.Args[0].(*ast.CompositeLit)
	if !ok {
		return nil, false
	}

	names := make(map[string]bool)
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := stringLit(kv.Key)
		if !ok {
			continue
		}
		if literalValue(kv.Value) {
			names[key] = true
		}
	}
	return names, true
}

// passthroughOption extracts literal names from a Passthrough(...) option.
func passthroughOption(arg ast.Expr, alias string) []string {
	call, ok := libraryCall(arg, alias, "Passthrough")
	if !ok {
		return nil
	}
	var names []string
	for _, a := range call.Args {
		if name, ok := stringLit(a); ok {
			names = append(names, name)
		}
	}
	return names
}

// libraryCall matches an expression of the form alias.Name(...).
func libraryCall(arg ast.Expr, alias, name string) (*ast.CallExpr, bool) {
	call, ok := arg.(*ast.CallExpr)
	if !ok {
		return nil, false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return nil, false
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok || pkg.Name != alias {
		return nil, false
	}
	return call, true
}

func argAt(call *ast.CallExpr, i int) ast.Expr {
	if i < len(call.Args) {
		return call.Args[i]
	}
	return nil
}

// stringLit unwraps a string literal expression.
func stringLit(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return value, true
}

// literalValue reports whether an expression is a statically visible
// default value: a basic literal, true/false, or a negated number.
func literalValue(expr ast.Expr) bool {
	switch v := expr.(type) {
	case *ast.BasicLit:
		return true
	case *ast.Ident:
		return v.Name == "true" || v.Name == "false"
	case *ast.UnaryExpr:
		_, ok := v.X.(*ast.BasicLit)
		return ok
	}
	return false
}
