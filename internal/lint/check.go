package lint

import (
	"go/ast"
	"go/token"
)

// checkCall reports the diagnostics for one Call site. Diagnostics are
// batched: every missing required name is reported (in template order),
// then every unexpected name (in the order supplied), with no
// short-circuiting after the first problem.
func checkCall(call *ast.CallExpr, alias string, index *packageIndex, fset *token.FileSet) []Finding {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Call" {
		return nil
	}

	sig, ok := callTarget(sel.X, alias, index)
	if !ok || sig == nil {
		return nil
	}

	supplied, positions, analyzable := suppliedNames(call, alias)
	if !analyzable {
		return nil
	}

	suppliedSet := make(map[string]bool, len(supplied))
	for _, name := range supplied {
		suppliedSet[name] = true
	}

	var findings []Finding
	for _, param := range sig.Params {
		if param.Required && !suppliedSet[param.Name] {
			findings = append(findings, Finding{
				Kind:   MissingNamedArgument,
				Name:   param.Name,
				Method: sig.Method,
				Class:  sig.Class,
				Pos:    fset.Position(call.Pos()),
			})
		}
	}
	for i, name := range supplied {
		if !sig.Accepts(name) {
			findings = append(findings, Finding{
				Kind:   UnexpectedKeywordArgument,
				Name:   name,
				Method: sig.Method,
				Class:  sig.Class,
				Pos:    fset.Position(positions[i]),
			})
		}
	}
	return findings
}

// callTarget resolves the receiver of a .Call(...) to an endpoint
// signature: either a previously collected endpoint identifier, or an
// inline declaration such as client.Get("/x/{id}").Call(...). For inline
// declarations the route template stands in for the method name.
func callTarget(expr ast.Expr, alias string, index *packageIndex) (*Signature, bool) {
	switch receiver := expr.(type) {
	case *ast.Ident:
		sig, ok := index.endpoints[receiver.Name]
		return sig, ok
	case *ast.CallExpr:
		sig, ok := endpointSignature(receiver, alias, index, "")
		if ok && sig != nil {
			sig.Method = sig.Route
		}
		return sig, ok
	}
	return nil, false
}

// suppliedNames extracts the keyword-argument names from the Params literal
// of a call site. A call site whose params are not a literal, or that uses
// computed keys, cannot be checked and is skipped entirely rather than
// half-reported.
func suppliedNames(call *ast.CallExpr, alias string) (names []string, positions []token.Pos, analyzable bool) {
	if len(call.Args) < 2 {
		return nil, nil, false
	}

	switch arg := call.Args[1].(type) {
	case *ast.Ident:
		if arg.Name == "nil" {
			return nil, nil, true
		}
		return nil, nil, false
	case *ast.CompositeLit:
		if !isParamsLiteral(arg, alias) {
			return nil, nil, false
		}
		for _, elt := range arg.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				return nil, nil, false
			}
			key, ok := stringLit(kv.Key)
			if !ok {
				return nil, nil, false
			}
			names = append(names, key)
			positions = append(positions, kv.Key.Pos())
		}
		return names, positions, true
	}
	return nil, nil, false
}

// isParamsLiteral matches a composite literal of type alias.Params.
func isParamsLiteral(lit *ast.CompositeLit, alias string) bool {
	sel, ok := lit.Type.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Params" {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == alias
}
