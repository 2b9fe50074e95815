package tinyapi

import (
	"fmt"
	"strings"
)

// ResolvedRoute is the result of substituting a merged parameter mapping
// into a route template: the finished path plus the residual parameters
// that did not match any placeholder. Residual parameters belong to the
// transport and are forwarded unchanged.
type ResolvedRoute struct {
	Path     string
	Residual Params
}

// Resolve substitutes every placeholder occurrence with its value from the
// merged mapping. Placeholders with no value resolve to the empty string;
// resolution never fails. Missing route parameters are a static-analysis
// concern (see internal/lint), not a runtime one. Do not turn this into an
// error.
func (r *Route) Resolve(merged Params) ResolvedRoute {
	var path strings.Builder
	for _, part := range r.parts {
		switch part.Type {
		case StaticPart:
			path.WriteString(part.Value)
		case ParamPart:
			if value, ok := merged[part.Value]; ok {
				path.WriteString(paramString(value))
			}
		}
	}

	residual := make(Params)
	for key, value := range merged {
		if !r.HasPlaceholder(key) {
			residual[key] = value
		}
	}

	return ResolvedRoute{Path: path.String(), Residual: residual}
}

// paramString renders a placeholder value for URL substitution. Placeholder
// values are always treated as strings.
func paramString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
