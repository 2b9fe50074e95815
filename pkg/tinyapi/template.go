// Package tinyapi is the short and sweet way to declare an API client.
//
// A client is declared once with a base URL, endpoints are declared once
// with a route template, and calls supply route parameters by name:
//
//	client := tinyapi.MustNew("https://example.org/api/v{version}")
//	fetchProfile := client.Get("/profile/{user_id}")
//
//	profile, err := fetchProfile.Call(ctx, tinyapi.Params{"user_id": "peterparker"})
//
// Route templates use {name} placeholders. Placeholder values are resolved
// from three layers: client defaults, endpoint defaults, and call
// parameters, with call parameters taking precedence.
package tinyapi

import (
	"fmt"
	"sync"
)

// PartType represents the type of a route template part.
type PartType int

const (
	StaticPart PartType = iota
	ParamPart
)

// Part is a single segment of a tokenized route template: either a run of
// literal text or a {name} placeholder.
type Part struct {
	Type  PartType
	Value string // literal text for static parts, parameter name for params
}

// RouteTemplate is a literal path template containing zero or more {name}
// placeholders.
type RouteTemplate string

// Raw returns the original template string.
func (t RouteTemplate) Raw() string {
	return string(t)
}

// Route is the parsed, immutable form of a RouteTemplate. Routes are cached
// process-wide by template string and are safe for concurrent use.
type Route struct {
	template RouteTemplate
	parts    []Part
	names    []string // distinct placeholder names, first-occurrence order
}

// Template returns the template the route was parsed from.
func (r *Route) Template() RouteTemplate {
	return r.template
}

// Parts returns the tokenized parts of the route. The returned slice is
// shared and must not be modified.
func (r *Route) Parts() []Part {
	return r.parts
}

// Placeholders returns the distinct placeholder names in first-occurrence
// order. The returned slice is shared and must not be modified.
func (r *Route) Placeholders() []string {
	return r.names
}

// HasPlaceholder reports whether name appears in the route template.
func (r *Route) HasPlaceholder(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

var routeCache = struct {
	sync.RWMutex
	routes map[string]*Route
}{routes: make(map[string]*Route)}

// Parse tokenizes a route template. Results are cached by template string;
// parsing the same template twice returns the identical *Route. A malformed
// template (unbalanced braces, empty or invalid placeholder name) returns a
// *TemplateSyntaxError.
func Parse(template string) (*Route, error) {
	routeCache.RLock()
	cached, ok := routeCache.routes[template]
	routeCache.RUnlock()
	if ok {
		return cached, nil
	}

	parts, err := tokenize(template)
	if err != nil {
		return nil, err
	}

	route := &Route{
		template: RouteTemplate(template),
		parts:    parts,
	}
	seen := make(map[string]bool)
	for _, p := range parts {
		if p.Type == ParamPart && !seen[p.Value] {
			seen[p.Value] = true
			route.names = append(route.names, p.Value)
		}
	}

	routeCache.Lock()
	if existing, ok := routeCache.routes[template]; ok {
		// Another goroutine won the race; keep the first entry so the
		// "same template, same *Route" property holds.
		route = existing
	} else {
		routeCache.routes[template] = route
	}
	routeCache.Unlock()

	return route, nil
}

// MustParse is like Parse but panics on a malformed template. Intended for
// package-level endpoint declarations.
func MustParse(template string) *Route {
	route, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return route
}

// tokenize splits a template into static and placeholder parts. This is the
// single grammar shared by the runtime resolver and the static checker in
// internal/lint; both layers must tokenize templates through this function.
func tokenize(template string) ([]Part, error) {
	var parts []Part

	i := 0
	for i < len(template) {
		switch template[i] {
		case '{':
			j := i + 1
			for j < len(template) && template[j] != '}' {
				if template[j] == '{' {
					return nil, &TemplateSyntaxError{
						Template: template,
						Offset:   j,
						Reason:   "nested '{' inside placeholder",
					}
				}
				j++
			}
			if j == len(template) {
				return nil, &TemplateSyntaxError{
					Template: template,
					Offset:   i,
					Reason:   "unclosed '{'",
				}
			}
			name := template[i+1 : j]
			if name == "" {
				return nil, &TemplateSyntaxError{
					Template: template,
					Offset:   i,
					Reason:   "empty placeholder name",
				}
			}
			if !isIdentifier(name) {
				return nil, &TemplateSyntaxError{
					Template: template,
					Offset:   i + 1,
					Reason:   fmt.Sprintf("invalid placeholder name %q", name),
				}
			}
			parts = append(parts, Part{Type: ParamPart, Value: name})
			i = j + 1
		case '}':
			return nil, &TemplateSyntaxError{
				Template: template,
				Offset:   i,
				Reason:   "unmatched '}'",
			}
		default:
			start := i
			for i < len(template) && template[i] != '{' && template[i] != '}' {
				i++
			}
			parts = append(parts, Part{Type: StaticPart, Value: template[start:i]})
		}
	}

	return parts, nil
}

// isIdentifier reports whether s is a valid placeholder name: a letter or
// underscore followed by letters, digits or underscores.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
