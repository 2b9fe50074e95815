package lint

import (
	"github.com/sanjacob/tiny-api-client/pkg/tinyapi"
)

// Param is one synthesized keyword parameter of an endpoint.
type Param struct {
	Name     string
	Required bool
	Position int // order of first appearance in the template
}

// Signature is the synthetic call signature of one endpoint declaration.
// It exists only during analysis and is derived purely from source text:
// the literal route template plus the statically visible defaults of the
// endpoint and client declarations.
type Signature struct {
	Method      string // endpoint identifier
	Class       string // client identifier
	Route       string
	Params      []Param
	Passthrough map[string]bool // names declared via Passthrough(...)
}

// Param looks up a synthesized parameter by name.
func (s *Signature) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Accepts reports whether a supplied name is legal for this endpoint.
// "version" is always legal: the runtime seeds it into every endpoint's
// defaults and strips it before transport, whether or not a template
// mentions it.
func (s *Signature) Accepts(name string) bool {
	if name == "version" {
		return true
	}
	if _, ok := s.Param(name); ok {
		return true
	}
	return s.Passthrough[name]
}

// synthesize builds the parameter list for an endpoint. A placeholder is
// optional if and only if a statically visible default exists for it at the
// endpoint or client declaration site; otherwise it is required. This is
// the single rule, for one placeholder or many. The runtime implicitly
// defaults "version" to 1, so version placeholders are always optional.
//
// Placeholders of the client base URL template participate too: the caller
// may supply them by name, and they are required under the same rule.
func synthesize(route, base *tinyapi.Route, endpointDefaults, clientDefaults map[string]bool) []Param {
	var params []Param
	seen := make(map[string]bool)

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		optional := name == "version" || endpointDefaults[name] || clientDefaults[name]
		params = append(params, Param{
			Name:     name,
			Required: !optional,
			Position: len(params),
		})
	}

	for _, name := range route.Placeholders() {
		add(name)
	}
	if base != nil {
		for _, name := range base.Placeholders() {
			add(name)
		}
	}

	return params
}
