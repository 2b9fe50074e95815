// Package lint statically checks tinyapi call sites. It synthesizes a call
// signature for every endpoint declaration from the literal route template
// and the statically visible parameter defaults, then validates the keyword
// parameters supplied at each call site against that signature.
//
// The checker shares the template tokenizer and the spec grammar with the
// runtime (pkg/tinyapi), so the two layers cannot disagree on what counts
// as a placeholder.
package lint

import (
	"fmt"
	"go/token"
)

// Kind classifies a static finding.
type Kind int

const (
	// MissingNamedArgument is reported for every required placeholder
	// absent from a call site.
	MissingNamedArgument Kind = iota
	// UnexpectedKeywordArgument is reported for every supplied name that
	// is neither a placeholder nor a declared passthrough parameter.
	UnexpectedKeywordArgument
)

// String returns the finding kind name.
func (k Kind) String() string {
	switch k {
	case MissingNamedArgument:
		return "MissingNamedArgument"
	case UnexpectedKeywordArgument:
		return "UnexpectedKeywordArgument"
	}
	return "UnknownFinding"
}

// Finding is a single static diagnostic. Findings never affect runtime
// behavior; the runtime resolver stays permissive regardless of what the
// checker reports.
type Finding struct {
	Kind   Kind
	Name   string // offending parameter name
	Method string // endpoint identifier at the declaration site
	Class  string // client identifier at the declaration site
	Pos    token.Position
}

// Message renders the diagnostic in the standard format.
func (f Finding) Message() string {
	switch f.Kind {
	case MissingNamedArgument:
		return fmt.Sprintf("Missing named argument %q for %q of %q", f.Name, f.Method, f.Class)
	case UnexpectedKeywordArgument:
		return fmt.Sprintf("Unexpected keyword argument %q for %q of %q", f.Name, f.Method, f.Class)
	}
	return fmt.Sprintf("unknown finding for %q", f.Name)
}

// String renders the diagnostic with its source position.
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Pos, f.Message())
}
