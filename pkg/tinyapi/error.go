package tinyapi

import (
	"errors"
	"fmt"
)

// ErrNoURL is returned when an endpoint that needs the client base URL is
// called on a client declared without one.
var ErrNoURL = errors.New("tinyapi: client has no URL declared")

// ErrEmptyResponse is returned when a JSON endpoint receives an empty or
// null response body.
var ErrEmptyResponse = errors.New("tinyapi: empty response from API")

// TemplateSyntaxError reports a malformed route template. It is raised at
// declaration time, when the endpoint is registered, never at call time.
type TemplateSyntaxError struct {
	Template string
	Offset   int
	Reason   string
}

// Error implements the error interface.
func (e *TemplateSyntaxError) Error() string {
	return fmt.Sprintf("tinyapi: template %q: %s at offset %d", e.Template, e.Reason, e.Offset)
}

// SpecSyntaxError reports a malformed endpoint spec string passed to
// Client.Spec.
type SpecSyntaxError struct {
	Spec   string
	Reason string
}

// Error implements the error interface.
func (e *SpecSyntaxError) Error() string {
	return fmt.Sprintf("tinyapi: spec %q: %s", e.Spec, e.Reason)
}

// StatusError is returned when a JSON response carries the client's status
// key and no status handler is configured.
type StatusError struct {
	Status any // value found under the client's status key
	Body   any // full decoded response body
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("tinyapi: server responded with an error code: %v", e.Status)
}
