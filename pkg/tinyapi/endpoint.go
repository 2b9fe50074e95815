package tinyapi

import (
	"context"
	"strings"
)

type decodeMode int

const (
	decodeJSON decodeMode = iota // default
	decodeXML
	decodeRaw
)

// Endpoint is a declared API operation: an HTTP method, a parsed route
// template and the endpoint-level parameter defaults. Endpoints are
// immutable after declaration and safe for concurrent calls.
type Endpoint struct {
	client      *Client
	method      string
	route       *Route
	defaults    Params
	mode        decodeMode
	useBase     bool
	passthrough []string
	reqOptions  map[string]any
}

// EndpointOption configures an endpoint at declaration time.
type EndpointOption func(*Endpoint)

// Version sets the value substituted for the {version} placeholder of the
// client base URL. Endpoints default to version 1.
func Version(v int) EndpointOption {
	return func(e *Endpoint) { e.defaults["version"] = v }
}

// Defaults sets endpoint-level parameter defaults. They override client
// defaults and are overridden by call parameters.
func Defaults(defaults Params) EndpointOption {
	return func(e *Endpoint) {
		for k, v := range defaults {
			e.defaults[k] = v
		}
	}
}

// JSON selects JSON response decoding. This is the default.
func JSON() EndpointOption {
	return func(e *Endpoint) { e.mode = decodeJSON }
}

// XML selects XML response decoding into a generic *XMLNode tree.
func XML() EndpointOption {
	return func(e *Endpoint) { e.mode = decodeXML }
}

// Raw disables response decoding; Call returns the raw body only.
func Raw() EndpointOption {
	return func(e *Endpoint) { e.mode = decodeRaw }
}

// NoBase declares the route as a full URL, skipping the client base URL.
func NoBase() EndpointOption {
	return func(e *Endpoint) { e.useBase = false }
}

// Passthrough declares extra parameter names the endpoint accepts besides
// its route placeholders. They are forwarded to the transport like any
// residual parameter; declaring them keeps the static checker from
// flagging them as unexpected.
func Passthrough(names ...string) EndpointOption {
	return func(e *Endpoint) { e.passthrough = append(e.passthrough, names...) }
}

// RequestOptions attaches declaration-time transport options, passed
// untouched to the transport with every call. The default transport
// understands "headers", "body" and "content_type".
func RequestOptions(options map[string]any) EndpointOption {
	return func(e *Endpoint) { e.reqOptions = options }
}

// Method returns the endpoint's HTTP method.
func (e *Endpoint) Method() string {
	return e.method
}

// Route returns the endpoint's parsed route.
func (e *Endpoint) Route() *Route {
	return e.route
}

// Call resolves the route against the merged parameter scopes, performs the
// request through the client transport and decodes the response.
//
// Placeholders with no value in any scope resolve to the empty string; the
// call is never rejected for missing route parameters. Parameters that
// match no placeholder are handed to the transport unchanged.
func (e *Endpoint) Call(ctx context.Context, params Params) (*Response, error) {
	c := e.client
	if e.useBase && c.baseRoute == nil {
		return nil, ErrNoURL
	}

	merged := MergeScopes(c.defaults, e.defaults, params)

	resolved := e.route.Resolve(merged)
	url := resolved.Path
	residual := resolved.Residual
	if e.useBase {
		base := c.baseRoute.Resolve(merged)
		url = base.Path + url
		for _, name := range c.baseRoute.Placeholders() {
			delete(residual, name)
		}
	}
	// version is a conventional placeholder owned by declarations; it never
	// travels to the transport, whether or not a template consumed it.
	delete(residual, "version")
	// One trailing slash is trimmed, not all of them.
	url = strings.TrimSuffix(url, "/")

	c.logger.Debug().
		Str("method", e.method).
		Str("url", url).
		Msg("calling API endpoint")

	resp, err := c.transport.RoundTrip(ctx, Request{
		Method:  e.method,
		URL:     url,
		Params:  residual,
		Options: e.reqOptions,
		Cookies: c.cookies,
	})
	if err != nil {
		return nil, err
	}

	return e.decodeResponse(resp)
}
