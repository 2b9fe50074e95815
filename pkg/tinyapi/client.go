package tinyapi

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// StatusHandler is called when a JSON response carries the client's status
// key. Returning an error aborts the call with that error; returning nil
// lets the call continue to results extraction.
type StatusHandler func(status any, body any) error

// Client holds the declaration-time configuration shared by a family of
// endpoints: the base URL template, the client-level parameter defaults and
// the transport settings. A Client is immutable after New and safe for
// concurrent use.
type Client struct {
	url           string
	baseRoute     *Route // nil when url is empty
	defaults      Params
	timeout       time.Duration
	maxRetries    int
	cookies       []*http.Cookie
	statusKey     string
	resultsKey    string
	statusHandler StatusHandler
	logger        zerolog.Logger
	transport     Transport
}

// Option configures a Client at declaration time.
type Option func(*Client)

// WithDefaults sets client-level parameter defaults. They are the lowest
// precedence scope: endpoint defaults and call parameters override them.
func WithDefaults(defaults Params) Option {
	return func(c *Client) { c.defaults = defaults.Clone() }
}

// WithTimeout sets the request timeout for the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithMaxRetries sets how many times the default transport retries a
// request after a network error.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithCookies sets cookies sent with every request.
func WithCookies(cookies ...*http.Cookie) Option {
	return func(c *Client) { c.cookies = cookies }
}

// WithStatusKey sets the JSON key checked for error status codes.
// Defaults to "status".
func WithStatusKey(key string) Option {
	return func(c *Client) { c.statusKey = key }
}

// WithResultsKey sets the JSON key unwrapped from responses.
// Defaults to "results".
func WithResultsKey(key string) Option {
	return func(c *Client) { c.resultsKey = key }
}

// WithStatusHandler sets the handler invoked when a response carries the
// status key. Without one, such responses fail with *StatusError.
func WithStatusHandler(handler StatusHandler) Option {
	return func(c *Client) { c.statusHandler = handler }
}

// WithLogger sets the client logger. The default logger discards all
// output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTransport replaces the default HTTP transport.
func WithTransport(transport Transport) Option {
	return func(c *Client) { c.transport = transport }
}

// New declares an API client. The base URL may itself be a route template,
// typically carrying a {version} placeholder:
//
//	client, err := tinyapi.New("https://example.org/api/v{version}")
//
// An empty URL is allowed; endpoints that need it fail with ErrNoURL when
// called. A malformed URL template is a declaration-time error.
func New(url string, opts ...Option) (*Client, error) {
	c := &Client{
		url:        url,
		statusKey:  "status",
		resultsKey: "results",
		logger:     zerolog.Nop(),
	}
	if url != "" {
		route, err := Parse(url)
		if err != nil {
			return nil, err
		}
		c.baseRoute = route
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(c.timeout, c.maxRetries, c.logger)
	}
	return c, nil
}

// MustNew is like New but panics on a malformed base URL template.
func MustNew(url string, opts ...Option) *Client {
	c, err := New(url, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Endpoint declares an endpoint with an arbitrary HTTP method. The route
// template is parsed immediately; a malformed template aborts the
// declaration, never the call.
func (c *Client) Endpoint(method, route string, opts ...EndpointOption) (*Endpoint, error) {
	parsed, err := Parse(route)
	if err != nil {
		return nil, err
	}
	e := &Endpoint{
		client:   c,
		method:   method,
		route:    parsed,
		defaults: Params{"version": 1},
		useBase:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// mustEndpoint backs the HTTP verb helpers, which follow the
// regexp.MustCompile convention: endpoints are declared at program start
// from literal templates, so a syntax error panics there and then.
func (c *Client) mustEndpoint(method, route string, opts []EndpointOption) *Endpoint {
	e, err := c.Endpoint(method, route, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Get declares a GET endpoint. Panics on a malformed route template.
func (c *Client) Get(route string, opts ...EndpointOption) *Endpoint {
	return c.mustEndpoint(http.MethodGet, route, opts)
}

// Post declares a POST endpoint. Panics on a malformed route template.
func (c *Client) Post(route string, opts ...EndpointOption) *Endpoint {
	return c.mustEndpoint(http.MethodPost, route, opts)
}

// Put declares a PUT endpoint. Panics on a malformed route template.
func (c *Client) Put(route string, opts ...EndpointOption) *Endpoint {
	return c.mustEndpoint(http.MethodPut, route, opts)
}

// Patch declares a PATCH endpoint. Panics on a malformed route template.
func (c *Client) Patch(route string, opts ...EndpointOption) *Endpoint {
	return c.mustEndpoint(http.MethodPatch, route, opts)
}

// Delete declares a DELETE endpoint. Panics on a malformed route template.
func (c *Client) Delete(route string, opts ...EndpointOption) *Endpoint {
	return c.mustEndpoint(http.MethodDelete, route, opts)
}

// Spec declares an endpoint from a compact spec string:
//
//	ep, err := client.Spec("GET /users/{user_id} -version=2 -xml")
func (c *Client) Spec(decl string, opts ...EndpointOption) (*Endpoint, error) {
	info, err := ParseSpecInfo(decl)
	if err != nil {
		return nil, err
	}
	specOpts := make([]EndpointOption, 0, 4+len(opts))
	if info.Version != 0 {
		specOpts = append(specOpts, Version(info.Version))
	}
	switch info.Mode {
	case "xml":
		specOpts = append(specOpts, XML())
	case "raw":
		specOpts = append(specOpts, Raw())
	}
	if info.NoBase {
		specOpts = append(specOpts, NoBase())
	}
	if len(info.Passthrough) > 0 {
		specOpts = append(specOpts, Passthrough(info.Passthrough...))
	}
	specOpts = append(specOpts, opts...)
	return c.Endpoint(info.Method, info.Route, specOpts...)
}

// MustSpec is like Spec but panics on a malformed spec string.
func (c *Client) MustSpec(decl string, opts ...EndpointOption) *Endpoint {
	e, err := c.Spec(decl, opts...)
	if err != nil {
		panic(err)
	}
	return e
}
