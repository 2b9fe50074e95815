package tinyapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Request is the finished product of route resolution, handed to the
// transport collaborator: the method, the resolved URL, the residual
// parameters that matched no placeholder and the endpoint's declaration-time
// request options.
type Request struct {
	Method  string
	URL     string
	Params  Params         // residual parameters; interpretation belongs to the transport
	Options map[string]any // opaque declaration-time options
	Cookies []*http.Cookie
}

// Transport performs the actual HTTP exchange. The core never inspects the
// response beyond decoding; retries, pooling and timeouts all live here.
type Transport interface {
	RoundTrip(ctx context.Context, req Request) (*http.Response, error)
}

// HTTPTransport is the default Transport, backed by net/http. Residual
// parameters are encoded as query string values. Every request carries a
// generated X-Request-ID header. Network errors are retried up to
// MaxRetries times.
type HTTPTransport struct {
	Client     *http.Client
	MaxRetries int

	logger zerolog.Logger
}

// NewHTTPTransport creates the default transport. A zero timeout means no
// timeout.
func NewHTTPTransport(timeout time.Duration, maxRetries int, logger zerolog.Logger) *HTTPTransport {
	return &HTTPTransport{
		Client:     &http.Client{Timeout: timeout},
		MaxRetries: maxRetries,
		logger:     logger,
	}
}

// RoundTrip implements Transport.
func (t *HTTPTransport) RoundTrip(ctx context.Context, req Request) (*http.Response, error) {
	target, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("tinyapi: invalid request URL %q: %w", req.URL, err)
	}

	if len(req.Params) > 0 {
		query := target.Query()
		for key, value := range req.Params {
			query.Set(key, paramString(value))
		}
		target.RawQuery = query.Encode()
	}

	body, contentType, headers := t.splitOptions(req.Options)
	requestID := uuid.NewString()

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("tinyapi: building request: %w", err)
		}
		httpReq.Header.Set("X-Request-ID", requestID)
		if contentType != "" {
			httpReq.Header.Set("Content-Type", contentType)
		}
		for key, value := range headers {
			httpReq.Header.Set(key, value)
		}
		for _, cookie := range req.Cookies {
			httpReq.AddCookie(cookie)
		}

		resp, err = t.Client.Do(httpReq)
		if err == nil {
			return resp, nil
		}
		if attempt >= t.MaxRetries || ctx.Err() != nil {
			return nil, fmt.Errorf("tinyapi: request to %s failed: %w", target, err)
		}
		t.logger.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Str("url", target.String()).
			Msg("retrying request after network error")
	}
}

// splitOptions extracts the request options the default transport
// understands: "body" (string or []byte), "content_type" and "headers"
// (map[string]string). Unknown keys are ignored.
func (t *HTTPTransport) splitOptions(options map[string]any) (body []byte, contentType string, headers map[string]string) {
	for key, value := range options {
		switch key {
		case "body":
			switch v := value.(type) {
			case []byte:
				body = v
			case string:
				body = []byte(v)
			}
		case "content_type":
			if v, ok := value.(string); ok {
				contentType = v
			}
		case "headers":
			if v, ok := value.(map[string]string); ok {
				headers = v
			}
		default:
			t.logger.Debug().Str("option", key).Msg("ignoring unknown request option")
		}
	}
	return body, contentType, headers
}
