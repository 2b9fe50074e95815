package tinyapi

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
)

// Response wraps a completed API call. Body always holds the raw bytes;
// Value holds the decoded form for JSON and XML endpoints (any JSON value
// after status handling and results extraction, or an *XMLNode tree).
type Response struct {
	HTTP  *http.Response // body already consumed
	Body  []byte
	Value any
}

// JSON re-decodes the raw body into dst, bypassing results extraction.
func (r *Response) JSON(dst any) error {
	return json.Unmarshal(r.Body, dst)
}

func (e *Endpoint) decodeResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tinyapi: reading response body: %w", err)
	}

	out := &Response{HTTP: resp, Body: body}

	switch e.mode {
	case decodeRaw:
		return out, nil
	case decodeXML:
		node, err := ParseXML(body)
		if err != nil {
			return nil, fmt.Errorf("tinyapi: decoding XML response: %w", err)
		}
		out.Value = node
		return out, nil
	}

	value, err := e.decodeJSONBody(resp, body)
	if err != nil {
		return nil, err
	}
	out.Value = value
	return out, nil
}

func (e *Endpoint) decodeJSONBody(resp *http.Response, body []byte) (any, error) {
	c := e.client

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyResponse
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, fmt.Errorf("tinyapi: decoding JSON response: %w", err)
	}
	if isEmptyJSON(value) {
		return nil, ErrEmptyResponse
	}

	object, ok := value.(map[string]any)
	if !ok {
		return value, nil
	}

	if status, found := object[c.statusKey]; found {
		requestURL := ""
		if resp.Request != nil {
			requestURL = resp.Request.URL.String()
		}
		c.logger.Warn().
			Str("url", requestURL).
			Interface("status", status).
			Msg("API returned a status code")
		if c.statusHandler == nil {
			return nil, &StatusError{Status: status, Body: value}
		}
		if err := c.statusHandler(status, value); err != nil {
			return nil, err
		}
	}

	if results, found := object[c.resultsKey]; found {
		return results, nil
	}
	return value, nil
}

// isEmptyJSON mirrors Python falsiness for decoded JSON values: null, empty
// object, empty array, empty string, zero and false are all empty.
func isEmptyJSON(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	}
	return false
}

// XMLNode is a generic XML element tree, the decoded form of XML endpoint
// responses.
type XMLNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []XMLNode  `xml:",any"`
}

// ParseXML decodes an XML document into a node tree.
func ParseXML(data []byte) (*XMLNode, error) {
	var root XMLNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Find returns the first child element with the given local name, or nil.
func (n *XMLNode) Find(name string) *XMLNode {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// Attr returns the value of the named attribute, or the empty string.
func (n *XMLNode) Attr(name string) string {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
