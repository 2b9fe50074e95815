// Package adapters converts tinyapi route templates to the route syntax of
// common Go web frameworks and mounts handlers on them. The typical use is
// serving a stub of the API a client targets, from the same templates the
// client declares.
package adapters

import (
	"fmt"

	"github.com/sanjacob/tiny-api-client/pkg/tinyapi"
)

// colonPath converts a route template to the ":name" parameter syntax
// shared by echo, gin and fiber. It goes through the same tokenizer as the
// runtime resolver, so a template that resolves also mounts.
func colonPath(route string) (string, error) {
	parsed, err := tinyapi.Parse(route)
	if err != nil {
		return "", err
	}

	var path string
	for _, part := range parsed.Parts() {
		switch part.Type {
		case tinyapi.StaticPart:
			path += part.Value
		case tinyapi.ParamPart:
			path += ":" + part.Value
		}
	}
	if path == "" {
		return "", fmt.Errorf("adapters: empty route %q", route)
	}
	return path, nil
}
