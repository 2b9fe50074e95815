package adapters

import (
	"github.com/labstack/echo/v4"
)

// EchoPath converts a route template to echo route syntax:
// /users/{user_id} becomes /users/:user_id.
func EchoPath(route string) (string, error) {
	return colonPath(route)
}

// MountEcho registers a handler on an echo router under the converted
// route. The template is validated the same way endpoint declarations are.
func MountEcho(e *echo.Echo, method, route string, handler echo.HandlerFunc) error {
	path, err := EchoPath(route)
	if err != nil {
		return err
	}
	e.Add(method, path, handler)
	return nil
}
