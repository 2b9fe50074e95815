package adapters

import (
	"github.com/gofiber/fiber/v2"
)

// FiberPath converts a route template to fiber route syntax:
// /users/{user_id} becomes /users/:user_id.
func FiberPath(route string) (string, error) {
	return colonPath(route)
}

// MountFiber registers a handler on a fiber app under the converted route.
func MountFiber(app *fiber.App, method, route string, handler fiber.Handler) error {
	path, err := FiberPath(route)
	if err != nil {
		return err
	}
	app.Add(method, path, handler)
	return nil
}
