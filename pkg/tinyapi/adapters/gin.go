package adapters

import (
	"github.com/gin-gonic/gin"
)

// GinPath converts a route template to gin route syntax:
// /users/{user_id} becomes /users/:user_id.
func GinPath(route string) (string, error) {
	return colonPath(route)
}

// MountGin registers a handler on a gin engine under the converted route.
func MountGin(engine *gin.Engine, method, route string, handler gin.HandlerFunc) error {
	path, err := GinPath(route)
	if err != nil {
		return err
	}
	engine.Handle(method, path, handler)
	return nil
}
