package adapters

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMountFiber(t *testing.T) {
	app := fiber.New()

	err := MountFiber(app, http.MethodGet, "/users/{user_id}", func(c *fiber.Ctx) error {
		return c.SendString(c.Params("user_id"))
	})
	if err != nil {
		t.Fatalf("MountFiber returned error: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "/users/peterparker", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "peterparker" {
		t.Errorf("expected body %q, got %q", "peterparker", string(body))
	}
}

func TestMountFiber_MalformedTemplate(t *testing.T) {
	app := fiber.New()

	err := MountFiber(app, http.MethodGet, "/users/{user_id", func(c *fiber.Ctx) error { return nil })
	if err == nil {
		t.Error("expected error for malformed template")
	}
}
