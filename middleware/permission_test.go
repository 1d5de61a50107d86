package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func guardedApp(requiredPermission string, userID interface{}, role string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", func(c *fiber.Ctx) error {
		if userID != nil {
			c.Locals("userId", userID)
		}
		if role != "" {
			c.Locals("role", role)
		}
		return c.Next()
	}, CheckPermissionMiddleware(requiredPermission), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestCheckPermissionRejectsMissingUser(t *testing.T) {
	app := guardedApp("manage-content", nil, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestCheckPermissionAdminHoldsEveryPermission(t *testing.T) {
	app := guardedApp("manage-tenants", uint(1), "ADMIN")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}
