package middlewares

import (
	"context"
	"time"

	settingsController "github.com/Adi-1655/snackshub/controllers/settings"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
)

// OrderWindowMiddleware blocks order placement outside the configured
// ordering window. Maintenance mode answers 503, everything else 403.
func OrderWindowMiddleware(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	settings, err := settingsController.Load(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to load settings")
	}

	allowed, reason := settings.OrderingAllowed(time.Now())
	if !allowed {
		status := fiber.StatusForbidden
		if settings.MaintenanceMode {
			status = fiber.StatusServiceUnavailable
		}
		return responses.Error(c, status, reason)
	}

	return c.Next()
}
