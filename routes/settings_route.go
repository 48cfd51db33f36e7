package routes

import (
	settingsController "github.com/Adi-1655/snackshub/controllers/settings"
	"github.com/Adi-1655/snackshub/middlewares"

	"github.com/gofiber/fiber/v2"
)

func SettingsRoutes(app *fiber.App) {
	app.Get("/api/settings", settingsController.GetSettings)
	app.Get("/api/settings/check-ordering", settingsController.CheckOrdering)
	app.Put("/api/settings", middlewares.AuthMiddleware, middlewares.AdminMiddleware, settingsController.UpdateSettings)
}
