package routes

import (
	authController "github.com/Adi-1655/snackshub/controllers/auth"
	"github.com/Adi-1655/snackshub/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", middlewares.AuthMiddleware, authController.GetMe)
	app.Put("/api/auth/profile", middlewares.AuthMiddleware, authController.UpdateProfile)
}
