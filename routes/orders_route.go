package routes

import (
	orderController "github.com/Adi-1655/snackshub/controllers/orders"
	"github.com/Adi-1655/snackshub/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	app.Post("/api/orders", middlewares.AuthMiddleware, middlewares.OrderWindowMiddleware, orderController.CreateOrder)
	app.Get("/api/orders", middlewares.AuthMiddleware, orderController.GetOrders)
	app.Get("/api/orders/:id", middlewares.AuthMiddleware, orderController.GetOrder)
	app.Put("/api/orders/:id/cancel", middlewares.AuthMiddleware, orderController.CancelOrder)
	app.Post("/api/orders/:id/verify-payment", middlewares.AuthMiddleware, orderController.VerifyPayment)
	app.Delete("/api/orders/:id", middlewares.AuthMiddleware, orderController.DeleteOrder)
}
