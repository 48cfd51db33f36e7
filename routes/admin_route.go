package routes

import (
	adminController "github.com/Adi-1655/snackshub/controllers/admin"
	"github.com/Adi-1655/snackshub/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middlewares.AuthMiddleware, middlewares.AdminMiddleware)

	admin.Get("/stats", adminController.GetDashboardStats)

	admin.Get("/orders", adminController.GetAllOrders)
	admin.Put("/orders/:id/status", adminController.UpdateOrderStatus)

	admin.Post("/products", adminController.CreateProduct)
	admin.Get("/products/low-stock", adminController.GetLowStockProducts)
	admin.Put("/products/:id", adminController.UpdateProduct)
	admin.Delete("/products/:id", adminController.DeleteProduct)

	admin.Get("/logs", adminController.GetAdminLogs)
	admin.Get("/sales-report/:range", adminController.GetSalesReport)
}
