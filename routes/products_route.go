package routes

import (
	productsController "github.com/Adi-1655/snackshub/controllers/products"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoutes(app *fiber.App) {
	app.Get("/api/products", productsController.GetProducts)
	app.Get("/api/products/categories/list", productsController.GetCategories)
	app.Get("/api/products/:id", productsController.GetProduct)
}
