package main

import (
	"log"

	"github.com/Adi-1655/snackshub/configs"
	"github.com/Adi-1655/snackshub/middlewares"
	"github.com/Adi-1655/snackshub/routes"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middlewares.PrometheusMiddleware)

	configs.ConnectDB()

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "Server is running"})
	})

	routes.AuthRoutes(app)
	routes.ProductsRoutes(app)
	routes.SettingsRoutes(app)
	routes.OrderRoutes(app)
	routes.AdminRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})

	if err := app.Listen(":" + configs.EnvPort()); err != nil {
		log.Fatal(err)
	}
}
