package handler

import (
	"go-warehouse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the REST surface under /api.
func SetupRoutes(app *fiber.App, categories *CategoryHandler, products *ProductHandler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Category Routes
	api.Get("/categories", categories.GetCategories)
	api.Post("/categories", middleware.ValidateBody(middleware.CategoryRules()), categories.CreateCategory)
	api.Get("/categories/:id", categories.GetCategory)
	api.Put("/categories/:id", middleware.ValidateBody(middleware.CategoryRules()), categories.UpdateCategory)
	api.Delete("/categories/:id", categories.DeleteCategory)

	// Product Routes
	api.Get("/products", products.GetProducts)
	api.Post("/products", middleware.ValidateBody(middleware.ProductRules()), products.CreateProduct)
	api.Get("/products/:id", products.GetProduct)
	api.Put("/products/:id", middleware.ValidateBody(middleware.ProductRules()), products.UpdateProduct)
	api.Delete("/products/:id", products.DeleteProduct)

	// Anything else under the app is an unknown route
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
