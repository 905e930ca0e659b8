package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse/internal/config"
	"go-warehouse/internal/handler"
	"go-warehouse/internal/model"
	"go-warehouse/internal/repository"
	"go-warehouse/internal/service"
	"go-warehouse/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	// 2. Setup storage
	store := setupStore(&cfg.Database)

	// 3. Wiring layers
	categoryService := service.NewCategoryService(store)
	productService := service.NewProductService(store)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Warehouse Catalog v1.0",
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CORSOrigins,
	}))

	// 5. Routes
	handler.SetupRoutes(app, categoryHandler, productHandler)

	// 6. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func setupStore(cfg *config.DatabaseConfig) repository.Store {
	if cfg.Driver == config.DriverMemory {
		log.Println("Using in-memory storage, data is lost on exit")
		return repository.NewMemoryStore()
	}

	db := database.ConnectDB(cfg)
	// AutoMigrate keeps the two tables in step with the models.
	if err := db.AutoMigrate(&model.Category{}, &model.Product{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	return repository.NewGormStore(db)
}
