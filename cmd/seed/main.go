package main

import (
	"flag"
	"fmt"
	"log"

	"go-warehouse/internal/config"
	"go-warehouse/internal/model"
	"go-warehouse/internal/repository"
	"go-warehouse/pkg/database"

	"gorm.io/gorm"
)

func main() {
	force := flag.Bool("force", false, "Clear products and categories before seeding")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌱 Starting catalog seeding")

	cfg := config.Load()
	if cfg.Database.Driver == config.DriverMemory {
		log.Fatal("The memory driver keeps no data between runs; set STORAGE_DRIVER=postgres to seed")
	}

	db := database.ConnectDB(&cfg.Database)
	if err := db.AutoMigrate(&model.Category{}, &model.Product{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *force {
		fmt.Println("⚠️  Force flag enabled. Clearing existing data...")
		// Products first, they reference categories.
		for _, table := range []string{"products", "categories"} {
			if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				log.Fatalf("Could not clear table %s: %v", table, err)
			}
			log.Printf("  Cleared table: %s", table)
		}
	}

	seeded, err := seedCatalog(repository.NewGormStore(db))
	if err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if !seeded {
		fmt.Println("Categories already exist, nothing seeded. Use -force to re-seed.")
	}

	fmt.Println("\n📊 Database Statistics:")
	showTableStats(db)
	fmt.Println("\n✨ Seeding completed successfully!")
}

func showHelp() {
	fmt.Println("Catalog Seeding Tool")
	fmt.Println("====================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run ./cmd/seed [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -force    Clear products and categories, then seed")
	fmt.Println("  -help     Show this help message")
}

func showTableStats(db *gorm.DB) {
	for _, table := range []string{"categories", "products"} {
		var count int64
		db.Table(table).Count(&count)
		fmt.Printf("  %-12s: %d rows\n", table, count)
	}
}
