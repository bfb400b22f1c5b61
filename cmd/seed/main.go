package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dovietdong/WebApiBase/internal/config"
	"github.com/dovietdong/WebApiBase/internal/db"
	"github.com/dovietdong/WebApiBase/internal/model"
	"github.com/dovietdong/WebApiBase/internal/repository"
)

// sampleProducts is the fixed catalog loaded by the seed script.
var sampleProducts = []model.Product{
	{Name: "Laptop", Description: "14-inch ultrabook, 16GB RAM", Price: decimal.NewFromFloat(1299.99), Stock: 12},
	{Name: "Wireless Mouse", Description: "Ergonomic, 2.4GHz receiver", Price: decimal.NewFromFloat(24.50), Stock: 150},
	{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: decimal.NewFromFloat(89.00), Stock: 60},
	{Name: "USB-C Hub", Description: "7-in-1 with HDMI and card reader", Price: decimal.NewFromFloat(39.90), Stock: 85},
	{Name: "Monitor", Description: "27-inch 1440p IPS", Price: decimal.NewFromFloat(329.00), Stock: 20},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	productRepo := repository.NewProductRepository(gormDB)
	ctx := context.Background()

	created, updated, err := seedProducts(ctx, productRepo, sampleProducts)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - New products created: %d", created)
	log.Printf("  - Existing products updated: %d", updated)
}

// seedProducts upserts the sample catalog by product id, so re-running the
// script refreshes rather than duplicates.
func seedProducts(ctx context.Context, repo repository.ProductRepository, products []model.Product) (created int, updated int, err error) {
	for i := range products {
		product := products[i]
		product.ID = uint(i + 1)

		existing, err := repo.FindByID(ctx, product.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, err
		}

		if existing != nil {
			fields := map[string]interface{}{
				"name":        product.Name,
				"description": product.Description,
				"price":       product.Price,
				"stock":       product.Stock,
			}
			if err := repo.UpdateFields(ctx, product.ID, fields); err != nil {
				return created, updated, err
			}
			updated++
		} else {
			if err := repo.Create(ctx, &product); err != nil {
				return created, updated, err
			}
			created++
		}
	}
	return created, updated, nil
}
