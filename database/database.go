package database

import (
	"fmt"
	"log"
	"time"

	"github.com/upparakash/AspireBrandApi/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and sizes the connection pool.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("✅ Database connected")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("⚠️ Closing database: %v", err)
	}
}

// Case-insensitive uniqueness is enforced by expression indexes; their names
// follow uq_<table>_<column> so Classify can recover the offending column.
var uniqueIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_products_name ON products (LOWER(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_product_categories_category ON product_categories (LOWER(category))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_subcategories_sku ON subcategories (LOWER(sku))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_customers_email ON customers (LOWER(email))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_customers_phone ON customers (phone)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_admins_email ON admins (LOWER(email))`,
}

// Migrate creates or updates every table and the unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductCategory{},
		&models.Subcategory{},
		&models.Banner{},
		&models.Customer{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
		&models.Stock{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range uniqueIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	log.Println("✅ Migrations applied")
	return nil
}
