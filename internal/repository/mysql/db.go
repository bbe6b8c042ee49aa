package mysql

import (
	"log"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/lukpoex/next-commerce/internal/config"
	"github.com/lukpoex/next-commerce/internal/datamodels/category"
	"github.com/lukpoex/next-commerce/internal/datamodels/order"
	"github.com/lukpoex/next-commerce/internal/datamodels/product"
	"github.com/lukpoex/next-commerce/internal/datamodels/user"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Init opens the global GORM handle and migrates the schema.
func Init(cfg *config.MySQLConfig) *gorm.DB {
	once.Do(func() {
		var err error
		db, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}

		if err = Migrate(db); err != nil {
			log.Fatalf("auto migrate failed: %v", err)
		}
	})
	return db
}

// DB returns the global handle.
func DB() *gorm.DB {
	return db
}

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&category.Subcategory{},
		&product.Product{},
		&product.Image{},
		&product.Variant{},
		&product.Favorite{},
		&product.Review{},
		&order.Order{},
		&order.Item{},
	)
}
