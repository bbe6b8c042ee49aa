// Seeds a local database with an admin account, categories and a dozen
// demo products so the storefront and dashboard have something to show.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/lukpoex/next-commerce/internal/config"
	"github.com/lukpoex/next-commerce/internal/datamodels/category"
	"github.com/lukpoex/next-commerce/internal/datamodels/order"
	"github.com/lukpoex/next-commerce/internal/datamodels/product"
	"github.com/lukpoex/next-commerce/internal/datamodels/user"
	"github.com/lukpoex/next-commerce/internal/repository/mysql"
)

func cents(v int64) *int64 { return &v }

func main() {
	configPath := flag.String("config", "", "path to config file (yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := mysql.Init(&cfg.MySQL)
	ctx := context.Background()

	users := mysql.NewUserRepository(db)
	categories := mysql.NewCategoryRepository(db)
	products := mysql.NewProductRepository(db)
	orders := mysql.NewOrderRepository(db)

	// Admin account (password: admin123).
	sum := sha256.Sum256([]byte("admin123" + "seed-salt"))
	admin := &user.User{
		Email:    "admin@next-commerce.local",
		Password: hex.EncodeToString(sum[:]),
		Salt:     "seed-salt",
		Role:     user.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Printf("admin user: %v (already seeded?)", err)
	}

	for _, name := range []string{"Shoes", "Bags", "Clothing", "Accessories"} {
		if err := categories.CreateCategory(ctx, &category.Category{Name: name}); err != nil {
			log.Printf("category %s: %v", name, err)
		}
	}
	for _, name := range []string{"Sneakers", "Boots", "Backpacks", "Totes", "Jackets", "T-Shirts", "Watches", "Belts"} {
		if err := categories.CreateSubcategory(ctx, &category.Subcategory{Name: name}); err != nil {
			log.Printf("subcategory %s: %v", name, err)
		}
	}

	seed := []*product.Product{
		{Brand: "Nike", Name: "Air Zoom Pegasus", Slug: "nike-air-zoom-pegasus", Color: "Black", CurrentPrice: 12900, DiscountPrice: cents(9900), TotalQuantity: 40, CategoryID: 1, SubcategoryID: 1},
		{Brand: "Adidas", Name: "Ultraboost Light", Slug: "adidas-ultraboost-light", Color: "White", CurrentPrice: 18900, TotalQuantity: 25, CategoryID: 1, SubcategoryID: 1},
		{Brand: "Dr. Martens", Name: "1460 Smooth", Slug: "dr-martens-1460-smooth", Color: "Black", CurrentPrice: 16900, TotalQuantity: 18, CategoryID: 1, SubcategoryID: 2},
		{Brand: "Herschel", Name: "Little America", Slug: "herschel-little-america", Color: "Navy", CurrentPrice: 10900, DiscountPrice: cents(8900), TotalQuantity: 30, CategoryID: 2, SubcategoryID: 3},
		{Brand: "Fjallraven", Name: "Kanken Classic", Slug: "fjallraven-kanken-classic", Color: "Yellow", CurrentPrice: 8900, TotalQuantity: 50, CategoryID: 2, SubcategoryID: 3},
		{Brand: "Longchamp", Name: "Le Pliage Tote", Slug: "longchamp-le-pliage-tote", Color: "Beige", CurrentPrice: 14500, TotalQuantity: 22, CategoryID: 2, SubcategoryID: 4},
		{Brand: "The North Face", Name: "1996 Retro Nuptse", Slug: "tnf-1996-retro-nuptse", Color: "Red", CurrentPrice: 32900, DiscountPrice: cents(27900), TotalQuantity: 12, CategoryID: 3, SubcategoryID: 5},
		{Brand: "Carhartt", Name: "Detroit Jacket", Slug: "carhartt-detroit-jacket", Color: "Brown", CurrentPrice: 21900, TotalQuantity: 15, CategoryID: 3, SubcategoryID: 5},
		{Brand: "Uniqlo", Name: "Supima Cotton Tee", Slug: "uniqlo-supima-cotton-tee", Color: "White", CurrentPrice: 1900, TotalQuantity: 120, CategoryID: 3, SubcategoryID: 6},
		{Brand: "Casio", Name: "G-Shock GA-2100", Slug: "casio-g-shock-ga-2100", Color: "Black", CurrentPrice: 9900, TotalQuantity: 35, CategoryID: 4, SubcategoryID: 7},
		{Brand: "Seiko", Name: "Presage Cocktail Time", Slug: "seiko-presage-cocktail-time", CurrentPrice: 42900, DiscountPrice: cents(38900), TotalQuantity: 8, CategoryID: 4, SubcategoryID: 7},
		{Brand: "Anderson's", Name: "Woven Leather Belt", Slug: "andersons-woven-leather-belt", Color: "Tan", CurrentPrice: 11900, TotalQuantity: 27, CategoryID: 4, SubcategoryID: 8},
	}

	created := 0
	for _, p := range seed {
		p.Variants = []product.Variant{
			{Name: "Size", Value: "M", Quantity: p.TotalQuantity / 2},
			{Name: "Size", Value: "L", Quantity: p.TotalQuantity - p.TotalQuantity/2},
		}
		if err := products.Create(ctx, p); err != nil {
			log.Printf("product %s: %v", p.Slug, err)
			continue
		}
		created++
	}

	for i := 1; i <= 5; i++ {
		o := &order.Order{
			UserID:          admin.ID,
			DeliveryAddress: fmt.Sprintf("Demo Street %d", i),
			DeliveryContact: "+1 555 0100",
			Status:          order.StatusPending,
			Total:           int64(i) * 4900,
			Date:            time.Now().AddDate(0, 0, -i),
		}
		if err := orders.Create(ctx, o); err != nil {
			log.Printf("order %d: %v", i, err)
		}
	}

	log.Printf("seed complete: %d products created", created)
}
