package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/lukpoex/next-commerce/internal/datamodels/product"
	"github.com/lukpoex/next-commerce/internal/pagination"
)

// effectivePrice is the value price filters and price sorts operate on.
const effectivePrice = "COALESCE(products.discount_price, products.current_price)"

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository creates the product repository.
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).
		Preload("Images").Preload("Variants").Preload("Favorites").Preload("Reviews").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	var p product.Product
	if err := r.db.WithContext(ctx).
		Preload("Images").Preload("Variants").Preload("Favorites").Preload("Reviews").
		Where("slug = ?", slug).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List composes the filter into conjunctive predicates, counts the full match
// set, then selects one page under a deterministic total order.
func (r *productRepo) List(ctx context.Context, f product.Filter) ([]*product.Product, int64, error) {
	base := r.applyFilter(r.db.WithContext(ctx).Model(&product.Product{}), f)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := pagination.NewRequest(f.Page, product.PageSize)
	var list []*product.Product
	if err := base.Session(&gorm.Session{}).
		Order(productOrder(f.Sort)).
		Offset(page.Offset()).
		Limit(page.Size).
		Preload("Images").Preload("Variants").Preload("Favorites").Preload("Reviews").
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *productRepo) applyFilter(q *gorm.DB, f product.Filter) *gorm.DB {
	if f.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Joins("JOIN subcategories ON subcategories.id = products.subcategory_id").
			Where("subcategories.name = ?", f.Subcategory)
	}
	if f.Brand != "" {
		q = q.Where("products.brand = ?", f.Brand)
	}
	if f.Color != "" {
		q = q.Where("products.color = ?", f.Color)
	}
	if f.PriceFrom != nil {
		q = q.Where(effectivePrice+" >= ?", *f.PriceFrom)
	}
	if f.PriceTo != nil {
		q = q.Where(effectivePrice+" <= ?", *f.PriceTo)
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where(
			r.db.Where("LOWER(products.name) LIKE ?", like).
				Or("LOWER(products.brand) LIKE ?", like),
		)
	}
	return q
}

// productOrder keeps pagination deterministic: price sorts tie-break on
// ascending id, the default lists newest first.
func productOrder(sort product.SortKey) string {
	switch sort {
	case product.SortPriceAsc:
		return effectivePrice + " ASC, products.id ASC"
	case product.SortPriceDesc:
		return effectivePrice + " DESC, products.id ASC"
	default:
		return "products.id DESC"
	}
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&product.Product{}).Count(&total).Error
	return total, err
}

func (r *productRepo) Create(ctx context.Context, p *product.Product) error {
	// gorm inserts the associated variants in the same transaction.
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Update(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) DeleteCascade(ctx context.Context, id int64, cleanup func(images []product.Image) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p product.Product
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}

		var images []product.Image
		if err := tx.Where("product_id = ?", id).Find(&images).Error; err != nil {
			return err
		}

		for _, dependent := range []interface{}{
			&product.Favorite{},
			&product.Review{},
			&product.Variant{},
			&product.Image{},
		} {
			if err := tx.Where("product_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&product.Product{}, id).Error; err != nil {
			return err
		}

		// Runs inside the transaction so a failed file removal rolls the
		// row deletions back instead of leaving a half-deleted product.
		if cleanup != nil {
			return cleanup(images)
		}
		return nil
	})
}

func (r *productRepo) AddImage(ctx context.Context, img *product.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *productRepo) AddFavorite(ctx context.Context, productID, userID int64) error {
	fav := product.Favorite{ProductID: productID, UserID: userID}
	return r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		FirstOrCreate(&fav).Error
}

func (r *productRepo) RemoveFavorite(ctx context.Context, productID, userID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Delete(&product.Favorite{}).Error
}
