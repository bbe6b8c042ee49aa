package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/lukpoex/next-commerce/internal/datamodels/category"
)

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository creates the category repository.
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) ListCategories(ctx context.Context) ([]*category.Category, error) {
	var list []*category.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoryRepo) ListSubcategories(ctx context.Context) ([]*category.Subcategory, error) {
	var list []*category.Subcategory
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoryRepo) CreateCategory(ctx context.Context, c *category.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) CreateSubcategory(ctx context.Context, s *category.Subcategory) error {
	return r.db.WithContext(ctx).Create(s).Error
}
