package category

import "context"

// Category is a top-level product group; the storefront filters by its name.
type Category struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

// Subcategory is a second-level product group.
type Subcategory struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

// Repository is the category persistence contract.
type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	ListSubcategories(ctx context.Context) ([]*Subcategory, error)
	CreateCategory(ctx context.Context, c *Category) error
	CreateSubcategory(ctx context.Context, s *Subcategory) error
}
