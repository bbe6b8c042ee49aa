package product

import (
	"context"
	"time"
)

// Product is a catalog entry. Monetary values are stored as int64 minor
// units (cents).
type Product struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	Brand         string `gorm:"size:64;not null;index" json:"brand"`
	Name          string `gorm:"size:128;not null" json:"name"`
	Slug          string `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Desc          string `gorm:"size:512" json:"desc"`
	Color         string `gorm:"size:32;index" json:"color,omitempty"`
	CurrentPrice  int64  `gorm:"not null" json:"currentPrice"`
	DiscountPrice *int64 `json:"discountPrice,omitempty"`
	TotalQuantity int    `gorm:"not null" json:"totalQuantity"`
	CategoryID    int64  `gorm:"index" json:"categoryId"`
	SubcategoryID int64  `gorm:"index" json:"subcategoryId"`

	Images    []Image    `json:"images"`
	Variants  []Variant  `json:"variants"`
	Favorites []Favorite `json:"favorites"`
	Reviews   []Review   `json:"reviews"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EffectivePrice is the discount price when set, else the current price.
// Price filtering and price sorting both use this value.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.CurrentPrice
}

// Image is one uploaded product picture. Src is the public path under
// /uploads; the backing file lives in the configured upload directory.
type Image struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	ProductID int64  `gorm:"index;not null" json:"productId"`
	Src       string `gorm:"size:255;not null" json:"src"`
	Alt       string `gorm:"size:128;not null" json:"alt"`
}

// Variant is a name/value option of a product (e.g. Size / 42) with its own stock.
type Variant struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	ProductID int64  `gorm:"index;not null" json:"productId"`
	Name      string `gorm:"size:64;not null" json:"name"`
	Value     string `gorm:"size:64;not null" json:"value"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// Favorite marks a product as favorited by a user.
type Favorite struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	ProductID int64 `gorm:"index;not null" json:"productId"`
	UserID    int64 `gorm:"index;not null" json:"userId"`
}

// Review is a user rating with an optional comment.
type Review struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	ProductID  int64     `gorm:"index;not null" json:"productId"`
	UserID     int64     `gorm:"index;not null" json:"userId"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"size:512" json:"comment,omitempty"`
	ReviewDate time.Time `json:"reviewDate"`
}

// Repository is the product persistence contract.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	// List returns one page of products matching the filter plus the total
	// match count before pagination.
	List(ctx context.Context, f Filter) ([]*Product, int64, error)
	Count(ctx context.Context) (int64, error)
	// Create persists the product together with its variants in one transaction.
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	// DeleteCascade removes the product and every dependent row (favorites,
	// reviews, variants, image rows) in one transaction. The cleanup callback
	// runs inside the transaction with the product's images; an error from it
	// rolls the whole deletion back.
	DeleteCascade(ctx context.Context, id int64, cleanup func(images []Image) error) error
	AddImage(ctx context.Context, img *Image) error
	AddFavorite(ctx context.Context, productID, userID int64) error
	RemoveFavorite(ctx context.Context, productID, userID int64) error
}
