package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order is a placed order. Total is stored as int64 minor units; the wire
// keeps the legacy text form, see TotalString.
type Order struct {
	ID              int64     `gorm:"primaryKey" json:"orderId"`
	UserID          int64     `gorm:"index;not null" json:"userId"`
	DeliveryAddress string    `gorm:"size:255;not null" json:"deliveryAddress"`
	DeliveryContact string    `gorm:"size:64;not null" json:"deliveryContact"`
	Status          Status    `gorm:"size:16;index;not null" json:"orderStatus"`
	Total           int64     `gorm:"not null" json:"-"`
	Date            time.Time `gorm:"index" json:"orderDate"`

	Items []Item `json:"items,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TotalString renders the total as a 2-dp decimal string, the shape the
// dashboard client has always consumed.
func (o *Order) TotalString() string {
	return decimal.NewFromInt(o.Total).Shift(-2).StringFixed(2)
}

// Item is a snapshot of a product at purchase time.
type Item struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	OrderID   int64  `gorm:"index;not null" json:"orderId"`
	ProductID int64  `gorm:"not null" json:"productId"`
	Brand     string `gorm:"size:64;not null" json:"brand"`
	Name      string `gorm:"size:128;not null" json:"name"`
	Image     string `gorm:"size:255;not null" json:"image"`
	Price     int64  `gorm:"not null" json:"price"`
	Size      string `gorm:"size:32" json:"size,omitempty"`
	Color     string `gorm:"size:32" json:"color,omitempty"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// Repository is the order persistence contract. Orders are created by
// checkout and only read, sorted and paginated here.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Order, error)
	// List returns one page of orders matching the filter plus the total
	// match count before pagination.
	List(ctx context.Context, f Filter) ([]*Order, int64, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, o *Order) error
}
