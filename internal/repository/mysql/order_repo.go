package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/lukpoex/next-commerce/internal/datamodels/order"
	"github.com/lukpoex/next-commerce/internal/pagination"
)

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepo{db: db}
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List applies the optional id match, sorts, and returns one page plus the
// total match count.
func (r *orderRepo) List(ctx context.Context, f order.Filter) ([]*order.Order, int64, error) {
	base := r.db.WithContext(ctx).Model(&order.Order{})
	if f.OrderID != nil {
		base = base.Where("id = ?", *f.OrderID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := pagination.NewRequest(f.Page, order.PageSize)
	var list []*order.Order
	if err := base.Session(&gorm.Session{}).
		Order(orderOrder(f.Sort)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// orderOrder ties every sort to ascending id so repeated calls page the same way.
func orderOrder(sort order.SortKey) string {
	switch sort {
	case order.SortPriceAsc:
		return "total ASC, id ASC"
	case order.SortPriceDesc:
		return "total DESC, id ASC"
	case order.SortDateAsc:
		return "date ASC, id ASC"
	default:
		// Latest orders first.
		return "date DESC, id ASC"
	}
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&order.Order{}).Count(&total).Error
	return total, err
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}
