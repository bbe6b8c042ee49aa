package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/lukpoex/next-commerce/internal/datamodels/order"
	"github.com/lukpoex/next-commerce/internal/datamodels/product"
	"github.com/lukpoex/next-commerce/internal/datamodels/user"
)

// VisitorBreakdown is one slice of the visitors chart.
type VisitorBreakdown struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}

// SalesPoint is one bar of the monthly sales chart.
type SalesPoint struct {
	Label string `json:"label"`
	Data  int    `json:"data"`
}

// Statistics is the dashboard statistics payload.
type Statistics struct {
	TotalSales    int64                   `json:"totalSales"`
	TotalCustomer int64                   `json:"totalCustomer"`
	TotalProducts int64                   `json:"totalProducts"`
	TotalOrders   int64                   `json:"totalOrders"`
	Visitors      []VisitorBreakdown      `json:"visitors"`
	Sales         map[string][]SalesPoint `json:"sales"`
}

// Reporter supplies the visitor and sales breakdowns. The default is a fixed
// illustrative data set; a real reporting backend can be swapped in without
// touching the payload shape.
type Reporter interface {
	TotalSales(ctx context.Context) int64
	Visitors(ctx context.Context) []VisitorBreakdown
	Sales(ctx context.Context) map[string][]SalesPoint
}

// DashboardService aggregates the read-only admin dashboard data.
type DashboardService struct {
	users    user.Repository
	products product.Repository
	orders   order.Repository
	reporter Reporter
	logger   *zap.Logger
}

// NewDashboardService wires the dashboard service. A nil reporter gets the
// static default.
func NewDashboardService(users user.Repository, products product.Repository, orders order.Repository, reporter Reporter, logger *zap.Logger) *DashboardService {
	if reporter == nil {
		reporter = StaticReporter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		users:    users,
		products: products,
		orders:   orders,
		reporter: reporter,
		logger:   logger,
	}
}

// Statistics collects entity counts and the reporter breakdowns. Count
// failures are logged and degrade to zero so the dashboard always renders.
func (s *DashboardService) Statistics(ctx context.Context) *Statistics {
	return &Statistics{
		TotalSales:    s.reporter.TotalSales(ctx),
		TotalCustomer: s.count(ctx, "users", s.users.Count),
		TotalProducts: s.count(ctx, "products", s.products.Count),
		TotalOrders:   s.count(ctx, "orders", s.orders.Count),
		Visitors:      s.reporter.Visitors(ctx),
		Sales:         s.reporter.Sales(ctx),
	}
}

func (s *DashboardService) count(ctx context.Context, what string, fn func(context.Context) (int64, error)) int64 {
	n, err := fn(ctx)
	if err != nil {
		s.logger.Error("dashboard count failed", zap.String("entity", what), zap.Error(err))
		return 0
	}
	return n
}

// Orders returns one page of orders plus the filtered total, degrading to an
// empty page on read failure.
func (s *DashboardService) Orders(ctx context.Context, f order.Filter) ([]*order.Order, int64) {
	list, total, err := s.orders.List(ctx, f)
	if err != nil {
		s.logger.Error("order list query failed", zap.Error(err))
		return []*order.Order{}, 0
	}
	if list == nil {
		list = []*order.Order{}
	}
	return list, total
}
