package mysql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukpoex/next-commerce/internal/datamodels/order"
)

func seedOrders(t *testing.T, repo order.Repository, n int) []*order.Order {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*order.Order, 0, n)
	for i := 1; i <= n; i++ {
		o := &order.Order{
			UserID:          1,
			DeliveryAddress: fmt.Sprintf("Street %d", i),
			DeliveryContact: "+1 555 0100",
			Status:          order.StatusPending,
			Total:           int64(i) * 1000,
			Date:            base.AddDate(0, 0, i),
		}
		require.NoError(t, repo.Create(ctx, o))
		out = append(out, o)
	}
	return out
}

func TestOrderListDefaultSortIsDateDesc(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	seedOrders(t, repo, 5)

	list, total, err := repo.List(context.Background(), order.Filter{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].Date.Before(list[i].Date))
	}
}

func TestOrderListSorts(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	seedOrders(t, repo, 5)
	ctx := context.Background()

	list, _, err := repo.List(ctx, order.Filter{Sort: order.SortPriceAsc, Page: 1})
	require.NoError(t, err)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Total, list[i].Total)
	}

	list, _, err = repo.List(ctx, order.Filter{Sort: order.SortPriceDesc, Page: 1})
	require.NoError(t, err)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Total, list[i].Total)
	}

	list, _, err = repo.List(ctx, order.Filter{Sort: order.SortDateAsc, Page: 1})
	require.NoError(t, err)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].Date.After(list[i].Date))
	}
}

func TestOrderListByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	created := seedOrders(t, repo, 3)

	id := created[1].ID
	list, total, err := repo.List(context.Background(), order.Filter{OrderID: &id, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	missing := int64(999)
	list, total, err = repo.List(context.Background(), order.Filter{OrderID: &missing, Page: 1})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestOrderListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	seedOrders(t, repo, 12)
	ctx := context.Background()

	page1, total, err := repo.List(ctx, order.Filter{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, page1, order.PageSize)

	page2, total2, err := repo.List(ctx, order.Filter{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, total, total2)
	assert.Len(t, page2, 2)

	far, totalFar, err := repo.List(ctx, order.Filter{Page: 50})
	require.NoError(t, err)
	assert.Empty(t, far)
	assert.Equal(t, total, totalFar)
}
