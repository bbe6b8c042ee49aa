package mysql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lukpoex/next-commerce/internal/datamodels/category"
	"github.com/lukpoex/next-commerce/internal/datamodels/product"
)

func ptr(v int64) *int64 { return &v }

func seedCategories(t *testing.T, db *gorm.DB) {
	t.Helper()
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	for _, name := range []string{"Shoes", "Bags"} {
		require.NoError(t, repo.CreateCategory(ctx, &category.Category{Name: name}))
	}
	for _, name := range []string{"Sneakers", "Totes"} {
		require.NoError(t, repo.CreateSubcategory(ctx, &category.Subcategory{Name: name}))
	}
}

// seedScenario creates the three canonical products:
// A: price 100, discount 80, Shoes; B: price 50, Bags; C: price 200, Shoes.
func seedScenario(t *testing.T, repo product.Repository) (a, b, c *product.Product) {
	t.Helper()
	ctx := context.Background()
	a = &product.Product{Brand: "Alpha", Name: "Runner A", Slug: "runner-a", CurrentPrice: 100, DiscountPrice: ptr(80), TotalQuantity: 5, CategoryID: 1, SubcategoryID: 1}
	b = &product.Product{Brand: "Beta", Name: "Tote B", Slug: "tote-b", CurrentPrice: 50, TotalQuantity: 5, CategoryID: 2, SubcategoryID: 2}
	c = &product.Product{Brand: "Gamma", Name: "Runner C", Slug: "runner-c", CurrentPrice: 200, TotalQuantity: 5, CategoryID: 1, SubcategoryID: 1}
	for _, p := range []*product.Product{a, b, c} {
		require.NoError(t, repo.Create(ctx, p))
	}
	return a, b, c
}

func TestListUnfiltered(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	seedScenario(t, repo)

	list, total, err := repo.List(context.Background(), product.Filter{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)
}

func TestListCategoryPriceAscScenario(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	a, _, c := seedScenario(t, repo)

	list, total, err := repo.List(context.Background(), product.Filter{
		Category: "Shoes",
		Sort:     product.SortPriceAsc,
		Page:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	// A's effective price is 80 (discount), below C's 200.
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, c.ID, list[1].ID)
}

func TestListPriceRangeUsesEffectivePrice(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	seedScenario(t, repo)

	// A's current price 100 is inside [90,150], but its effective price 80
	// is not: the range must exclude it.
	list, total, err := repo.List(context.Background(), product.Filter{
		PriceFrom: ptr(90),
		PriceTo:   ptr(150),
		Page:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, list)

	// A lower bound of 80 admits A and nothing else below 150.
	list, total, err = repo.List(context.Background(), product.Filter{
		PriceFrom: ptr(80),
		PriceTo:   ptr(150),
		Page:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "runner-a", list[0].Slug)
}

func TestListConjunction(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()
	seedScenario(t, repo)

	f := product.Filter{Category: "Shoes", Brand: "Gamma", Page: 1}
	list, total, err := repo.List(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	for _, p := range list {
		assert.Equal(t, "Gamma", p.Brand)
		assert.Equal(t, int64(1), p.CategoryID)
	}

	// Every filtered set is a subset of the unfiltered collection.
	_, all, err := repo.List(ctx, product.Filter{Page: 1})
	require.NoError(t, err)
	assert.LessOrEqual(t, total, all)
}

func TestListFreeTextNarrowsFilteredSet(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	seedScenario(t, repo)

	// Case-insensitive match on name.
	list, total, err := repo.List(context.Background(), product.Filter{Query: "runner", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, p := range list {
		assert.Contains(t, p.Name, "Runner")
	}

	// Match on brand, AND-ed with the category constraint.
	list, total, err = repo.List(context.Background(), product.Filter{
		Category: "Bags",
		Query:    "BETA",
		Page:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Beta", list[0].Brand)

	// A query that only matches products outside the category yields nothing.
	_, total, err = repo.List(context.Background(), product.Filter{
		Category: "Bags",
		Query:    "runner",
		Page:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestListColorFilter(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	red := &product.Product{Brand: "Alpha", Name: "Red Shoe", Slug: "red-shoe", Color: "Red", CurrentPrice: 100, CategoryID: 1, SubcategoryID: 1}
	blue := &product.Product{Brand: "Alpha", Name: "Blue Shoe", Slug: "blue-shoe", Color: "Blue", CurrentPrice: 100, CategoryID: 1, SubcategoryID: 1}
	require.NoError(t, repo.Create(ctx, red))
	require.NoError(t, repo.Create(ctx, blue))

	list, total, err := repo.List(ctx, product.Filter{Color: "Red", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "red-shoe", list[0].Slug)
}

func TestListPriceSortTieBreaksOnID(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p := &product.Product{
			Brand: "Tie", Name: fmt.Sprintf("Same Price %d", i),
			Slug: fmt.Sprintf("same-price-%d", i), CurrentPrice: 500,
			CategoryID: 1, SubcategoryID: 1,
		}
		require.NoError(t, repo.Create(ctx, p))
	}

	for _, sort := range []product.SortKey{product.SortPriceAsc, product.SortPriceDesc} {
		list, _, err := repo.List(ctx, product.Filter{Sort: sort, Page: 1})
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Less(t, list[0].ID, list[1].ID)
		assert.Less(t, list[1].ID, list[2].ID)
	}
}

func TestListPriceSortOrdering(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	seedScenario(t, repo)

	list, _, err := repo.List(context.Background(), product.Filter{Sort: product.SortPriceAsc, Page: 1})
	require.NoError(t, err)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].EffectivePrice(), list[i].EffectivePrice())
	}

	list, _, err = repo.List(context.Background(), product.Filter{Sort: product.SortPriceDesc, Page: 1})
	require.NoError(t, err)
	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].EffectivePrice(), list[i].EffectivePrice())
	}
}

func TestListDefaultSortNewestFirst(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	seedScenario(t, repo)

	list, _, err := repo.List(context.Background(), product.Filter{Page: 1})
	require.NoError(t, err)
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].ID, list[i].ID)
	}
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		p := &product.Product{
			Brand: "Bulk", Name: fmt.Sprintf("Bulk %02d", i),
			Slug: fmt.Sprintf("bulk-%02d", i), CurrentPrice: int64(i * 10),
			CategoryID: 1, SubcategoryID: 1,
		}
		require.NoError(t, repo.Create(ctx, p))
	}

	page1, total1, err := repo.List(ctx, product.Filter{Sort: product.SortPriceAsc, Page: 1})
	require.NoError(t, err)
	page2, total2, err := repo.List(ctx, product.Filter{Sort: product.SortPriceAsc, Page: 2})
	require.NoError(t, err)

	// totalItems is invariant under the page number; only items change.
	assert.Equal(t, int64(25), total1)
	assert.Equal(t, total1, total2)
	assert.Len(t, page1, product.PageSize)
	assert.Len(t, page2, 5)

	// Pages are disjoint and contiguous under the total order.
	assert.Greater(t, page2[0].EffectivePrice(), page1[len(page1)-1].EffectivePrice())

	// Repeated identical calls return identical pages.
	again, totalAgain, err := repo.List(ctx, product.Filter{Sort: product.SortPriceAsc, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, total1, totalAgain)
	require.Len(t, again, len(page1))
	for i := range page1 {
		assert.Equal(t, page1[i].ID, again[i].ID)
	}

	// Out-of-range page: empty items, unchanged total.
	far, totalFar, err := repo.List(ctx, product.Filter{Sort: product.SortPriceAsc, Page: 100})
	require.NoError(t, err)
	assert.Empty(t, far)
	assert.Equal(t, int64(25), totalFar)
}

func TestGetBySlug(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	seedScenario(t, repo)

	p, err := repo.GetBySlug(context.Background(), "runner-a")
	require.NoError(t, err)
	assert.Equal(t, "Runner A", p.Name)

	_, err = repo.GetBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteCascadeRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()
	a, _, _ := seedScenario(t, repo)

	require.NoError(t, repo.AddImage(ctx, &product.Image{ProductID: a.ID, Src: "/uploads/one.webp", Alt: "Runner A"}))
	require.NoError(t, repo.AddImage(ctx, &product.Image{ProductID: a.ID, Src: "/uploads/two.webp", Alt: "Runner A"}))
	require.NoError(t, repo.AddFavorite(ctx, a.ID, 7))
	require.NoError(t, db.Create(&product.Variant{ProductID: a.ID, Name: "Size", Value: "42", Quantity: 3}).Error)

	var seen []string
	err := repo.DeleteCascade(ctx, a.ID, func(images []product.Image) error {
		for _, img := range images {
			seen = append(seen, img.Src)
		}
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/uploads/one.webp", "/uploads/two.webp"}, seen)

	_, err = repo.GetByID(ctx, a.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var count int64
	require.NoError(t, db.Model(&product.Image{}).Where("product_id = ?", a.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&product.Variant{}).Where("product_id = ?", a.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&product.Favorite{}).Where("product_id = ?", a.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Deleting again only reports not found.
	err = repo.DeleteCascade(ctx, a.ID, nil)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteCascadeRollsBackOnCleanupFailure(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()
	a, _, _ := seedScenario(t, repo)
	require.NoError(t, repo.AddImage(ctx, &product.Image{ProductID: a.ID, Src: "/uploads/stuck.webp", Alt: "Runner A"}))

	boom := errors.New("disk on fire")
	err := repo.DeleteCascade(ctx, a.ID, func([]product.Image) error { return boom })
	assert.True(t, errors.Is(err, boom))

	// Nothing was deleted.
	_, err = repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&product.Image{}).Where("product_id = ?", a.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFavoritesAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()
	a, _, _ := seedScenario(t, repo)

	require.NoError(t, repo.AddFavorite(ctx, a.ID, 9))
	require.NoError(t, repo.AddFavorite(ctx, a.ID, 9))

	var count int64
	require.NoError(t, db.Model(&product.Favorite{}).Where("product_id = ? AND user_id = ?", a.ID, 9).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.RemoveFavorite(ctx, a.ID, 9))
	require.NoError(t, db.Model(&product.Favorite{}).Where("product_id = ?", a.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Removing a favorite that is not there is a no-op.
	require.NoError(t, repo.RemoveFavorite(ctx, a.ID, 9))
}

func TestCreatePersistsVariants(t *testing.T) {
	db := newTestDB(t)
	seedCategories(t, db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := &product.Product{
		Brand: "Alpha", Name: "With Variants", Slug: "with-variants",
		CurrentPrice: 900, CategoryID: 1, SubcategoryID: 1,
		Variants: []product.Variant{
			{Name: "Size", Value: "M", Quantity: 2},
			{Name: "Size", Value: "L", Quantity: 1},
		},
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Variants, 2)
}
