package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"springshop/models"
)

// fixedService returns a zero-latency service over the demo seed with a
// pinned clock so window boundaries are deterministic.
func fixedService(t *testing.T) (*Service, time.Time) {
	t.Helper()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	s := New(SeedCategories(), SeedProducts(now), 0)
	s.now = func() time.Time { return now }
	return s, now
}

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ProductID)
	}
	return out
}

func TestListCategories(t *testing.T) {
	s, _ := fixedService(t)

	cats, err := s.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 4)
	assert.Equal(t, "Electronics", cats[0].CategoryName)
	assert.Equal(t, "Books", cats[3].CategoryName)
}

func TestListByCategoryPartitionsCatalog(t *testing.T) {
	s, _ := fixedService(t)
	ctx := context.Background()

	cats, err := s.ListCategories(ctx)
	require.NoError(t, err)

	seen := map[int]bool{}
	total := 0
	for _, cat := range cats {
		products, err := s.ListByCategory(ctx, cat.CategoryID)
		require.NoError(t, err)
		for _, p := range products {
			assert.Equal(t, cat.CategoryID, p.CategoryID)
			assert.False(t, seen[p.ProductID], "product %d appeared in two categories", p.ProductID)
			seen[p.ProductID] = true
		}
		total += len(products)
	}

	// The per-category slices partition the served catalog exactly.
	all, err := s.Search(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, total)
	assert.Empty(t, s.Quarantined())
}

func TestListByCategoryUnknownIDIsEmpty(t *testing.T) {
	s, _ := fixedService(t)

	products, err := s.ListByCategory(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestTopSellingOrderAndLimit(t *testing.T) {
	s, _ := fixedService(t)
	ctx := context.Background()

	top, err := s.TopSelling(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 10)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Sold, top[i].Sold)
	}
	assert.Equal(t, "Classic T-Shirt", top[0].ProductName)

	all, err := s.TopSelling(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 12)

	three, err := s.TopSelling(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 12}, ids(three))
}

func TestTopSellingTiesKeepCatalogOrder(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		{ProductID: 1, ProductName: "A", Sold: 50, CreateDate: now, CategoryID: 1},
		{ProductID: 2, ProductName: "B", Sold: 100, CreateDate: now, CategoryID: 1},
		{ProductID: 3, ProductName: "C", Sold: 50, CreateDate: now, CategoryID: 1},
		{ProductID: 4, ProductName: "D", Sold: 50, CreateDate: now, CategoryID: 1},
	}
	s := New([]models.Category{{CategoryID: 1, CategoryName: "Cat"}}, products, 0)

	top, err := s.TopSelling(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4}, ids(top))
}

func TestNewArrivalsWindowAndOrder(t *testing.T) {
	s, now := fixedService(t)

	recent, err := s.NewArrivals(context.Background(), 7, 10)
	require.NoError(t, err)
	require.NotEmpty(t, recent)

	cutoff := now.AddDate(0, 0, -7)
	for _, p := range recent {
		assert.False(t, p.CreateDate.Before(cutoff), "product %d older than the window", p.ProductID)
	}
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i-1].CreateDate.Before(recent[i].CreateDate))
	}
	// Seed has 7 products within 7 days; newest is the 0-days-ago hat.
	assert.Len(t, recent, 7)
	assert.Equal(t, 12, recent[0].ProductID)
}

func TestNewArrivalsBoundaryIsInclusive(t *testing.T) {
	s, now := fixedService(t)

	products := []models.Product{
		{ProductID: 1, ProductName: "Edge", CreateDate: now.AddDate(0, 0, -7), CategoryID: 1},
		{ProductID: 2, ProductName: "Past", CreateDate: now.AddDate(0, 0, -7).Add(-time.Second), CategoryID: 1},
	}
	edge := New(SeedCategories(), products, 0)
	edge.now = s.now

	recent, err := edge.NewArrivals(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(recent))
}

func TestNewArrivalsTruncatesToLimit(t *testing.T) {
	s, _ := fixedService(t)

	recent, err := s.NewArrivals(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestSearchEmptyFilterReturnsWholeCatalog(t *testing.T) {
	s, _ := fixedService(t)

	all, err := s.Search(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, ids(all))
}

func TestSearchKeywordIsCaseInsensitiveOverNameAndDescription(t *testing.T) {
	s, _ := fixedService(t)

	kw := "PHONE"
	results, err := s.Search(context.Background(), models.ProductFilter{Keyword: &kw})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 11}, ids(results))

	kw = "laptop"
	results, err = s.Search(context.Background(), models.ProductFilter{Keyword: &kw})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(results))
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	s, _ := fixedService(t)

	min, max := 50.0, 100.0
	results, err := s.Search(context.Background(), models.ProductFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 11}, ids(results))
	for _, p := range results {
		assert.GreaterOrEqual(t, p.Price, min)
		assert.LessOrEqual(t, p.Price, max)
	}
}

func TestSearchCombinesCriteriaWithAND(t *testing.T) {
	s, _ := fixedService(t)

	kw := "phone"
	catID := 1
	days := 30
	results, err := s.Search(context.Background(), models.ProductFilter{
		Keyword: &kw, CategoryID: &catID, DaysAgo: &days,
	})
	require.NoError(t, err)
	// Old Phone is a year old, so only Smartphone X survives all three.
	assert.Equal(t, []int{1}, ids(results))
}

func TestSearchDaysAgoUsesExactInstantCutoff(t *testing.T) {
	s, now := fixedService(t)

	products := []models.Product{
		{ProductID: 1, ProductName: "Edge", CreateDate: now.AddDate(0, 0, -7), CategoryID: 1},
		{ProductID: 2, ProductName: "Past", CreateDate: now.AddDate(0, 0, -7).Add(-time.Minute), CategoryID: 1},
	}
	edge := New(SeedCategories(), products, 0)
	edge.now = s.now

	days := 7
	results, err := edge.Search(context.Background(), models.ProductFilter{DaysAgo: &days})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(results))
}

func TestOrphanedProductsAreQuarantined(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		{ProductID: 1, ProductName: "Valid", CreateDate: now, CategoryID: 1},
		{ProductID: 2, ProductName: "Orphan", CreateDate: now, CategoryID: 42},
	}
	s := New([]models.Category{{CategoryID: 1, CategoryName: "Cat"}}, products, 0)

	require.Len(t, s.Quarantined(), 1)
	assert.Equal(t, 2, s.Quarantined()[0].ProductID)

	all, err := s.Search(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(all))
}

func TestQueriesHonorContextCancellation(t *testing.T) {
	s := New(SeedCategories(), SeedProducts(time.Now()), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListCategories(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Search(ctx, models.ProductFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}
