package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"springshop/models"
)

const (
	DefaultTopLimit    = 10
	DefaultWindowDays  = 7
	DefaultArrivalsCap = 10
)

// Service answers read-only queries over an in-memory catalog. It simulates a
// remote backend by applying an artificial latency to every call; apart from
// context cancellation none of the operations can fail.
type Service struct {
	categories  []models.Category
	products    []models.Product
	quarantined []models.Product
	latency     time.Duration
	now         func() time.Time
}

// New builds a Service from reference data. Products whose CategoryID does not
// resolve to a known category are quarantined at load time and never served.
func New(categories []models.Category, products []models.Product, latency time.Duration) *Service {
	known := make(map[int]bool, len(categories))
	for _, c := range categories {
		known[c.CategoryID] = true
	}

	s := &Service{
		categories: categories,
		latency:    latency,
		now:        time.Now,
	}
	for _, p := range products {
		if known[p.CategoryID] {
			s.products = append(s.products, p)
		} else {
			s.quarantined = append(s.quarantined, p)
		}
	}
	return s
}

// NewDemo builds a Service seeded with the fixed demo data set, with product
// creation dates anchored to the current time.
func NewDemo(latency time.Duration) *Service {
	return New(SeedCategories(), SeedProducts(time.Now()), latency)
}

// Quarantined returns the products rejected at load time for referencing an
// unknown category.
func (s *Service) Quarantined() []models.Product {
	return s.quarantined
}

// wait blocks for the configured mock latency or until ctx is done.
func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListCategories returns the full ordered category list.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// ListByCategory returns the products of one category in catalog order.
// An unknown category id yields an empty result, not an error.
func (s *Service) ListByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

// TopSelling returns up to limit products sorted by descending sold count.
// Ties keep their catalog order. A non-positive limit falls back to 10.
func (s *Service) TopSelling(ctx context.Context, limit int) ([]models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sold > out[j].Sold
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// NewArrivals returns up to limit products created within windowDays of now,
// newest first. The boundary is the exact current instant minus windowDays,
// inclusive. Non-positive arguments fall back to 7 days and 10 items.
func (s *Service) NewArrivals(ctx context.Context, windowDays, limit int) ([]models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if limit <= 0 {
		limit = DefaultArrivalsCap
	}

	cutoff := s.now().AddDate(0, 0, -windowDays)
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if !p.CreateDate.Before(cutoff) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreateDate.After(out[j].CreateDate)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Search applies each present filter field as an independent AND constraint
// over the whole catalog: category equality, case-insensitive keyword match
// against name or description, inclusive price bounds, and a created-within-N-
// days cutoff measured from the exact current instant (same boundary policy as
// NewArrivals). An empty filter returns the entire catalog in catalog order.
func (s *Service) Search(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]models.Product, 0)
	var cutoff time.Time
	if filter.DaysAgo != nil {
		cutoff = s.now().AddDate(0, 0, -*filter.DaysAgo)
	}
	var keyword string
	if filter.Keyword != nil {
		keyword = strings.ToLower(*filter.Keyword)
	}

	for _, p := range s.products {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.ProductName), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.DaysAgo != nil && p.CreateDate.Before(cutoff) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
