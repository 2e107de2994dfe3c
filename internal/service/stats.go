package service

import (
	"context"
	"fmt"

	"github.com/duka-labs/inventory-catalog/internal/model"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 5

// Stats is the dashboard summary. It is recomputed from the product store on
// every call; at catalog scale a full scan is cheaper than keeping counters
// fresh.
type Stats struct {
	TotalProducts   int
	LowStockItems   int
	OutOfStock      int
	TotalCategories int
	TotalValue      float64
	Categories      map[string]int
	RecentActivity  []ActivityEntry
}

// ActivityEntry is one rendered line of the dashboard activity feed.
type ActivityEntry struct {
	Icon        string
	Title       string
	Description string
	Time        string
}

func (s *productService) GetStats(ctx context.Context) (Stats, error) {
	repoStats, err := s.productRepo.GetStats(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("product repository get stats: %w", err)
	}

	categories, err := s.productRepo.CountProductsByCategory(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("product repository count products by category: %w", err)
	}

	recent, err := s.productRepo.ListRecentProducts(ctx, recentActivityLimit)
	if err != nil {
		return Stats{}, fmt.Errorf("product repository list recent products: %w", err)
	}

	activity := make([]ActivityEntry, 0, len(recent))
	for _, product := range recent {
		activity = append(activity, activityEntry(product))
	}

	return Stats{
		TotalProducts:   repoStats.TotalProducts,
		LowStockItems:   repoStats.LowStockItems,
		OutOfStock:      repoStats.OutOfStock,
		TotalCategories: repoStats.TotalCategories,
		TotalValue:      repoStats.TotalValue,
		Categories:      categories,
		RecentActivity:  activity,
	}, nil
}

func activityEntry(product model.Product) ActivityEntry {
	entry := ActivityEntry{
		Icon:        "📦",
		Title:       "New product added",
		Description: fmt.Sprintf("%s - SKU: %s", product.Name, product.Sku),
		Time:        product.CreatedAt.Format("15:04"),
	}

	if product.StockQuantity < model.LowStockThreshold {
		entry.Icon = "⚠️"
		entry.Title = fmt.Sprintf("Low stock alert - Only %d units left", product.StockQuantity)
	}

	return entry
}
