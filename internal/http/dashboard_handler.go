package http

import (
	"fmt"
	"net/http"

	"github.com/duka-labs/inventory-catalog/internal/service"
)

type dashboardHandler struct {
	productSvc service.ProductService
}

func newDashboardHandler(productSvc service.ProductService) *dashboardHandler {
	return &dashboardHandler{
		productSvc: productSvc,
	}
}

func (h *dashboardHandler) home(w http.ResponseWriter, _ *http.Request) error {
	return respondJSON(w, http.StatusOK, map[string]string{
		"message": "Inventory Management API",
		"status":  "running",
	})
}

type statsResponse struct {
	TotalProducts   int                 `json:"total_products"`
	LowStockItems   int                 `json:"low_stock_items"`
	OutOfStock      int                 `json:"out_of_stock"`
	TotalCategories int                 `json:"total_categories"`
	TotalValue      float64             `json:"total_value"`
	Categories      map[string]int      `json:"categories"`
	RecentActivity  []activityFeedEntry `json:"recent_activity"`
}

type activityFeedEntry struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

func (h *dashboardHandler) getStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.productSvc.GetStats(r.Context())
	if err != nil {
		return fmt.Errorf("product service get stats: %w", err)
	}

	activity := make([]activityFeedEntry, 0, len(stats.RecentActivity))
	for _, entry := range stats.RecentActivity {
		activity = append(activity, activityFeedEntry{
			Icon:        entry.Icon,
			Title:       entry.Title,
			Description: entry.Description,
			Time:        entry.Time,
		})
	}

	return respondJSON(w, http.StatusOK, statsResponse{
		TotalProducts:   stats.TotalProducts,
		LowStockItems:   stats.LowStockItems,
		OutOfStock:      stats.OutOfStock,
		TotalCategories: stats.TotalCategories,
		TotalValue:      stats.TotalValue,
		Categories:      stats.Categories,
		RecentActivity:  activity,
	})
}

type activityResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// getActivity serves a static activity feed. There is no activity log table
// yet; the reports page only needs representative entries.
func (h *dashboardHandler) getActivity(w http.ResponseWriter, _ *http.Request) error {
	activities := []activityResponse{
		{
			Type:        "product_added",
			Title:       "New product added",
			Description: "Wireless Headphones - SKU: ELE001",
			CreatedAt:   "2025-07-18T10:30:00Z",
		},
		{
			Type:        "low_stock",
			Title:       "Low stock alert",
			Description: "Gaming Mouse - Only 3 units left",
			CreatedAt:   "2025-07-18T08:15:00Z",
		},
		{
			Type:        "report_generated",
			Title:       "Monthly report generated",
			Description: "July inventory summary completed",
			CreatedAt:   "2025-07-17T14:20:00Z",
		},
	}

	return respondJSON(w, http.StatusOK, activities)
}
