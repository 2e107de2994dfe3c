package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/duka-labs/inventory-catalog/internal/model"
)

type productResponse struct {
	ID            int64     `json:"id"`
	Sku           string    `json:"sku"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newProductResponse(product model.Product) productResponse {
	return productResponse{
		ID:            product.ID,
		Sku:           product.Sku,
		Name:          product.Name,
		Category:      product.Category.String(),
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Description:   product.Description,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func newProductResponses(products []model.Product) []productResponse {
	items := make([]productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, newProductResponse(product))
	}
	return items
}

// listProductsResponse is the canonical paginated envelope of the listing
// endpoint.
type listProductsResponse struct {
	Products []productResponse `json:"products"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	HasPrev  bool              `json:"has_prev"`
	HasNext  bool              `json:"has_next"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}
