package http

import (
	"fmt"
	"net/http"

	"github.com/duka-labs/inventory-catalog/internal/model"
	"github.com/duka-labs/inventory-catalog/internal/service"
)

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) listProducts(w http.ResponseWriter, r *http.Request) error {
	params, err := parseListProductsParams(r)
	if err != nil {
		return err
	}

	result, err := h.productSvc.ListProducts(r.Context(), params)
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	return respondJSON(w, http.StatusOK, listProductsResponse{
		Products: newProductResponses(result.Products),
		Total:    result.Page.Total,
		Page:     result.Page.Number,
		Pages:    result.Page.Pages,
		HasPrev:  result.Page.HasPrev,
		HasNext:  result.Page.HasNext,
	})
}

func (h *productHandler) listLowStockProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListLowStockProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list low stock products: %w", err)
	}

	return respondJSON(w, http.StatusOK, newProductResponses(products))
}

func (h *productHandler) getProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := parseProductID(r)
	if err != nil {
		return err
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	return respondJSON(w, http.StatusOK, newProductResponse(product))
}

type createProductRequest struct {
	Sku           string  `json:"sku"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Description   string  `json:"description"`
}

func (h *productHandler) createProduct(w http.ResponseWriter, r *http.Request) error {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Sku:           req.Sku,
		Name:          req.Name,
		Category:      model.Category(req.Category),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
	})
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	return respondJSON(w, http.StatusCreated, newProductResponse(product))
}

type updateProductRequest struct {
	Sku           *string  `json:"sku"`
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stock_quantity"`
	Description   *string  `json:"description"`
}

func (h *productHandler) updateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := parseProductID(r)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	params := service.UpdateProductParams{
		Sku:           req.Sku,
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
	}
	if req.Category != nil {
		category := model.Category(*req.Category)
		params.Category = &category
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, params)
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	return respondJSON(w, http.StatusOK, newProductResponse(product))
}

func (h *productHandler) deleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := parseProductID(r)
	if err != nil {
		return err
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	return respondJSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}
