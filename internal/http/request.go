package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/duka-labs/inventory-catalog/internal/apperr"
	"github.com/duka-labs/inventory-catalog/internal/model"
	"github.com/duka-labs/inventory-catalog/internal/service"
	"github.com/duka-labs/inventory-catalog/pkg/paging"
)

func parseProductID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.ValidationErr.WrapParent(fmt.Errorf("product id must be an integer, got %q", raw))
	}

	return id, nil
}

// parseListProductsParams reads the listing query parameters. Malformed
// numerics are rejected rather than defaulted, so a bad page never looks
// like an empty one.
func parseListProductsParams(r *http.Request) (service.ListProductsParams, error) {
	query := r.URL.Query()

	params := service.ListProductsParams{
		Search:   query.Get("search"),
		Category: model.Category(query.Get("category")),
		Status:   model.StockStatus(query.Get("status")),
		Page:     1,
		PerPage:  paging.DefaultPerPage,
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return service.ListProductsParams{}, apperr.ValidationErr.WrapParent(fmt.Errorf("page must be an integer, got %q", raw))
		}
		params.Page = page
	}

	if raw := query.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return service.ListProductsParams{}, apperr.ValidationErr.WrapParent(fmt.Errorf("per_page must be an integer, got %q", raw))
		}
		params.PerPage = perPage
	}

	return params, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.ValidationErr.WrapParent(fmt.Errorf("decode request body: %w", err))
	}

	return nil
}
