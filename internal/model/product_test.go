package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duka-labs/inventory-catalog/internal/model"
)

func TestStockStatusOf(t *testing.T) {
	tests := []struct {
		quantity int
		want     model.StockStatus
	}{
		{0, model.StockStatusOutOfStock},
		{1, model.StockStatusLowStock},
		{5, model.StockStatusLowStock},
		{9, model.StockStatusLowStock},
		{10, model.StockStatusInStock},
		{50, model.StockStatusInStock},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.StockStatusOf(tt.quantity), "quantity %d", tt.quantity)
	}
}

func TestProductStockStatus(t *testing.T) {
	p := model.Product{StockQuantity: 3}
	assert.Equal(t, model.StockStatusLowStock, p.StockStatus())

	p.StockQuantity = 0
	assert.Equal(t, model.StockStatusOutOfStock, p.StockStatus())
}

func TestCategoryValidate(t *testing.T) {
	for _, c := range model.Categories() {
		assert.NoError(t, c.Validate())
	}

	assert.Error(t, model.Category("Toys").Validate())
	assert.Error(t, model.Category("electronics").Validate(), "category match is case sensitive")
	assert.Error(t, model.Category("").Validate())
}

func TestStockStatusValidate(t *testing.T) {
	assert.NoError(t, model.StockStatusInStock.Validate())
	assert.NoError(t, model.StockStatusLowStock.Validate())
	assert.NoError(t, model.StockStatusOutOfStock.Validate())

	assert.Error(t, model.StockStatus("backordered").Validate())
	assert.Error(t, model.StockStatus("").Validate())
}
