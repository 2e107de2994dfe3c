package model

import (
	"fmt"
	"time"
)

type Product struct {
	ID            int64     `json:"id"`
	Sku           string    `json:"sku"`
	Name          string    `json:"name"`
	Category      Category  `json:"category"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockStatus returns the derived stock status for the product's current
// quantity. It is never persisted.
func (p Product) StockStatus() StockStatus {
	return StockStatusOf(p.StockQuantity)
}

// Category is the product category. The set below is what the catalog ships
// with; the storage column is an open string, so adding a value here is all
// it takes to extend it.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategorySupplies    Category = "Supplies"
	CategoryFurniture   Category = "Furniture"
	CategoryGroceries   Category = "Groceries"
)

// Categories lists all known categories in a fixed order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategorySupplies,
		CategoryFurniture,
		CategoryGroceries,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) Validate() error {
	switch c {
	case CategoryElectronics, CategorySupplies, CategoryFurniture, CategoryGroceries:
		return nil
	}
	return fmt.Errorf("unknown category: %s", c)
}

// StockStatus is derived from stock quantity and never stored.
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "out-of-stock"
	StockStatusLowStock   StockStatus = "low-stock"
	StockStatusInStock    StockStatus = "in-stock"
)

// LowStockThreshold is the first quantity that counts as fully in stock.
// Quantities in [1, LowStockThreshold) are low stock.
const LowStockThreshold = 10

// StockStatusOf classifies a stock quantity.
func StockStatusOf(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOutOfStock
	case quantity < LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

func (s StockStatus) String() string {
	return string(s)
}

func (s StockStatus) Validate() error {
	switch s {
	case StockStatusOutOfStock, StockStatusLowStock, StockStatusInStock:
		return nil
	}
	return fmt.Errorf("unknown stock status: %s", s)
}
