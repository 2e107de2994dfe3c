// Package seed populates the catalog with a generated demo inventory.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/duka-labs/inventory-catalog/internal/apperr"
	"github.com/duka-labs/inventory-catalog/internal/model"
	"github.com/duka-labs/inventory-catalog/internal/service"
	"github.com/duka-labs/inventory-catalog/pkg/money"
	"github.com/duka-labs/inventory-catalog/pkg/zerror"
)

type catalogEntry struct {
	name        string
	description string
}

var catalog = map[model.Category][]catalogEntry{
	model.CategoryElectronics: {
		{"Wireless Headphones", "Premium wireless headphones with noise cancellation"},
		{"Gaming Mouse", "High-precision gaming mouse with RGB lighting"},
		{"Bluetooth Speaker", "Portable Bluetooth speaker with excellent sound quality"},
		{"Smartphone Charger", "Fast charging USB-C smartphone charger"},
		{"Laptop Stand", "Adjustable aluminum laptop stand"},
		{"Webcam HD", "Full HD 1080p webcam for video calls"},
		{"Wireless Keyboard", "Compact wireless keyboard with backlight"},
		{"Power Bank", "20000mAh portable power bank"},
		{"USB Hub", "4-port USB 3.0 hub"},
		{"Smart Watch", "Fitness tracking smartwatch"},
	},
	model.CategorySupplies: {
		{"Ballpoint Pens", "Pack of 12 blue ballpoint pens"},
		{"Sticky Notes", "Colorful sticky note pads"},
		{"Printer Paper", "A4 white printer paper 500 sheets"},
		{"Stapler", "Heavy-duty office stapler"},
		{"Paper Clips", "Box of 100 metal paper clips"},
		{"Highlighters", "Set of 6 fluorescent highlighters"},
		{"Notebooks", "Spiral bound lined notebooks"},
		{"Folders", "Manila file folders pack of 25"},
		{"Scissors", "Stainless steel office scissors"},
		{"Calculator", "Scientific calculator"},
	},
	model.CategoryFurniture: {
		{"Office Chair", "Ergonomic office chair with lumbar support"},
		{"Desk", "Modern computer desk with drawers"},
		{"Bookshelf", "5-tier wooden bookshelf"},
		{"Filing Cabinet", "4-drawer metal filing cabinet"},
		{"Coffee Table", "Glass top coffee table"},
		{"Monitor Stand", "Bamboo monitor riser stand"},
		{"Side Table", "Compact wooden side table"},
		{"Storage Bench", "Upholstered storage bench"},
		{"Standing Desk", "Height adjustable standing desk"},
		{"Visitor Chair", "Stackable visitor chair"},
	},
	model.CategoryGroceries: {
		{"Instant Coffee", "Premium instant coffee 200g jar"},
		{"Green Tea", "Organic green tea 50 bags"},
		{"Rice", "Long grain rice 5kg bag"},
		{"Cooking Oil", "Sunflower cooking oil 2L"},
		{"Wheat Flour", "All-purpose wheat flour 2kg"},
		{"Sugar", "White granulated sugar 1kg"},
		{"Table Salt", "Iodized table salt 500g"},
		{"Drinking Water", "Mineral water 12x500ml pack"},
		{"Biscuits", "Assorted biscuit tin 750g"},
		{"Milk Powder", "Full cream milk powder 900g"},
	},
}

var skuPrefixes = map[model.Category]string{
	model.CategoryElectronics: "ELE",
	model.CategorySupplies:    "SUP",
	model.CategoryFurniture:   "FUR",
	model.CategoryGroceries:   "GRO",
}

// Generator produces reproducible demo products for a given seed.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Products generates count products spread evenly over the categories, with
// unique SKUs and a weighted stock distribution so the dashboard has all
// three stock buckets to show: roughly 10% out of stock, 20% low stock, the
// rest fully stocked.
func (g *Generator) Products(count int) []service.CreateProductParams {
	categories := model.Categories()
	products := make([]service.CreateProductParams, 0, count)

	for i := 0; i < count; i++ {
		category := categories[i%len(categories)]
		entries := catalog[category]
		entry := entries[(i/len(categories))%len(entries)]

		products = append(products, service.CreateProductParams{
			Sku:           fmt.Sprintf("%s%03d", skuPrefixes[category], i/len(categories)+1),
			Name:          entry.name,
			Category:      category,
			Price:         g.price(),
			StockQuantity: g.stockQuantity(),
			Description:   entry.description,
		})
	}

	return products
}

func (g *Generator) price() float64 {
	cents := g.rng.Int64N(999_500) + 500 // 5.00 .. 9999.99
	return float64(cents) / 100
}

func (g *Generator) stockQuantity() int {
	switch roll := g.rng.IntN(10); {
	case roll == 0:
		return 0
	case roll <= 2:
		return 1 + g.rng.IntN(9)
	default:
		return model.LowStockThreshold + g.rng.IntN(91)
	}
}

// Run inserts the generated products, skipping SKUs that already exist so
// reseeding an existing database is safe.
func Run(ctx context.Context, logger *slog.Logger, productSvc service.ProductService, count int, seed uint64) error {
	created, skipped := 0, 0
	totalValue := 0.0

	for _, params := range NewGenerator(seed).Products(count) {
		if _, err := productSvc.CreateProduct(ctx, params); err != nil {
			var zErr zerror.ZError
			if errors.As(err, &zErr) && zErr.Code() == apperr.SkuAlreadyExistsCode {
				skipped++
				continue
			}
			return fmt.Errorf("create product %s: %w", params.Sku, err)
		}
		created++
		totalValue += params.Price * float64(params.StockQuantity)
	}

	logger.InfoContext(ctx, "seeding completed",
		slog.Int("created", created),
		slog.Int("skipped", skipped),
		slog.String("inventory_value", money.Format(money.DefaultCurrency, totalValue)))

	return nil
}
