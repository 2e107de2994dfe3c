package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/duka-labs/inventory-catalog/internal/apperr"
	"github.com/duka-labs/inventory-catalog/internal/model"
	"github.com/duka-labs/inventory-catalog/internal/storage/db"
)

const productColumns = "id, sku, name, category, price, stock_quantity, description, created_at, updated_at"

// ListProductsParams are the filter and window parameters for a product
// listing. Zero-valued filters impose no constraint.
type ListProductsParams struct {
	Search   string
	Category model.Category
	Status   model.StockStatus
	Limit    int
	Offset   int
}

// Stats is one full-scan aggregation over the products table.
type Stats struct {
	TotalProducts   int
	LowStockItems   int
	OutOfStock      int
	TotalCategories int
	TotalValue      float64
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	CreateProduct(ctx context.Context, product model.Product) (model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, int, error)
	ListLowStockProducts(ctx context.Context) ([]model.Product, error)
	ListRecentProducts(ctx context.Context, limit int) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (Stats, error)
	CountProductsByCategory(ctx context.Context) (map[string]int, error)
}

type productRepository struct {
	db db.DB
}

func NewProductRepository(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	price, err := priceToNumeric(product.Price)
	if err != nil {
		return model.Product{}, err
	}

	if product.StockQuantity > math.MaxInt32 || product.StockQuantity < 0 {
		return model.Product{}, fmt.Errorf("stock quantity out of range: %d", product.StockQuantity)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO products (sku, name, category, price, stock_quantity, description, created_at, updated_at)
		VALUES (@sku, @name, @category, @price, @stock_quantity, @description, @created_at, @updated_at)
		RETURNING id
	`, pgx.NamedArgs{
		"sku":            product.Sku,
		"name":           product.Name,
		"category":       product.Category.String(),
		"price":          price,
		"stock_quantity": int32(product.StockQuantity),
		"description":    product.Description,
		"created_at":     product.CreatedAt,
		"updated_at":     product.UpdatedAt,
	})

	if err := row.Scan(&product.ID); err != nil {
		if isUniqueViolation(err) {
			return model.Product{}, apperr.SkuAlreadyExistsErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = @id",
		pgx.NamedArgs{"id": id},
	)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (r productRepository) ListProducts(ctx context.Context, params ListProductsParams) ([]model.Product, int, error) {
	countQuery, listQuery, args := buildListProductsQuery(params)

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	products, err := r.queryProducts(ctx, listQuery, args)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

func (r productRepository) ListLowStockProducts(ctx context.Context) ([]model.Product, error) {
	products, err := r.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE stock_quantity < @threshold ORDER BY id",
		pgx.NamedArgs{"threshold": model.LowStockThreshold},
	)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}

	return products, nil
}

func (r productRepository) ListRecentProducts(ctx context.Context, limit int) ([]model.Product, error) {
	products, err := r.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY created_at DESC, id DESC LIMIT @limit",
		pgx.NamedArgs{"limit": limit},
	)
	if err != nil {
		return nil, fmt.Errorf("list recent products: %w", err)
	}

	return products, nil
}

func (r productRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	price, err := priceToNumeric(product.Price)
	if err != nil {
		return err
	}

	if product.StockQuantity > math.MaxInt32 || product.StockQuantity < 0 {
		return fmt.Errorf("stock quantity out of range: %d", product.StockQuantity)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET sku            = @sku,
			name           = @name,
			category       = @category,
			price          = @price,
			stock_quantity = @stock_quantity,
			description    = @description,
			updated_at     = @updated_at
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":             product.ID,
		"sku":            product.Sku,
		"name":           product.Name,
		"category":       product.Category.String(),
		"price":          price,
		"stock_quantity": int32(product.StockQuantity),
		"description":    product.Description,
		"updated_at":     product.UpdatedAt,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.SkuAlreadyExistsErr.WrapParent(err)
		}
		return fmt.Errorf("update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.ProductNotFoundErr
	}

	return nil
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = @id", pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.ProductNotFoundErr
	}

	return nil
}

func (r productRepository) GetStats(ctx context.Context) (Stats, error) {
	var (
		stats      Stats
		totalValue pgtype.Numeric
	)

	row := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE stock_quantity BETWEEN 1 AND @low_max),
			COUNT(*) FILTER (WHERE stock_quantity = 0),
			COUNT(DISTINCT category),
			COALESCE(SUM(price * stock_quantity), 0)
		FROM products
	`, pgx.NamedArgs{"low_max": model.LowStockThreshold - 1})

	if err := row.Scan(
		&stats.TotalProducts,
		&stats.LowStockItems,
		&stats.OutOfStock,
		&stats.TotalCategories,
		&totalValue,
	); err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}

	value, err := totalValue.Float64Value()
	if err != nil {
		return Stats{}, fmt.Errorf("convert total value to float64: %w", err)
	}
	stats.TotalValue = value.Float64

	return stats, nil
}

func (r productRepository) CountProductsByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, "SELECT category, COUNT(*) FROM products GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("count products by category: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}

	return counts, nil
}

func (r productRepository) queryProducts(ctx context.Context, query string, args pgx.NamedArgs) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// buildListProductsQuery produces the count query and the windowed select for
// one listing page, both over the same filter set. The select is ordered by id
// so consecutive pages neither skip nor repeat rows.
func buildListProductsQuery(params ListProductsParams) (string, string, pgx.NamedArgs) {
	whereClause, args := buildProductFilters(params)

	countQuery := "SELECT COUNT(*) FROM products" + whereClause

	listQuery := "SELECT " + productColumns + " FROM products" + whereClause + " ORDER BY id"
	if params.Limit > 0 {
		listQuery += fmt.Sprintf(" LIMIT %d OFFSET %d", params.Limit, params.Offset)
	}

	return countQuery, listQuery, args
}

// buildProductFilters translates listing filters into a WHERE clause and its
// named arguments. All supplied filters AND-combine; empty values add nothing.
func buildProductFilters(params ListProductsParams) (string, pgx.NamedArgs) {
	conditions := []string{}
	args := pgx.NamedArgs{}

	if params.Search != "" {
		conditions = append(conditions, "(name ILIKE @search OR sku ILIKE @search OR description ILIKE @search)")
		args["search"] = "%" + escapeLike(params.Search) + "%"
	}

	if params.Category != "" {
		conditions = append(conditions, "category = @category")
		args["category"] = params.Category.String()
	}

	switch params.Status {
	case model.StockStatusOutOfStock:
		conditions = append(conditions, "stock_quantity = 0")
	case model.StockStatusLowStock:
		conditions = append(conditions, "stock_quantity BETWEEN 1 AND @low_max")
		args["low_max"] = model.LowStockThreshold - 1
	case model.StockStatusInStock:
		conditions = append(conditions, "stock_quantity >= @in_min")
		args["in_min"] = model.LowStockThreshold
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		product  model.Product
		category string
		price    pgtype.Numeric
		quantity int32
	)

	if err := row.Scan(
		&product.ID,
		&product.Sku,
		&product.Name,
		&category,
		&price,
		&quantity,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return model.Product{}, err
	}

	priceValue, err := price.Float64Value()
	if err != nil {
		return model.Product{}, fmt.Errorf("convert price to float64: %w", err)
	}

	product.Category = model.Category(category)
	product.Price = priceValue.Float64
	product.StockQuantity = int(quantity)

	return product, nil
}

func priceToNumeric(value float64) (pgtype.Numeric, error) {
	var price pgtype.Numeric
	if err := price.Scan(fmt.Sprintf("%.2f", value)); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("scan price: %w", err)
	}
	return price, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
