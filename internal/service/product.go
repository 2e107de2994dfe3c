package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/duka-labs/inventory-catalog/internal/model"
	"github.com/duka-labs/inventory-catalog/internal/repository"
	"github.com/duka-labs/inventory-catalog/internal/storage/db"
	"github.com/duka-labs/inventory-catalog/pkg/paging"
	"github.com/duka-labs/inventory-catalog/pkg/validator"
)

// ListProductsParams are the validated inputs of the product listing
// contract. Empty filter values impose no constraint.
type ListProductsParams struct {
	Search   string            `validate:"omitempty,max=255"`
	Category model.Category    `validate:"omitempty,enum"`
	Status   model.StockStatus `validate:"omitempty,enum"`
	Page     int               `validate:"gte=1"`
	PerPage  int               `validate:"gte=1,lte=100"`
}

// ListProductsResult is one page of matching products plus its metadata.
type ListProductsResult struct {
	Products []model.Product
	Page     paging.Page
}

type CreateProductParams struct {
	Sku           string         `validate:"required,max=50"`
	Name          string         `validate:"required,max=255"`
	Category      model.Category `validate:"required,enum"`
	Price         float64        `validate:"gte=0"`
	StockQuantity int            `validate:"gte=0"`
	Description   string         `validate:"omitempty,max=2000"`
}

// UpdateProductParams is a partial update: nil fields keep their current
// value.
type UpdateProductParams struct {
	Sku           *string         `validate:"omitempty,min=1,max=50"`
	Name          *string         `validate:"omitempty,min=1,max=255"`
	Category      *model.Category `validate:"omitempty,enum"`
	Price         *float64        `validate:"omitempty,gte=0"`
	StockQuantity *int            `validate:"omitempty,gte=0"`
	Description   *string         `validate:"omitempty,max=2000"`
}

type ProductService interface {
	ListProducts(ctx context.Context, params ListProductsParams) (ListProductsResult, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListLowStockProducts(ctx context.Context) ([]model.Product, error)
	GetStats(ctx context.Context) (Stats, error)
}

type productService struct {
	db          db.DB
	productRepo repository.ProductRepository
	validator   validator.Validator
}

func NewProductService(
	db db.DB,
	productRepo repository.ProductRepository,
	validator validator.Validator,
) ProductService {
	return &productService{
		db:          db,
		productRepo: productRepo,
		validator:   validator,
	}
}

func (s *productService) ListProducts(ctx context.Context, params ListProductsParams) (ListProductsResult, error) {
	if err := s.validator.Validate(params); err != nil {
		return ListProductsResult{}, fmt.Errorf("validate list products params: %w", err)
	}

	products, total, err := s.productRepo.ListProducts(ctx, repository.ListProductsParams{
		Search:   params.Search,
		Category: params.Category,
		Status:   params.Status,
		Limit:    params.PerPage,
		Offset:   paging.Offset(params.Page, params.PerPage),
	})
	if err != nil {
		return ListProductsResult{}, fmt.Errorf("product repository list products: %w", err)
	}

	return ListProductsResult{
		Products: products,
		Page:     paging.New(params.Page, params.PerPage, total),
	}, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, fmt.Errorf("validate create product params: %w", err)
	}

	now := time.Now().UTC()
	product := model.Product{
		Sku:           params.Sku,
		Name:          params.Name,
		Category:      params.Category,
		Price:         roundPrice(params.Price),
		StockQuantity: params.StockQuantity,
		Description:   params.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository create product: %w", err)
	}

	return created, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, fmt.Errorf("validate update product params: %w", err)
	}

	var updated model.Product
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		repo := s.productRepo.WithDB(db)

		product, err := repo.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("product repository get product: %w", err)
		}

		if params.Sku != nil {
			product.Sku = *params.Sku
		}
		if params.Name != nil {
			product.Name = *params.Name
		}
		if params.Category != nil {
			product.Category = *params.Category
		}
		if params.Price != nil {
			product.Price = roundPrice(*params.Price)
		}
		if params.StockQuantity != nil {
			product.StockQuantity = *params.StockQuantity
		}
		if params.Description != nil {
			product.Description = *params.Description
		}
		product.UpdatedAt = time.Now().UTC()

		if err := repo.UpdateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository update product: %w", err)
		}

		updated = product
		return nil
	}); err != nil {
		return model.Product{}, err
	}

	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("product repository delete product: %w", err)
	}

	return nil
}

func (s *productService) ListLowStockProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListLowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list low stock products: %w", err)
	}

	return products, nil
}

// roundPrice normalizes a price to two fractional digits, the precision of
// the stored NUMERIC(10,2) column.
func roundPrice(value float64) float64 {
	return math.Round(value*100) / 100
}
