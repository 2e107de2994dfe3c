package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/duka-labs/inventory-catalog/internal/apperr"
	"github.com/duka-labs/inventory-catalog/internal/model"
	"github.com/duka-labs/inventory-catalog/internal/repository"
	"github.com/duka-labs/inventory-catalog/internal/service"
	"github.com/duka-labs/inventory-catalog/internal/storage/db"
	"github.com/duka-labs/inventory-catalog/pkg/ptr"
	"github.com/duka-labs/inventory-catalog/pkg/validator"
	"github.com/duka-labs/inventory-catalog/pkg/zerror"
)

// fakeDB satisfies db.DB for service tests. Only WithTx is expected to run;
// it hands the same fake back to the callback.
type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }

func (fakeDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (fakeDB) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (fakeDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }

func (d fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(d)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) WithDB(_ db.DB) repository.ProductRepository { return m }

func (m *mockProductRepository) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepository) ListProducts(ctx context.Context, params repository.ListProductsParams) ([]model.Product, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Product), args.Int(1), args.Error(2)
}

func (m *mockProductRepository) ListLowStockProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepository) ListRecentProducts(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, product model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) GetStats(ctx context.Context) (repository.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.Stats), args.Error(1)
}

func (m *mockProductRepository) CountProductsByCategory(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// windowedProductRepository serves ListProducts from an in-memory slice held
// in id order, applying the requested window like the real query does.
type windowedProductRepository struct {
	mockProductRepository
	products []model.Product
}

func (r *windowedProductRepository) ListProducts(_ context.Context, params repository.ListProductsParams) ([]model.Product, int, error) {
	total := len(r.products)

	start := params.Offset
	if start > total {
		start = total
	}
	end := total
	if params.Limit > 0 && start+params.Limit < end {
		end = start + params.Limit
	}

	return r.products[start:end], total, nil
}

func newService(t *testing.T, repo repository.ProductRepository) service.ProductService {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	return service.NewProductService(fakeDB{}, repo, v)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var validationErrs govalidator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs), "expected validation error, got %v", err)
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filters and window to the repository", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		repo.On("ListProducts", ctx, repository.ListProductsParams{
			Search:   "mouse",
			Category: model.CategoryElectronics,
			Status:   model.StockStatusLowStock,
			Limit:    10,
			Offset:   20,
		}).Return([]model.Product{}, 0, nil)

		result, err := svc.ListProducts(ctx, service.ListProductsParams{
			Search:   "mouse",
			Category: model.CategoryElectronics,
			Status:   model.StockStatusLowStock,
			Page:     3,
			PerPage:  10,
		})
		require.NoError(t, err)
		assert.Empty(t, result.Products)
		repo.AssertExpectations(t)
	})

	t.Run("page metadata reflects the total count", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		repo.On("ListProducts", ctx, mock.Anything).
			Return([]model.Product{{ID: 11}}, 11, nil)

		result, err := svc.ListProducts(ctx, service.ListProductsParams{Page: 2, PerPage: 10})
		require.NoError(t, err)
		assert.Equal(t, 11, result.Page.Total)
		assert.Equal(t, 2, result.Page.Pages)
		assert.True(t, result.Page.HasPrev)
		assert.False(t, result.Page.HasNext)
	})

	t.Run("concatenating all pages reproduces the full set in order", func(t *testing.T) {
		repo := &windowedProductRepository{}
		for i := int64(1); i <= 23; i++ {
			repo.products = append(repo.products, model.Product{ID: i})
		}
		svc := newService(t, repo)

		var collected []model.Product
		for page := 1; ; page++ {
			result, err := svc.ListProducts(ctx, service.ListProductsParams{Page: page, PerPage: 10})
			require.NoError(t, err)

			assert.Equal(t, page, result.Page.Number)
			assert.Equal(t, 23, result.Page.Total)
			assert.Equal(t, 3, result.Page.Pages)
			assert.Equal(t, page > 1, result.Page.HasPrev)

			collected = append(collected, result.Products...)
			if !result.Page.HasNext {
				break
			}
		}

		require.Len(t, collected, 23, "pages must neither skip nor repeat rows")
		for i, p := range collected {
			assert.Equal(t, int64(i+1), p.ID)
		}
	})

	t.Run("page beyond the last yields an empty list, not an error", func(t *testing.T) {
		repo := &windowedProductRepository{products: []model.Product{{ID: 1}, {ID: 2}}}
		svc := newService(t, repo)

		result, err := svc.ListProducts(ctx, service.ListProductsParams{Page: 9, PerPage: 10})
		require.NoError(t, err)
		assert.Empty(t, result.Products)
		assert.Equal(t, 2, result.Page.Total)
		assert.False(t, result.Page.HasNext)
	})

	t.Run("rejects page below 1", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		_, err := svc.ListProducts(ctx, service.ListProductsParams{Page: 0, PerPage: 10})
		assertValidationError(t, err)
		repo.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})

	t.Run("rejects per_page above the cap", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		_, err := svc.ListProducts(ctx, service.ListProductsParams{Page: 1, PerPage: 101})
		assertValidationError(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		_, err := svc.ListProducts(ctx, service.ListProductsParams{
			Category: model.Category("Toys"),
			Page:     1,
			PerPage:  10,
		})
		assertValidationError(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		_, err := svc.ListProducts(ctx, service.ListProductsParams{
			Status:  model.StockStatus("backordered"),
			Page:    1,
			PerPage: 10,
		})
		assertValidationError(t, err)
	})
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a product with matching timestamps and rounded price", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		var captured model.Product
		repo.On("CreateProduct", ctx, mock.MatchedBy(func(p model.Product) bool {
			captured = p
			return true
		})).Return(model.Product{ID: 1}, nil)

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Sku:           "ELE001",
			Name:          "Wireless Headphones",
			Category:      model.CategoryElectronics,
			Price:         1499.999,
			StockQuantity: 25,
		})
		require.NoError(t, err)

		assert.Equal(t, 1500.00, captured.Price)
		assert.False(t, captured.CreatedAt.IsZero())
		assert.Equal(t, captured.CreatedAt, captured.UpdatedAt)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Name:     "No SKU",
			Category: model.CategorySupplies,
		})
		assertValidationError(t, err)
		repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative price and stock", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Sku:      "SUP001",
			Name:     "Stapler",
			Category: model.CategorySupplies,
			Price:    -1,
		})
		assertValidationError(t, err)

		_, err = svc.CreateProduct(ctx, service.CreateProductParams{
			Sku:           "SUP001",
			Name:          "Stapler",
			Category:      model.CategorySupplies,
			StockQuantity: -1,
		})
		assertValidationError(t, err)
	})

	t.Run("surfaces duplicate sku as a conflict", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		repo.On("CreateProduct", ctx, mock.Anything).
			Return(model.Product{}, error(apperr.SkuAlreadyExistsErr))

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{
			Sku:      "ELE001",
			Name:     "Duplicate",
			Category: model.CategoryElectronics,
		})

		var zErr zerror.ZError
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, apperr.SkuAlreadyExistsCode, zErr.Code())
		assert.Equal(t, zerror.StatusConflict, zErr.Status())
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	existing := model.Product{
		ID:            7,
		Sku:           "FUR001",
		Name:          "Office Chair",
		Category:      model.CategoryFurniture,
		Price:         8999.00,
		StockQuantity: 12,
		Description:   "Ergonomic office chair",
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	t.Run("applies only the supplied fields and refreshes updated_at", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		repo.On("GetProduct", ctx, int64(7)).Return(existing, nil)

		var captured model.Product
		repo.On("UpdateProduct", ctx, mock.MatchedBy(func(p model.Product) bool {
			captured = p
			return true
		})).Return(nil)

		updated, err := svc.UpdateProduct(ctx, 7, service.UpdateProductParams{
			StockQuantity: ptr.New(3),
		})
		require.NoError(t, err)

		assert.Equal(t, 3, captured.StockQuantity)
		assert.Equal(t, "FUR001", captured.Sku)
		assert.Equal(t, "Office Chair", captured.Name)
		assert.Equal(t, created, captured.CreatedAt, "created_at must not change")
		assert.True(t, captured.UpdatedAt.After(created), "updated_at must move forward")
		assert.Equal(t, captured, updated)
	})

	t.Run("rejects invalid partial fields", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		_, err := svc.UpdateProduct(ctx, 7, service.UpdateProductParams{
			Price: ptr.New(-5.0),
		})
		assertValidationError(t, err)

		_, err = svc.UpdateProduct(ctx, 7, service.UpdateProductParams{
			Category: ptr.New(model.Category("Toys")),
		})
		assertValidationError(t, err)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := &mockProductRepository{}
		svc := newService(t, repo)

		repo.On("GetProduct", ctx, int64(404)).
			Return(model.Product{}, error(apperr.ProductNotFoundErr))

		_, err := svc.UpdateProduct(ctx, 404, service.UpdateProductParams{Name: ptr.New("x")})

		var zErr zerror.ZError
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, apperr.ProductNotFoundCode, zErr.Code())
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	repo := &mockProductRepository{}
	svc := newService(t, repo)

	repo.On("DeleteProduct", ctx, int64(1)).Return(nil)
	require.NoError(t, svc.DeleteProduct(ctx, 1))

	repo.On("DeleteProduct", ctx, int64(404)).Return(error(apperr.ProductNotFoundErr))
	err := svc.DeleteProduct(ctx, 404)

	var zErr zerror.ZError
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, zerror.StatusNotFound, zErr.Status())
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	repo := &mockProductRepository{}
	svc := newService(t, repo)

	repo.On("GetStats", ctx).Return(repository.Stats{
		TotalProducts:   3,
		LowStockItems:   1,
		OutOfStock:      1,
		TotalCategories: 2,
		TotalValue:      125000.50,
	}, nil)
	repo.On("CountProductsByCategory", ctx).Return(map[string]int{
		"Electronics": 2,
		"Supplies":    1,
	}, nil)
	repo.On("ListRecentProducts", ctx, 5).Return([]model.Product{
		{Name: "Gaming Mouse", Sku: "ELE002", StockQuantity: 3, CreatedAt: time.Date(2026, 2, 1, 8, 15, 0, 0, time.UTC)},
		{Name: "Office Chair", Sku: "FUR001", StockQuantity: 40, CreatedAt: time.Date(2026, 2, 1, 7, 0, 0, 0, time.UTC)},
	}, nil)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 2, stats.TotalCategories)
	assert.Equal(t, 125000.50, stats.TotalValue)
	assert.Equal(t, map[string]int{"Electronics": 2, "Supplies": 1}, stats.Categories)

	require.Len(t, stats.RecentActivity, 2)
	assert.Equal(t, "Low stock alert - Only 3 units left", stats.RecentActivity[0].Title)
	assert.Equal(t, "Gaming Mouse - SKU: ELE002", stats.RecentActivity[0].Description)
	assert.Equal(t, "08:15", stats.RecentActivity[0].Time)
	assert.Equal(t, "New product added", stats.RecentActivity[1].Title)
}
