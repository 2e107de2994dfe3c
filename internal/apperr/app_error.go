package apperr

import "github.com/duka-labs/inventory-catalog/pkg/zerror"

const (
	ValidationErrorCode  = "VALIDATION_FAILED"
	ProductNotFoundCode  = "PRODUCT_NOT_FOUND"
	SkuAlreadyExistsCode = "SKU_ALREADY_EXISTS"
	StoreUnavailableCode = "STORE_UNAVAILABLE"
)

var (
	ValidationErr       = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr  = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	SkuAlreadyExistsErr = zerror.NewConflict(SkuAlreadyExistsCode, "a product with this sku already exists")
	StoreUnavailableErr = zerror.NewServiceUnavailable(StoreUnavailableCode, "product store unavailable")
)
