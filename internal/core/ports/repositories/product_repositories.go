package repositories

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products keyed by ID.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated list of products, optionally
	// filtered by category. Inactive products are excluded when
	// activeOnly is set (storefront reads).
	ListProducts(ctx context.Context, category string, activeOnly bool, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// AdjustStock changes the stock quantity by delta (positive or
	// negative) and fails when the result would go below zero.
	AdjustStock(ctx context.Context, productID string, delta int, updatedBy string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
