package services

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

// ProductSvcFacade defines operations for stock management and the
// storefront catalog.
type ProductSvcFacade interface {
	// CreateProduct registers a new stock item.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// GetProductByID retrieves a product.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products for staff views (includes inactive ones).
	ListProducts(ctx context.Context, category string, limit int, offset int) ([]domain.Product, error)

	// ListCatalog retrieves active products for the public storefront,
	// served through the catalog cache when one is configured.
	ListCatalog(ctx context.Context, category string, limit int, offset int) ([]domain.Product, error)

	// UpdateProduct updates mutable product fields.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)

	// AdjustStock applies a manual stock correction or restock.
	AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, updaterUserID string) (*domain.Product, error)
}
