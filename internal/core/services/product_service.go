package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/cache"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
)

type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
	catalog     cache.CatalogCache
	cacheTTL    time.Duration
}

// NewProductService creates a new ProductService. The catalog cache fronts
// storefront reads; pass a NoopCatalogCache when Redis is not configured.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, catalog cache.CatalogCache, cacheTTL time.Duration) portssvc.ProductSvcFacade {
	if catalog == nil {
		catalog = cache.NoopCatalogCache{}
	}
	return &productService{productRepo: productRepo, catalog: catalog, cacheTTL: cacheTTL}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.SellingPrice.IsNegative() || req.PurchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices must not be negative", apperrors.ErrInvalidAmount)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		SKU:           req.SKU,
		Name:          req.Name,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQty:      req.StockQty,
		SupplierID:    req.SupplierID,
		ImageURL:      req.ImageURL,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.invalidateCatalog(ctx)
	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productService) ListProducts(ctx context.Context, category string, limit int, offset int) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, category, false, limit, offset)
}

func (s *productService) ListCatalog(ctx context.Context, category string, limit int, offset int) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	key := fmt.Sprintf("%s:%d:%d", category, limit, offset)

	if products, found, err := s.catalog.Get(ctx, key); err != nil {
		// A broken cache must not take the storefront down with it.
		logger.Warn("Catalog cache read failed", slog.String("error", err.Error()))
	} else if found {
		return products, nil
	}

	products, err := s.productRepo.ListProducts(ctx, category, true, limit, offset)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.Set(ctx, key, products, s.cacheTTL); err != nil {
		logger.Warn("Catalog cache write failed", slog.String("error", err.Error()))
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: purchase price must not be negative", apperrors.ErrInvalidAmount)
		}
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return nil, fmt.Errorf("%w: selling price must not be negative", apperrors.ErrInvalidAmount)
		}
		product.SellingPrice = *req.SellingPrice
	}
	if req.SupplierID != nil {
		product.SupplierID = *req.SupplierID
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}

	s.invalidateCatalog(ctx)
	return product, nil
}

func (s *productService) AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, updaterUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.AdjustStock(ctx, productID, req.Delta, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}

	s.invalidateCatalog(ctx)
	logger.Info("Stock adjusted",
		slog.String("product_id", productID),
		slog.Int("delta", req.Delta),
		slog.String("reason", req.Reason),
	)
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productService) invalidateCatalog(ctx context.Context) {
	if err := s.catalog.Invalidate(ctx); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Catalog cache invalidation failed", slog.String("error", err.Error()))
	}
}
