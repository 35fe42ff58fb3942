package cache

import (
	"context"
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// CatalogCache fronts storefront catalog reads. A miss returns found=false
// with no error.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]domain.Product, bool, error)
	Set(ctx context.Context, key string, products []domain.Product, ttl time.Duration) error
	// Invalidate drops all catalog keys after a product mutation.
	Invalidate(ctx context.Context) error
}

// NoopCatalogCache is used when Redis is not configured.
type NoopCatalogCache struct{}

func (NoopCatalogCache) Get(_ context.Context, _ string) ([]domain.Product, bool, error) {
	return nil, false, nil
}

func (NoopCatalogCache) Set(_ context.Context, _ string, _ []domain.Product, _ time.Duration) error {
	return nil
}

func (NoopCatalogCache) Invalidate(_ context.Context) error {
	return nil
}
