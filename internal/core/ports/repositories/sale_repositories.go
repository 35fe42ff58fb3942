package repositories

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// SaleReader defines read operations for sales data
type SaleReader interface {
	// FindSaleByID retrieves a sale with its line items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a paginated list of sales ordered by sale date
	// descending, using token-based pagination.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sales data
type SaleWriter interface {
	// SaveSale persists the sale, its items and the stock decrements in a
	// single database transaction. It fails without side effects when any
	// product has insufficient stock.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
