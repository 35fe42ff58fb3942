package services

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

// SaleResult pairs a finalized sale with the ledger entry it created, if
// the sale was only partially paid.
type SaleResult struct {
	Sale        *domain.Sale
	LedgerEntry *domain.LedgerEntry
}

// SaleSvcFacade defines operations for POS sales.
type SaleSvcFacade interface {
	// CreateSale finalizes a sale: prices the items from current product
	// data, decrements stock, persists everything atomically, and opens a
	// ledger entry when the initial payment does not cover the total.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, cashierUserID string) (*SaleResult, error)

	// GetSaleByID retrieves a sale with its line items.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a paginated list of sales.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}
