package services

import (
	"context"
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

// ReportingSvcFacade defines read-only reporting operations.
type ReportingSvcFacade interface {
	// SalesSummary aggregates sales per day within [from, to].
	SalesSummary(ctx context.Context, from time.Time, to time.Time) (*dto.SalesSummaryResponse, error)

	// OutstandingLedgerSummary aggregates the unsettled ledger.
	OutstandingLedgerSummary(ctx context.Context) (*dto.OutstandingSummaryResponse, error)
}

// ReceiptSvcFacade renders printable documents.
type ReceiptSvcFacade interface {
	// RenderLedgerReceipt renders a PDF payment receipt for a ledger entry.
	RenderLedgerReceipt(ctx context.Context, entryID string) ([]byte, error)

	// RenderSalesReport renders a PDF sales summary for a date range.
	RenderSalesReport(ctx context.Context, from time.Time, to time.Time) ([]byte, error)
}
