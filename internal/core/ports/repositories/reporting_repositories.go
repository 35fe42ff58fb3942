package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryRow is one aggregated day of sales.
type SalesSummaryRow struct {
	Date       time.Time
	SaleCount  int
	GrossTotal decimal.Decimal
	PaidTotal  decimal.Decimal
}

// OutstandingSummary aggregates the unsettled side of the ledger.
type OutstandingSummary struct {
	EntryCount     int
	TotalDebt      decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalRemaining decimal.Decimal
}

// ReportingRepositoryFacade defines read-only aggregation queries used by reports.
type ReportingRepositoryFacade interface {
	// SalesSummary aggregates sales per day within [from, to].
	SalesSummary(ctx context.Context, from time.Time, to time.Time) ([]SalesSummaryRow, error)

	// OutstandingLedgerSummary aggregates all unsettled ledger entries.
	OutstandingLedgerSummary(ctx context.Context) (*OutstandingSummary, error)
}
