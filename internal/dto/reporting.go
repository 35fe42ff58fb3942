package dto

import (
	"time"

	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// SalesSummaryRowResponse is one aggregated day in a sales report.
type SalesSummaryRowResponse struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	SaleCount  int             `json:"saleCount"`
	GrossTotal decimal.Decimal `json:"grossTotal"`
	PaidTotal  decimal.Decimal `json:"paidTotal"`
}

// SalesSummaryResponse is the sales report over a date range.
type SalesSummaryResponse struct {
	From time.Time                 `json:"from"`
	To   time.Time                 `json:"to"`
	Rows []SalesSummaryRowResponse `json:"rows"`
}

// OutstandingSummaryResponse aggregates the unsettled ledger.
type OutstandingSummaryResponse struct {
	EntryCount     int             `json:"entryCount"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}

// ToSalesSummaryResponse converts repository rows to the report DTO.
func ToSalesSummaryResponse(from, to time.Time, rows []portsrepo.SalesSummaryRow) SalesSummaryResponse {
	out := make([]SalesSummaryRowResponse, len(rows))
	for i, row := range rows {
		out[i] = SalesSummaryRowResponse{
			Date:       row.Date.Format("2006-01-02"),
			SaleCount:  row.SaleCount,
			GrossTotal: row.GrossTotal,
			PaidTotal:  row.PaidTotal,
		}
	}
	return SalesSummaryResponse{From: from, To: to, Rows: out}
}

// ToOutstandingSummaryResponse converts the aggregate to its DTO.
func ToOutstandingSummaryResponse(s *portsrepo.OutstandingSummary) OutstandingSummaryResponse {
	return OutstandingSummaryResponse{
		EntryCount:     s.EntryCount,
		TotalDebt:      s.TotalDebt,
		TotalPaid:      s.TotalPaid,
		TotalRemaining: s.TotalRemaining,
	}
}
