package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) SalesSummary(ctx context.Context, from time.Time, to time.Time) ([]portsrepo.SalesSummaryRow, error) {
	query := `
		SELECT DATE_TRUNC('day', sale_date) AS day,
		       COUNT(*) AS sale_count,
		       COALESCE(SUM(total_amount), 0) AS gross_total,
		       COALESCE(SUM(initial_payment), 0) AS paid_total
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		GROUP BY day
		ORDER BY day ASC;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales summary: %w", err)
	}
	defer rows.Close()

	summary := []portsrepo.SalesSummaryRow{}
	for rows.Next() {
		var row portsrepo.SalesSummaryRow
		if err := rows.Scan(&row.Date, &row.SaleCount, &row.GrossTotal, &row.PaidTotal); err != nil {
			return nil, fmt.Errorf("failed to scan sales summary row: %w", err)
		}
		summary = append(summary, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sales summary rows: %w", rows.Err())
	}
	return summary, nil
}

func (r *PgxReportingRepository) OutstandingLedgerSummary(ctx context.Context) (*portsrepo.OutstandingSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount), 0),
		       COALESCE(SUM(paid_amount), 0),
		       COALESCE(SUM(remaining_amount), 0)
		FROM ledger_entries
		WHERE status = $1;
	`
	var summary portsrepo.OutstandingSummary
	err := r.db.QueryRow(ctx, query, domain.LedgerStatusUnsettled).Scan(
		&summary.EntryCount,
		&summary.TotalDebt,
		&summary.TotalPaid,
		&summary.TotalRemaining,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate outstanding ledger: %w", err)
	}
	return &summary, nil
}
