package pgsql

import (
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		SupplierRepo:     newPgxSupplierRepository(dbPool),
		SaleRepo:         newPgxSaleRepository(dbPool),
		ServiceOrderRepo: newPgxServiceOrderRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
	}
}
