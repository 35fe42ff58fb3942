package services

import (
	"github.com/CellkomStore/cellkom_store_app/internal/cache"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/events"
	"github.com/CellkomStore/cellkom_store_app/internal/platform/config"
)

// NewServiceContainer wires the core services onto the repository provider.
// The Receipt service renders PDFs and is attached by the caller, which
// keeps the document renderer out of the core package.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	cfg *config.Config,
	catalog cache.CatalogCache,
	publisher events.Publisher,
) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(repos.LedgerRepo, publisher)
	userSvc := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		Ledger:       ledgerSvc,
		User:         userSvc,
		Product:      NewProductService(repos.ProductRepo, catalog, cfg.CatalogCacheTTL),
		Customer:     NewCustomerService(repos.CustomerRepo),
		Supplier:     NewSupplierService(repos.SupplierRepo),
		Sale:         NewSaleService(repos.SaleRepo, repos.ProductRepo, repos.CustomerRepo, ledgerSvc, publisher),
		ServiceOrder: NewServiceOrderService(repos.ServiceOrderRepo, ledgerSvc, publisher),
		Reporting:    NewReportingService(repos.ReportingRepo),
		Token:        NewTokenService(cfg, userSvc),
		GoogleOAuth:  NewGoogleOAuthService(cfg, userSvc),
	}
}
