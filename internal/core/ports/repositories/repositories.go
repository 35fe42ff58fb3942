package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo       LedgerRepositoryFacade
	UserRepo         UserRepositoryFacade
	ProductRepo      ProductRepositoryFacade
	CustomerRepo     CustomerRepositoryFacade
	SupplierRepo     SupplierRepositoryFacade
	SaleRepo         SaleRepositoryFacade
	ServiceOrderRepo ServiceOrderRepositoryFacade
	ReportingRepo    ReportingRepositoryFacade
}
