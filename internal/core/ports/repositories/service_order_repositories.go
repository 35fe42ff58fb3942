package repositories

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// ServiceOrderReader defines read operations for service orders
type ServiceOrderReader interface {
	// FindOrderByID retrieves a service order by its ID.
	FindOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error)

	// FindOrderByOrderNo retrieves a service order by its human-facing
	// tracking number (member status tracking).
	FindOrderByOrderNo(ctx context.Context, orderNo string) (*domain.ServiceOrder, error)

	// ListOrders retrieves a paginated list of orders, optionally filtered
	// by status.
	ListOrders(ctx context.Context, status *domain.ServiceStatus, limit int, offset int) ([]domain.ServiceOrder, error)
}

// ServiceOrderWriter defines write operations for service orders
type ServiceOrderWriter interface {
	// SaveOrder persists a new service order.
	SaveOrder(ctx context.Context, order domain.ServiceOrder) error

	// UpdateOrder updates diagnosis, fee, status and completion date.
	UpdateOrder(ctx context.Context, order domain.ServiceOrder) error
}

// ServiceOrderRepositoryFacade combines all service-order repository interfaces
type ServiceOrderRepositoryFacade interface {
	ServiceOrderReader
	ServiceOrderWriter
}
