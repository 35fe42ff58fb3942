package services

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

// ServiceOrderResult pairs an updated order with the ledger entry its
// completion created, if the service fee was only partially paid.
type ServiceOrderResult struct {
	Order       *domain.ServiceOrder
	LedgerEntry *domain.LedgerEntry
}

// ServiceOrderSvcFacade defines operations for device repair orders.
type ServiceOrderSvcFacade interface {
	// CreateOrder registers a device for repair and assigns a tracking number.
	CreateOrder(ctx context.Context, req dto.CreateServiceOrderRequest, creatorUserID string) (*domain.ServiceOrder, error)

	// GetOrderByID retrieves an order by its internal ID.
	GetOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error)

	// TrackOrder retrieves an order by its public tracking number.
	TrackOrder(ctx context.Context, orderNo string) (*domain.ServiceOrder, error)

	// ListOrders retrieves orders, optionally filtered by status.
	ListOrders(ctx context.Context, status *domain.ServiceStatus, limit int, offset int) ([]domain.ServiceOrder, error)

	// UpdateOrder applies diagnosis/fee updates and status transitions.
	// Completing an order with a partial payment opens a ledger entry.
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateServiceOrderRequest, updaterUserID string) (*ServiceOrderResult, error)
}
