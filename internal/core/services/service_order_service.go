package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/events"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
)

type serviceOrderService struct {
	orderRepo portsrepo.ServiceOrderRepositoryFacade
	ledgerSvc portssvc.LedgerSvcFacade
	publisher events.Publisher
}

// NewServiceOrderService creates a new ServiceOrderService.
func NewServiceOrderService(
	orderRepo portsrepo.ServiceOrderRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	publisher events.Publisher,
) portssvc.ServiceOrderSvcFacade {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &serviceOrderService{orderRepo: orderRepo, ledgerSvc: ledgerSvc, publisher: publisher}
}

var _ portssvc.ServiceOrderSvcFacade = (*serviceOrderService)(nil)

func (s *serviceOrderService) CreateOrder(ctx context.Context, req dto.CreateServiceOrderRequest, creatorUserID string) (*domain.ServiceOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	order := domain.ServiceOrder{
		OrderID:      uuid.NewString(),
		OrderNo:      newOrderNo(now),
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		DeviceName:   req.DeviceName,
		Complaint:    req.Complaint,
		Status:       domain.ServiceReceived,
		ReceivedDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save service order: %w", err)
	}

	logger.Info("Service order received",
		slog.String("order_id", order.OrderID),
		slog.String("order_no", order.OrderNo),
		slog.String("device", order.DeviceName),
	)
	return &order, nil
}

func (s *serviceOrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	return s.orderRepo.FindOrderByID(ctx, orderID)
}

func (s *serviceOrderService) TrackOrder(ctx context.Context, orderNo string) (*domain.ServiceOrder, error) {
	return s.orderRepo.FindOrderByOrderNo(ctx, orderNo)
}

func (s *serviceOrderService) ListOrders(ctx context.Context, status *domain.ServiceStatus, limit int, offset int) ([]domain.ServiceOrder, error) {
	return s.orderRepo.ListOrders(ctx, status, limit, offset)
}

func (s *serviceOrderService) UpdateOrder(ctx context.Context, orderID string, req dto.UpdateServiceOrderRequest, updaterUserID string) (*portssvc.ServiceOrderResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.Diagnosis != nil {
		order.Diagnosis = *req.Diagnosis
	}
	if req.ServiceFee != nil {
		if req.ServiceFee.IsNegative() {
			return nil, fmt.Errorf("%w: service fee must not be negative", apperrors.ErrInvalidAmount)
		}
		order.ServiceFee = *req.ServiceFee
	}
	if req.InitialPayment != nil {
		if req.InitialPayment.IsNegative() {
			return nil, fmt.Errorf("%w: initial payment must not be negative", apperrors.ErrInvalidAmount)
		}
		order.InitialPayment = *req.InitialPayment
	}

	now := time.Now().UTC()
	completed := false
	if req.Status != nil && *req.Status != order.Status {
		if !order.Status.CanTransitionTo(*req.Status) {
			return nil, fmt.Errorf("%w: cannot move order from %s to %s", apperrors.ErrValidation, order.Status, *req.Status)
		}
		order.Status = *req.Status
		if order.Status == domain.ServiceCompleted {
			order.CompletedDate = &now
			completed = true
		}
	}

	order.LastUpdatedAt = now
	order.LastUpdatedBy = updaterUserID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update service order %s: %w", orderID, err)
	}

	result := &portssvc.ServiceOrderResult{Order: order}

	// A completed repair whose fee was not fully paid at intake goes on
	// the installment ledger. Ledger creation is idempotent on the order
	// ID, so a repeated completion update cannot double-book the debt.
	if completed && order.ServiceFee.IsPositive() && order.InitialPayment.LessThan(order.ServiceFee) {
		entry, err := s.ledgerSvc.CreateEntry(ctx, dto.CreateLedgerEntryRequest{
			EntryID:         order.OrderID,
			Kind:            domain.LedgerKindService,
			CustomerName:    order.CustomerName,
			TransactionDate: now,
			TotalAmount:     order.ServiceFee,
			InitialPayment:  order.InitialPayment,
			Details:         fmt.Sprintf("%s: %s (%s)", order.OrderNo, order.DeviceName, order.Complaint),
		}, updaterUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to open ledger entry for service order %s: %w", orderID, err)
		}
		result.LedgerEntry = entry
	}

	if req.Status != nil {
		logger.Info("Service order moved",
			slog.String("order_id", order.OrderID),
			slog.String("order_no", order.OrderNo),
			slog.String("status", string(order.Status)),
		)
		event := events.ChangeEvent{
			Type:       events.EventServiceOrderMoved,
			EntityID:   order.OrderID,
			OccurredAt: now,
			Payload: map[string]any{
				"orderNo": order.OrderNo,
				"status":  string(order.Status),
			},
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.Error("Failed to publish service order event",
				slog.String("order_id", order.OrderID), slog.String("error", err.Error()))
		}
	}

	return result, nil
}

// newOrderNo builds the human-facing tracking number members use on the
// storefront status page.
func newOrderNo(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("SVC-%s-%s", t.Format("20060102"), suffix)
}
