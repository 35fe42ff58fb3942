package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/events"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
)

type saleService struct {
	saleRepo     portsrepo.SaleRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	ledgerSvc    portssvc.LedgerSvcFacade
	publisher    events.Publisher
}

// NewSaleService creates a new SaleService.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	publisher events.Publisher,
) portssvc.SaleSvcFacade {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &saleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		ledgerSvc:    ledgerSvc,
		publisher:    publisher,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, cashierUserID string) (*portssvc.SaleResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InitialPayment.IsNegative() {
		return nil, fmt.Errorf("%w: initial payment must not be negative", apperrors.ErrInvalidAmount)
	}

	customerName := req.CustomerName
	if req.CustomerID != "" {
		customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		customerName = customer.Name
	}
	if customerName == "" {
		customerName = "Umum" // Walk-in customer
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale products: %w", err)
	}

	now := time.Now().UTC()
	saleID := uuid.NewString()
	total := decimal.Zero
	items := make([]domain.SaleItem, len(req.Items))
	for i, item := range req.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: product %s is inactive", apperrors.ErrValidation, product.SKU)
		}
		if product.StockQty < item.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for %s (have %d, want %d)",
				apperrors.ErrValidation, product.SKU, product.StockQty, item.Quantity)
		}
		subtotal := product.SellingPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items[i] = domain.SaleItem{
			SaleItemID: uuid.NewString(),
			SaleID:     saleID,
			ProductID:  product.ProductID,
			Name:       product.Name,
			Quantity:   item.Quantity,
			UnitPrice:  product.SellingPrice,
			Subtotal:   subtotal,
		}
		total = total.Add(subtotal)
	}

	// Credit sales carry a partial payment by definition; other tenders
	// must settle in full at the counter.
	if req.PaymentMethod != domain.PaymentCredit && req.InitialPayment.LessThan(total) {
		return nil, fmt.Errorf("%w: %s payment must cover the total", apperrors.ErrValidation, req.PaymentMethod)
	}

	sale := domain.Sale{
		SaleID:         saleID,
		InvoiceNo:      newInvoiceNo(now),
		CustomerID:     req.CustomerID,
		CustomerName:   customerName,
		SaleDate:       now,
		TotalAmount:    total,
		InitialPayment: req.InitialPayment,
		PaymentMethod:  req.PaymentMethod,
		Items:          items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierUserID,
		},
	}

	// Sale rows, item rows and stock decrements land in one transaction.
	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	result := &portssvc.SaleResult{Sale: &sale}
	if sale.InitialPayment.LessThan(sale.TotalAmount) {
		entry, err := s.ledgerSvc.CreateEntry(ctx, dto.CreateLedgerEntryRequest{
			EntryID:         sale.SaleID,
			Kind:            domain.LedgerKindSale,
			CustomerName:    sale.CustomerName,
			TransactionDate: sale.SaleDate,
			TotalAmount:     sale.TotalAmount,
			InitialPayment:  sale.InitialPayment,
			Details:         saleDetails(sale.InvoiceNo, items),
		}, cashierUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to open ledger entry for sale %s: %w", sale.SaleID, err)
		}
		result.LedgerEntry = entry
	}

	logger.Info("Sale finalized",
		slog.String("sale_id", sale.SaleID),
		slog.String("invoice_no", sale.InvoiceNo),
		slog.String("total", sale.TotalAmount.String()),
		slog.Bool("on_ledger", result.LedgerEntry != nil),
	)

	event := events.ChangeEvent{
		Type:       events.EventSaleCompleted,
		EntityID:   sale.SaleID,
		OccurredAt: now,
		Payload: map[string]any{
			"invoiceNo": sale.InvoiceNo,
			"total":     sale.TotalAmount.String(),
			"method":    string(sale.PaymentMethod),
		},
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("Failed to publish sale event", slog.String("sale_id", sale.SaleID), slog.String("error", err.Error()))
	}

	return result, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *saleService) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	return s.saleRepo.ListSales(ctx, limit, nextToken)
}

// newInvoiceNo builds a human-facing invoice number, unique via a short
// UUID suffix.
func newInvoiceNo(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("INV-%s-%s", t.Format("20060102"), suffix)
}

// saleDetails summarizes line items for the ledger entry description.
func saleDetails(invoiceNo string, items []domain.SaleItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s x%d", item.Name, item.Quantity)
	}
	return fmt.Sprintf("%s: %s", invoiceNo, strings.Join(parts, ", "))
}
