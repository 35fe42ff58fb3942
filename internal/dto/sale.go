package dto

import (
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one product line on a new sale.
type SaleItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest finalizes a POS sale. When InitialPayment covers less
// than the computed total, the remainder goes on the installment ledger.
type CreateSaleRequest struct {
	CustomerID     string               `json:"customerID"`
	CustomerName   string               `json:"customerName"`
	Items          []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	InitialPayment decimal.Decimal      `json:"initialPayment"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER CREDIT"`
}

// SaleItemResponse is one line on a sale view.
type SaleItemResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse is the view of a finalized sale.
type SaleResponse struct {
	SaleID         string             `json:"saleID"`
	InvoiceNo      string             `json:"invoiceNo"`
	CustomerName   string             `json:"customerName"`
	SaleDate       time.Time          `json:"saleDate"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	InitialPayment decimal.Decimal    `json:"initialPayment"`
	PaymentMethod  string             `json:"paymentMethod"`
	Items          []SaleItemResponse `json:"items"`
	// Set when the sale created an installment ledger entry
	LedgerEntryID string `json:"ledgerEntryID,omitempty"`
}

// ListSalesResponse is a paginated list of sales.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToSaleResponse converts a domain.Sale to its DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return SaleResponse{
		SaleID:         s.SaleID,
		InvoiceNo:      s.InvoiceNo,
		CustomerName:   s.CustomerName,
		SaleDate:       s.SaleDate,
		TotalAmount:    s.TotalAmount,
		InitialPayment: s.InitialPayment,
		PaymentMethod:  string(s.PaymentMethod),
		Items:          items,
	}
}

// ToSaleResponses converts a slice of sales.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}
