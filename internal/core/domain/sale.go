package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the tender used at the point of sale.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCredit   PaymentMethod = "CREDIT" // Partial payment, remainder tracked on the ledger
)

// SaleItem is one product line on a sale, a snapshot of price at sale time.
type SaleItem struct {
	SaleItemID string          `json:"saleItemID"` // Primary Key (UUID)
	SaleID     string          `json:"saleID"`     // FK -> Sale.SaleID
	ProductID  string          `json:"productID"`
	Name       string          `json:"name"` // Snapshot of product name
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// Sale is a finalized POS transaction. A sale whose InitialPayment is less
// than TotalAmount finalizes into a ledger entry of kind SALE.
type Sale struct {
	SaleID         string          `json:"saleID"` // Primary Key (UUID)
	InvoiceNo      string          `json:"invoiceNo"`
	CustomerID     string          `json:"customerID,omitempty"`
	CustomerName   string          `json:"customerName"`
	SaleDate       time.Time       `json:"saleDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	InitialPayment decimal.Decimal `json:"initialPayment"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Items          []SaleItem      `json:"items"`
	AuditFields
}
