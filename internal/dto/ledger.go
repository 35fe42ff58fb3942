package dto

import (
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest is supplied by the sale/service workflows when a
// transaction is finalized with an outstanding balance.
type CreateLedgerEntryRequest struct {
	EntryID         string            `json:"entryID" binding:"required"`
	Kind            domain.LedgerKind `json:"kind" binding:"required,oneof=SALE SERVICE"`
	CustomerName    string            `json:"customerName"`
	TransactionDate time.Time         `json:"transactionDate"`
	TotalAmount     decimal.Decimal   `json:"totalAmount" binding:"required"`
	InitialPayment  decimal.Decimal   `json:"initialPayment"`
	Details         string            `json:"details"`
}

// AddPaymentRequest applies one installment to a ledger entry.
type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PaymentResponse is one payment history row.
type PaymentResponse struct {
	PaymentID  string          `json:"paymentID"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     time.Time       `json:"paidAt"`
	ReceivedBy string          `json:"receivedBy"`
}

// LedgerEntryResponse is the full view of a ledger entry.
type LedgerEntryResponse struct {
	EntryID         string            `json:"entryID"`
	Kind            domain.LedgerKind `json:"kind"`
	CustomerName    string            `json:"customerName"`
	TransactionDate time.Time         `json:"transactionDate"`
	TotalAmount     decimal.Decimal   `json:"totalAmount"`
	PaidAmount      decimal.Decimal   `json:"paidAmount"`
	RemainingAmount decimal.Decimal   `json:"remainingAmount"`
	Status          string            `json:"status"`
	Details         string            `json:"details"`
	Payments        []PaymentResponse `json:"payments"`
}

// ListLedgerEntriesResponse is a paginated list of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to its DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:  p.PaymentID,
		Amount:     p.Amount,
		PaidAt:     p.PaidAt,
		ReceivedBy: p.ReceivedBy,
	}
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	payments := make([]PaymentResponse, len(e.Payments))
	for i := range e.Payments {
		payments[i] = ToPaymentResponse(&e.Payments[i])
	}
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		Kind:            e.Kind,
		CustomerName:    e.CustomerName,
		TransactionDate: e.TransactionDate,
		TotalAmount:     e.TotalAmount,
		PaidAmount:      e.PaidAmount,
		RemainingAmount: e.RemainingAmount,
		Status:          string(e.Status),
		Details:         e.Details,
		Payments:        payments,
	}
}

// ToLedgerEntryResponses converts a slice of entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
