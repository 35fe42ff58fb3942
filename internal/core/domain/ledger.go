package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind identifies the transaction a debt originates from.
type LedgerKind string

const (
	LedgerKindSale    LedgerKind = "SALE"
	LedgerKindService LedgerKind = "SERVICE"
)

// LedgerStatus indicates whether a debt has been fully paid.
type LedgerStatus string

const (
	LedgerStatusUnsettled LedgerStatus = "UNSETTLED"
	LedgerStatusSettled   LedgerStatus = "SETTLED"
)

// Payment is one installment applied against a ledger entry. Payments are
// append-only; insertion order is chronological order.
type Payment struct {
	PaymentID  string          `json:"paymentID"`  // Primary Key (UUID)
	EntryID    string          `json:"entryID"`    // FK -> LedgerEntry.EntryID
	Amount     decimal.Decimal `json:"amount"`     // Positive; recorded in full even on overpayment
	PaidAt     time.Time       `json:"paidAt"`     // When the payment was received
	ReceivedBy string          `json:"receivedBy"` // UserID of the cashier who took the payment
}

// LedgerEntry tracks a single debt: a sale or service transaction that was
// finalized with an outstanding balance. EntryID is the ID of the
// originating transaction. TotalAmount, TransactionDate, CustomerName and
// Details are immutable after creation; only the paid/remaining/status
// triple and the payment history change, and only through ApplyPayment.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	Kind            LedgerKind      `json:"kind"`
	CustomerName    string          `json:"customerName"` // Display label only
	TransactionDate time.Time       `json:"transactionDate"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`     // The original debt, never negative
	PaidAmount      decimal.Decimal `json:"paidAmount"`      // Monotonically non-decreasing
	RemainingAmount decimal.Decimal `json:"remainingAmount"` // Derived, clamped at zero
	Status          LedgerStatus    `json:"status"`          // Derived: Settled iff RemainingAmount is zero
	Details         string          `json:"details"`
	Payments        []Payment       `json:"payments"`
	AuditFields
}

// RecomputeDerived recalculates RemainingAmount and Status from TotalAmount
// and PaidAmount. Both entry creation and payment application go through
// this single function so that paid + remaining == total (post-clamp) holds
// structurally rather than being re-asserted at every call site.
func (e *LedgerEntry) RecomputeDerived() {
	remaining := e.TotalAmount.Sub(e.PaidAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	e.RemainingAmount = remaining
	if remaining.IsZero() {
		e.Status = LedgerStatusSettled
	} else {
		e.Status = LedgerStatusUnsettled
	}
}

// ApplyPayment appends a payment to the entry and recomputes the derived
// fields. The amount must already be validated as strictly positive.
// Overpayment is accepted: the full amount lands in PaidAmount and in the
// history, while RemainingAmount clamps at zero.
func (e *LedgerEntry) ApplyPayment(p Payment) {
	e.PaidAmount = e.PaidAmount.Add(p.Amount)
	e.Payments = append(e.Payments, p)
	e.RecomputeDerived()
}

// Snapshot returns a defensive copy of the entry, including its payment
// history, so observers can never mutate store-owned state.
func (e *LedgerEntry) Snapshot() LedgerEntry {
	cp := *e
	cp.Payments = make([]Payment, len(e.Payments))
	copy(cp.Payments, e.Payments)
	return cp
}
