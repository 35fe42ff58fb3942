package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

func TestLedgerEntry_RecomputeDerived(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		paid          int64
		wantRemaining int64
		wantStatus    domain.LedgerStatus
	}{
		{
			name:          "partially paid stays unsettled",
			total:         850000,
			paid:          300000,
			wantRemaining: 550000,
			wantStatus:    domain.LedgerStatusUnsettled,
		},
		{
			name:          "fully paid settles",
			total:         850000,
			paid:          850000,
			wantRemaining: 0,
			wantStatus:    domain.LedgerStatusSettled,
		},
		{
			name:          "overpaid clamps remaining at zero",
			total:         100000,
			paid:          150000,
			wantRemaining: 0,
			wantStatus:    domain.LedgerStatusSettled,
		},
		{
			name:          "nothing paid",
			total:         100000,
			paid:          0,
			wantRemaining: 100000,
			wantStatus:    domain.LedgerStatusUnsettled,
		},
		{
			name:          "zero total is settled immediately",
			total:         0,
			paid:          0,
			wantRemaining: 0,
			wantStatus:    domain.LedgerStatusSettled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.LedgerEntry{
				EntryID:     "e1",
				TotalAmount: decimal.NewFromInt(tt.total),
				PaidAmount:  decimal.NewFromInt(tt.paid),
			}
			entry.RecomputeDerived()

			assert.True(t, entry.RemainingAmount.Equal(decimal.NewFromInt(tt.wantRemaining)),
				"remaining = %s, want %d", entry.RemainingAmount, tt.wantRemaining)
			assert.Equal(t, tt.wantStatus, entry.Status)
		})
	}
}

func TestLedgerEntry_ApplyPayment(t *testing.T) {
	entry := domain.LedgerEntry{
		EntryID:     "e1",
		TotalAmount: decimal.NewFromInt(500000),
	}
	entry.RecomputeDerived()

	entry.ApplyPayment(domain.Payment{
		PaymentID: "p1", EntryID: "e1",
		Amount: decimal.NewFromInt(200000),
		PaidAt: time.Now(), ReceivedBy: "kasir-1",
	})

	assert.True(t, entry.PaidAmount.Equal(decimal.NewFromInt(200000)))
	assert.True(t, entry.RemainingAmount.Equal(decimal.NewFromInt(300000)))
	assert.Equal(t, domain.LedgerStatusUnsettled, entry.Status)
	assert.Len(t, entry.Payments, 1)

	// Overpayment: full amount recorded, remaining clamps
	entry.ApplyPayment(domain.Payment{
		PaymentID: "p2", EntryID: "e1",
		Amount: decimal.NewFromInt(400000),
		PaidAt: time.Now(), ReceivedBy: "kasir-1",
	})

	assert.True(t, entry.PaidAmount.Equal(decimal.NewFromInt(600000)))
	assert.True(t, entry.RemainingAmount.IsZero())
	assert.Equal(t, domain.LedgerStatusSettled, entry.Status)
	assert.Len(t, entry.Payments, 2)
	assert.True(t, entry.Payments[1].Amount.Equal(decimal.NewFromInt(400000)))
}

func TestLedgerEntry_SnapshotIsIndependent(t *testing.T) {
	entry := domain.LedgerEntry{
		EntryID:     "e1",
		TotalAmount: decimal.NewFromInt(100000),
		Payments: []domain.Payment{
			{PaymentID: "p1", EntryID: "e1", Amount: decimal.NewFromInt(50000)},
		},
	}
	entry.RecomputeDerived()

	snap := entry.Snapshot()
	snap.Payments[0].PaymentID = "mutated"
	snap.ApplyPayment(domain.Payment{PaymentID: "p2", Amount: decimal.NewFromInt(50000)})

	assert.Equal(t, "p1", entry.Payments[0].PaymentID)
	assert.Len(t, entry.Payments, 1)
	assert.True(t, entry.PaidAmount.IsZero())
}
