package services

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

// LedgerObserver receives a fresh snapshot of all ledger entries whenever
// the store mutates. Implementations must not retain or mutate the slice's
// backing entries; they receive defensive copies.
type LedgerObserver interface {
	OnChange(snapshot []domain.LedgerEntry)
}

// LedgerObserverFunc adapts a plain function to the LedgerObserver interface.
type LedgerObserverFunc func(snapshot []domain.LedgerEntry)

func (f LedgerObserverFunc) OnChange(snapshot []domain.LedgerEntry) {
	f(snapshot)
}

// LedgerReaderSvc defines read operations on the installment ledger.
type LedgerReaderSvc interface {
	// GetEntryByID retrieves a single entry with its payment history.
	GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a paginated snapshot of ledger entries.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriterSvc defines mutation operations on the installment ledger.
type LedgerWriterSvc interface {
	// CreateEntry records a new debt. Creation is idempotent: a second
	// call with an existing ID returns the stored entry unchanged.
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// AddPayment applies one installment to an existing entry and returns
	// the updated entry.
	AddPayment(ctx context.Context, entryID string, req dto.AddPaymentRequest, receivedByUserID string) (*domain.LedgerEntry, error)
}

// LedgerSubscriberSvc lets observers follow ledger mutations.
type LedgerSubscriberSvc interface {
	// Subscribe registers an observer and returns its unsubscribe function.
	// Observers are notified after every successful mutation, in no
	// particular order relative to each other.
	Subscribe(observer LedgerObserver) (unsubscribe func())
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerSubscriberSvc
}
