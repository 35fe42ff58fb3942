package repositories

import (
	"context"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// FindEntryByID retrieves an entry with its full payment history.
	// Returns apperrors.ErrNotFound when no entry matches.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a paginated list of entries (payments included)
	// ordered by transaction date descending. It returns the entries, a
	// token for the next page, and an error. A non-positive limit returns
	// all entries (observer snapshots).
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines write operations for ledger entries.
type LedgerWriter interface {
	// SaveEntry persists a new entry together with its initial payment row.
	// Returns apperrors.ErrDuplicate when an entry with the same ID already
	// exists; the caller treats that as an idempotent no-op.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// AppendPayment updates the entry's paid/remaining/status fields and
	// inserts the payment row as one atomic operation.
	AppendPayment(ctx context.Context, entry domain.LedgerEntry, payment domain.Payment) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
// AppendPayment is atomic in every implementation: the pgsql repository
// wraps the entry update and the payment insert in one database
// transaction, the memory repository applies both under one lock.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
