// Package memory provides in-process repository implementations backed by
// maps. They serve tests and local development without a database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	"github.com/CellkomStore/cellkom_store_app/internal/utils/pagination"
)

// LedgerRepository stores ledger entries in memory. A single RWMutex covers
// both the entry and its payment history, so AppendPayment is atomic.
type LedgerRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.LedgerEntry
}

// NewLedgerRepository creates an empty in-memory ledger repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{entries: make(map[string]domain.LedgerEntry)}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) FindEntryByID(_ context.Context, entryID string) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
	}
	snapshot := entry.Snapshot()
	return &snapshot, nil
}

func (r *LedgerRepository) ListEntries(_ context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := make([]domain.LedgerEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		ordered = append(ordered, entry)
	}
	// Newest first, entry ID as tiebreaker, matching the database ordering.
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].TransactionDate.Equal(ordered[j].TransactionDate) {
			return ordered[i].TransactionDate.After(ordered[j].TransactionDate)
		}
		return ordered[i].EntryID < ordered[j].EntryID
	})

	start := 0
	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		for i, entry := range ordered {
			if entry.TransactionDate.Before(tokenDate) ||
				(entry.TransactionDate.Equal(tokenDate) && entry.EntryID > tokenID) {
				start = i
				break
			}
			start = len(ordered)
		}
	}

	end := len(ordered)
	var token *string
	if limit > 0 && start+limit < len(ordered) {
		end = start + limit
		last := ordered[end-1]
		encoded := pagination.EncodeToken(last.TransactionDate, last.EntryID)
		token = &encoded
	}

	page := make([]domain.LedgerEntry, 0, end-start)
	for _, entry := range ordered[start:end] {
		page = append(page, entry.Snapshot())
	}
	return page, token, nil
}

func (r *LedgerRepository) SaveEntry(_ context.Context, entry domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.EntryID]; exists {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrDuplicate, entry.EntryID)
	}
	r.entries[entry.EntryID] = entry.Snapshot()
	return nil
}

func (r *LedgerRepository) AppendPayment(_ context.Context, entry domain.LedgerEntry, _ domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.EntryID]; !exists {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entry.EntryID)
	}
	// The caller hands over the already-updated entry, payment included;
	// replacing the stored value updates totals and history in one step.
	r.entries[entry.EntryID] = entry.Snapshot()
	return nil
}
