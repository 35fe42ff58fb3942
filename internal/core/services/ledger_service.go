package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
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

// ledgerService owns the installment ledger: it is the single mutation path
// for entries and their payment histories, and the notification source for
// observers. The mutate-and-notify sequence runs under a store-wide mutex
// so a read-modify-write cycle on one entry is atomic within the process;
// the repository makes the entry update plus payment insert atomic at the
// persistence level.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	publisher  events.Publisher

	mu sync.Mutex // serializes mutations

	obsMu     sync.Mutex
	observers map[int]portssvc.LedgerObserver
	nextObsID int
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, publisher events.Publisher) portssvc.LedgerSvcFacade {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		publisher:  publisher,
		observers:  make(map[int]portssvc.LedgerObserver),
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateEntry records a new debt from a finalized sale or service
// transaction. Creation is idempotent on EntryID: a second call returns the
// stored entry untouched and fires no notification.
func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total amount must not be negative", apperrors.ErrInvalidAmount)
	}
	if req.InitialPayment.IsNegative() {
		return nil, fmt.Errorf("%w: initial payment must not be negative", apperrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.ledgerRepo.FindEntryByID(ctx, req.EntryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing ledger entry: %w", err)
	}
	if existing != nil {
		logger.Info("Ledger entry already exists, returning existing entry", slog.String("entry_id", req.EntryID))
		return existing, nil
	}

	now := time.Now().UTC()
	transactionDate := req.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = now
	}

	entry := domain.LedgerEntry{
		EntryID:         req.EntryID,
		Kind:            req.Kind,
		CustomerName:    req.CustomerName,
		TransactionDate: transactionDate,
		TotalAmount:     req.TotalAmount,
		PaidAmount:      req.InitialPayment,
		Details:         req.Details,
		// The initial payment is always recorded, zero-amount included, so
		// the history carries an audit trail from creation onward.
		Payments: []domain.Payment{{
			PaymentID:  uuid.NewString(),
			EntryID:    req.EntryID,
			Amount:     req.InitialPayment,
			PaidAt:     now,
			ReceivedBy: creatorUserID,
		}},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	entry.RecomputeDerived()

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race against a concurrent create with the same ID;
			// idempotent creation means the stored entry wins.
			return s.ledgerRepo.FindEntryByID(ctx, req.EntryID)
		}
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	logger.Info("Ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("kind", string(entry.Kind)),
		slog.String("total", entry.TotalAmount.String()),
		slog.String("remaining", entry.RemainingAmount.String()),
	)

	s.notifyObservers(ctx)
	s.publishEvent(ctx, events.EventLedgerEntryCreated, &entry)

	return &entry, nil
}

// AddPayment applies one installment to an existing entry and returns the
// updated entry. Zero and negative amounts are rejected; overpayment is
// accepted and recorded in full while the remaining amount clamps at zero.
func (s *ledgerService) AddPayment(ctx context.Context, entryID string, req dto.AddPaymentRequest, receivedByUserID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:  uuid.NewString(),
		EntryID:    entryID,
		Amount:     req.Amount,
		PaidAt:     now,
		ReceivedBy: receivedByUserID,
	}

	updated := entry.Snapshot()
	updated.ApplyPayment(payment)
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = receivedByUserID

	if err := s.ledgerRepo.AppendPayment(ctx, updated, payment); err != nil {
		return nil, fmt.Errorf("failed to append payment to ledger entry %s: %w", entryID, err)
	}

	logger.Info("Payment applied to ledger entry",
		slog.String("entry_id", entryID),
		slog.String("amount", req.Amount.String()),
		slog.String("remaining", updated.RemainingAmount.String()),
		slog.String("status", string(updated.Status)),
	)

	s.notifyObservers(ctx)
	s.publishEvent(ctx, events.EventLedgerEntryUpdated, &updated)

	return &updated, nil
}

// GetEntryByID retrieves a single entry with its payment history.
func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntryByID(ctx, entryID)
}

// ListEntries retrieves a paginated snapshot of ledger entries.
func (s *ledgerService) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	return s.ledgerRepo.ListEntries(ctx, limit, nextToken)
}

// Subscribe registers an observer and returns its unsubscribe function.
func (s *ledgerService) Subscribe(observer portssvc.LedgerObserver) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = observer

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers, id)
	}
}

// notifyObservers delivers a fresh snapshot of all entries to every
// registered observer. Called only from mutation paths holding s.mu, after
// the repository write succeeded.
func (s *ledgerService) notifyObservers(ctx context.Context) {
	s.obsMu.Lock()
	if len(s.observers) == 0 {
		s.obsMu.Unlock()
		return
	}
	observers := make([]portssvc.LedgerObserver, 0, len(s.observers))
	for _, obs := range s.observers {
		observers = append(observers, obs)
	}
	s.obsMu.Unlock()

	snapshot, _, err := s.ledgerRepo.ListEntries(ctx, 0, nil)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to build ledger snapshot for observers", slog.String("error", err.Error()))
		return
	}

	for _, obs := range observers {
		obs.OnChange(snapshot)
	}
}

// publishEvent pushes the change to the realtime feed. Best-effort: a feed
// failure never fails the mutation that triggered it.
func (s *ledgerService) publishEvent(ctx context.Context, eventType string, entry *domain.LedgerEntry) {
	event := events.ChangeEvent{
		Type:       eventType,
		EntityID:   entry.EntryID,
		OccurredAt: time.Now().UTC(),
		Payload: map[string]any{
			"kind":      string(entry.Kind),
			"status":    string(entry.Status),
			"paid":      entry.PaidAmount.String(),
			"remaining": entry.RemainingAmount.String(),
		},
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to publish ledger change event",
			slog.String("entry_id", entry.EntryID), slog.String("error", err.Error()))
	}
}
