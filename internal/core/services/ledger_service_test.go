package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/repositories/memory"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	repo    *memory.LedgerRepository
	service portssvc.LedgerSvcFacade
	ctx     context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.repo = memory.NewLedgerRepository()
	s.service = NewLedgerService(s.repo, nil)
	s.ctx = context.Background()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) createEntry(id string, total, initial int64) *domain.LedgerEntry {
	entry, err := s.service.CreateEntry(s.ctx, dto.CreateLedgerEntryRequest{
		EntryID:        id,
		Kind:           domain.LedgerKindSale,
		CustomerName:   "Budi Santoso",
		TotalAmount:    decimal.NewFromInt(total),
		InitialPayment: decimal.NewFromInt(initial),
	}, "kasir-1")
	s.Require().NoError(err)
	s.Require().NotNil(entry)
	return entry
}

func (s *LedgerServiceTestSuite) TestCreateEntry_PartialSettlement() {
	entry := s.createEntry("sale-001", 850000, 300000)

	s.True(entry.TotalAmount.Equal(decimal.NewFromInt(850000)))
	s.True(entry.PaidAmount.Equal(decimal.NewFromInt(300000)))
	s.True(entry.RemainingAmount.Equal(decimal.NewFromInt(550000)))
	s.Equal(domain.LedgerStatusUnsettled, entry.Status)

	// The initial payment shows up in the history.
	s.Require().Len(entry.Payments, 1)
	s.True(entry.Payments[0].Amount.Equal(decimal.NewFromInt(300000)))
	s.Equal("kasir-1", entry.Payments[0].ReceivedBy)
}

func (s *LedgerServiceTestSuite) TestCreateEntry_ZeroInitialPaymentRecorded() {
	entry := s.createEntry("svc-001", 200000, 0)

	s.True(entry.RemainingAmount.Equal(decimal.NewFromInt(200000)))
	s.Equal(domain.LedgerStatusUnsettled, entry.Status)
	s.Require().Len(entry.Payments, 1)
	s.True(entry.Payments[0].Amount.IsZero())
}

func (s *LedgerServiceTestSuite) TestCreateEntry_FullyPaidIsSettled() {
	entry := s.createEntry("sale-002", 500000, 500000)

	s.True(entry.RemainingAmount.IsZero())
	s.Equal(domain.LedgerStatusSettled, entry.Status)
}

func (s *LedgerServiceTestSuite) TestCreateEntry_NegativeAmountsRejected() {
	_, err := s.service.CreateEntry(s.ctx, dto.CreateLedgerEntryRequest{
		EntryID:     "bad-1",
		Kind:        domain.LedgerKindSale,
		TotalAmount: decimal.NewFromInt(-100),
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = s.service.CreateEntry(s.ctx, dto.CreateLedgerEntryRequest{
		EntryID:        "bad-2",
		Kind:           domain.LedgerKindSale,
		TotalAmount:    decimal.NewFromInt(100),
		InitialPayment: decimal.NewFromInt(-50),
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *LedgerServiceTestSuite) TestCreateEntry_IdempotentOnSameID() {
	first := s.createEntry("sale-003", 850000, 300000)

	var notified int
	unsubscribe := s.service.Subscribe(portssvc.LedgerObserverFunc(func([]domain.LedgerEntry) {
		notified++
	}))
	defer unsubscribe()

	// Same ID, different amounts: the stored entry wins untouched and no
	// notification fires.
	second, err := s.service.CreateEntry(s.ctx, dto.CreateLedgerEntryRequest{
		EntryID:        "sale-003",
		Kind:           domain.LedgerKindService,
		CustomerName:   "Someone Else",
		TotalAmount:    decimal.NewFromInt(999999),
		InitialPayment: decimal.NewFromInt(1),
	}, "kasir-2")
	s.Require().NoError(err)

	s.Equal(first.EntryID, second.EntryID)
	s.Equal(first.Kind, second.Kind)
	s.True(second.TotalAmount.Equal(first.TotalAmount))
	s.True(second.PaidAmount.Equal(first.PaidAmount))
	s.Len(second.Payments, 1)
	s.Zero(notified)
}

func (s *LedgerServiceTestSuite) TestAddPayment_ReducesRemainingAndSettles() {
	s.createEntry("sale-004", 850000, 300000)

	entry, err := s.service.AddPayment(s.ctx, "sale-004", dto.AddPaymentRequest{
		Amount: decimal.NewFromInt(250000),
	}, "kasir-1")
	s.Require().NoError(err)
	s.True(entry.PaidAmount.Equal(decimal.NewFromInt(550000)))
	s.True(entry.RemainingAmount.Equal(decimal.NewFromInt(300000)))
	s.Equal(domain.LedgerStatusUnsettled, entry.Status)

	entry, err = s.service.AddPayment(s.ctx, "sale-004", dto.AddPaymentRequest{
		Amount: decimal.NewFromInt(300000),
	}, "kasir-1")
	s.Require().NoError(err)
	s.True(entry.RemainingAmount.IsZero())
	s.Equal(domain.LedgerStatusSettled, entry.Status)
	s.Len(entry.Payments, 3)
}

func (s *LedgerServiceTestSuite) TestAddPayment_OverpaymentClampsRemaining() {
	s.createEntry("sale-005", 100000, 0)

	entry, err := s.service.AddPayment(s.ctx, "sale-005", dto.AddPaymentRequest{
		Amount: decimal.NewFromInt(150000),
	}, "kasir-1")
	s.Require().NoError(err)

	// Remaining clamps at zero while the history keeps the full amount.
	s.True(entry.RemainingAmount.IsZero())
	s.Equal(domain.LedgerStatusSettled, entry.Status)
	s.True(entry.PaidAmount.Equal(decimal.NewFromInt(150000)))
	s.Require().Len(entry.Payments, 2)
	s.True(entry.Payments[1].Amount.Equal(decimal.NewFromInt(150000)))
}

func (s *LedgerServiceTestSuite) TestAddPayment_RejectsZeroAndNegative() {
	s.createEntry("sale-006", 100000, 0)

	_, err := s.service.AddPayment(s.ctx, "sale-006", dto.AddPaymentRequest{
		Amount: decimal.Zero,
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = s.service.AddPayment(s.ctx, "sale-006", dto.AddPaymentRequest{
		Amount: decimal.NewFromInt(-500),
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrInvalidAmount)

	// The rejected attempts left no trace.
	entry, err := s.service.GetEntryByID(s.ctx, "sale-006")
	s.Require().NoError(err)
	s.True(entry.PaidAmount.IsZero())
	s.Len(entry.Payments, 1)
}

func (s *LedgerServiceTestSuite) TestAddPayment_UnknownEntryNotFoundNoNotify() {
	var notified int
	unsubscribe := s.service.Subscribe(portssvc.LedgerObserverFunc(func([]domain.LedgerEntry) {
		notified++
	}))
	defer unsubscribe()

	_, err := s.service.AddPayment(s.ctx, "missing-entry", dto.AddPaymentRequest{
		Amount: decimal.NewFromInt(50000),
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Zero(notified)
}

func (s *LedgerServiceTestSuite) TestHistorySumMatchesPaidAmount() {
	s.createEntry("sale-007", 850000, 300000)

	for _, amount := range []int64{100000, 150000, 75000} {
		_, err := s.service.AddPayment(s.ctx, "sale-007", dto.AddPaymentRequest{
			Amount: decimal.NewFromInt(amount),
		}, "kasir-1")
		s.Require().NoError(err)
	}

	entry, err := s.service.GetEntryByID(s.ctx, "sale-007")
	s.Require().NoError(err)

	sum := decimal.Zero
	for _, p := range entry.Payments {
		sum = sum.Add(p.Amount)
	}
	s.True(sum.Equal(entry.PaidAmount))
	s.True(entry.PaidAmount.Add(entry.RemainingAmount).Equal(entry.TotalAmount))
}

func (s *LedgerServiceTestSuite) TestPaidAmountIsMonotonic() {
	s.createEntry("sale-008", 500000, 100000)

	previous := decimal.NewFromInt(100000)
	for _, amount := range []int64{50000, 1, 449999, 10000} {
		entry, err := s.service.AddPayment(s.ctx, "sale-008", dto.AddPaymentRequest{
			Amount: decimal.NewFromInt(amount),
		}, "kasir-1")
		s.Require().NoError(err)
		s.True(entry.PaidAmount.GreaterThan(previous))
		s.False(entry.RemainingAmount.IsNegative())
		previous = entry.PaidAmount
	}
}

func (s *LedgerServiceTestSuite) TestObserverReceivesSnapshotAfterMutation() {
	var lastSnapshot []domain.LedgerEntry
	unsubscribe := s.service.Subscribe(portssvc.LedgerObserverFunc(func(snapshot []domain.LedgerEntry) {
		lastSnapshot = snapshot
	}))

	s.createEntry("sale-009", 400000, 0)
	s.Require().Len(lastSnapshot, 1)
	s.Equal("sale-009", lastSnapshot[0].EntryID)

	s.createEntry("sale-010", 300000, 0)
	s.Len(lastSnapshot, 2)

	unsubscribe()
	s.createEntry("sale-011", 200000, 0)
	s.Len(lastSnapshot, 2)
}

func (s *LedgerServiceTestSuite) TestListEntries_Pagination() {
	s.createEntry("sale-a", 100000, 0)
	s.createEntry("sale-b", 200000, 0)
	s.createEntry("sale-c", 300000, 0)

	page, token, err := s.service.ListEntries(s.ctx, 2, nil)
	s.Require().NoError(err)
	s.Len(page, 2)
	s.Require().NotNil(token)

	rest, token, err := s.service.ListEntries(s.ctx, 2, token)
	s.Require().NoError(err)
	s.Len(rest, 1)
	s.Nil(token)
}
