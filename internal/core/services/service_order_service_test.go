package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/repositories/memory"
)

type ServiceOrderServiceTestSuite struct {
	suite.Suite
	orderRepo  *MockServiceOrderRepository
	ledgerRepo *memory.LedgerRepository
	service    portssvc.ServiceOrderSvcFacade
	ctx        context.Context
}

func (s *ServiceOrderServiceTestSuite) SetupTest() {
	s.orderRepo = new(MockServiceOrderRepository)
	s.ledgerRepo = memory.NewLedgerRepository()
	s.service = NewServiceOrderService(s.orderRepo, NewLedgerService(s.ledgerRepo, nil), nil)
	s.ctx = context.Background()
}

func TestServiceOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceOrderServiceTestSuite))
}

func inProgressOrder() *domain.ServiceOrder {
	return &domain.ServiceOrder{
		OrderID:      "order-1",
		OrderNo:      "SVC-20260831-AB12CD",
		CustomerName: "Budi",
		DeviceName:   "Redmi Note 12",
		Complaint:    "Cracked screen",
		Status:       domain.ServiceInProgress,
	}
}

func (s *ServiceOrderServiceTestSuite) TestCreateOrder_StartsAsReceived() {
	s.orderRepo.On("SaveOrder", mock.Anything, mock.Anything).Return(nil)

	order, err := s.service.CreateOrder(s.ctx, dto.CreateServiceOrderRequest{
		CustomerName: "Budi",
		DeviceName:   "Redmi Note 12",
		Complaint:    "Cracked screen",
	}, "kasir-1")
	s.Require().NoError(err)

	s.Equal(domain.ServiceReceived, order.Status)
	s.NotEmpty(order.OrderNo)
	s.Contains(order.OrderNo, "SVC-")
}

func (s *ServiceOrderServiceTestSuite) TestUpdateOrder_InvalidTransitionRejected() {
	order := inProgressOrder()
	order.Status = domain.ServiceReceived
	s.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(order, nil)

	completed := domain.ServiceCompleted
	_, err := s.service.UpdateOrder(s.ctx, "order-1", dto.UpdateServiceOrderRequest{
		Status: &completed,
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.orderRepo.AssertNotCalled(s.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (s *ServiceOrderServiceTestSuite) TestUpdateOrder_CompletionWithPartialPaymentOpensLedger() {
	s.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(inProgressOrder(), nil)
	s.orderRepo.On("UpdateOrder", mock.Anything, mock.Anything).Return(nil)

	completed := domain.ServiceCompleted
	fee := decimal.NewFromInt(400000)
	paid := decimal.NewFromInt(100000)
	result, err := s.service.UpdateOrder(s.ctx, "order-1", dto.UpdateServiceOrderRequest{
		Status:         &completed,
		ServiceFee:     &fee,
		InitialPayment: &paid,
	}, "kasir-1")
	s.Require().NoError(err)

	s.Equal(domain.ServiceCompleted, result.Order.Status)
	s.Require().NotNil(result.Order.CompletedDate)
	s.Require().NotNil(result.LedgerEntry)
	s.Equal(domain.LedgerKindService, result.LedgerEntry.Kind)
	s.True(result.LedgerEntry.RemainingAmount.Equal(decimal.NewFromInt(300000)))
}

func (s *ServiceOrderServiceTestSuite) TestUpdateOrder_CompletionFullyPaidSkipsLedger() {
	s.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(inProgressOrder(), nil)
	s.orderRepo.On("UpdateOrder", mock.Anything, mock.Anything).Return(nil)

	completed := domain.ServiceCompleted
	fee := decimal.NewFromInt(400000)
	result, err := s.service.UpdateOrder(s.ctx, "order-1", dto.UpdateServiceOrderRequest{
		Status:         &completed,
		ServiceFee:     &fee,
		InitialPayment: &fee,
	}, "kasir-1")
	s.Require().NoError(err)
	s.Nil(result.LedgerEntry)

	entries, _, err := s.ledgerRepo.ListEntries(s.ctx, 0, nil)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ServiceOrderServiceTestSuite) TestUpdateOrder_NegativeFeeRejected() {
	s.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(inProgressOrder(), nil)

	fee := decimal.NewFromInt(-1000)
	_, err := s.service.UpdateOrder(s.ctx, "order-1", dto.UpdateServiceOrderRequest{
		ServiceFee: &fee,
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *ServiceOrderServiceTestSuite) TestTrackOrder_ByOrderNo() {
	order := inProgressOrder()
	s.orderRepo.On("FindOrderByOrderNo", mock.Anything, order.OrderNo).Return(order, nil)

	found, err := s.service.TrackOrder(s.ctx, order.OrderNo)
	s.Require().NoError(err)
	s.Equal(order.OrderID, found.OrderID)
}
