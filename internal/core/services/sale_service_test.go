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

type SaleServiceTestSuite struct {
	suite.Suite
	saleRepo     *MockSaleRepository
	productRepo  *MockProductRepository
	customerRepo *MockCustomerRepository
	ledgerRepo   *memory.LedgerRepository
	service      portssvc.SaleSvcFacade
	ctx          context.Context
}

func (s *SaleServiceTestSuite) SetupTest() {
	s.saleRepo = new(MockSaleRepository)
	s.productRepo = new(MockProductRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.ledgerRepo = memory.NewLedgerRepository()
	ledgerSvc := NewLedgerService(s.ledgerRepo, nil)
	s.service = NewSaleService(s.saleRepo, s.productRepo, s.customerRepo, ledgerSvc, nil)
	s.ctx = context.Background()
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}

func (s *SaleServiceTestSuite) stockProducts(products ...domain.Product) {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	s.productRepo.On("FindProductsByIDs", mock.Anything, mock.Anything).Return(byID, nil)
}

func testProduct(id string, price int64, stock int) domain.Product {
	return domain.Product{
		ProductID:    id,
		SKU:          "SKU-" + id,
		Name:         "Product " + id,
		SellingPrice: decimal.NewFromInt(price),
		StockQty:     stock,
		IsActive:     true,
	}
}

func (s *SaleServiceTestSuite) TestCreateSale_CashFullyPaid() {
	s.stockProducts(testProduct("p1", 250000, 10))
	s.saleRepo.On("SaveSale", mock.Anything, mock.Anything).Return(nil)

	result, err := s.service.CreateSale(s.ctx, dto.CreateSaleRequest{
		CustomerName:   "Budi",
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2}},
		InitialPayment: decimal.NewFromInt(500000),
		PaymentMethod:  domain.PaymentCash,
	}, "kasir-1")
	s.Require().NoError(err)

	s.True(result.Sale.TotalAmount.Equal(decimal.NewFromInt(500000)))
	s.NotEmpty(result.Sale.InvoiceNo)
	s.Nil(result.LedgerEntry)
	s.saleRepo.AssertExpectations(s.T())
}

func (s *SaleServiceTestSuite) TestCreateSale_CreditOpensLedgerEntry() {
	s.stockProducts(testProduct("p1", 850000, 5))
	s.saleRepo.On("SaveSale", mock.Anything, mock.Anything).Return(nil)

	result, err := s.service.CreateSale(s.ctx, dto.CreateSaleRequest{
		CustomerName:   "Budi",
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		InitialPayment: decimal.NewFromInt(300000),
		PaymentMethod:  domain.PaymentCredit,
	}, "kasir-1")
	s.Require().NoError(err)
	s.Require().NotNil(result.LedgerEntry)

	entry := result.LedgerEntry
	s.Equal(result.Sale.SaleID, entry.EntryID)
	s.Equal(domain.LedgerKindSale, entry.Kind)
	s.True(entry.RemainingAmount.Equal(decimal.NewFromInt(550000)))
	s.Equal(domain.LedgerStatusUnsettled, entry.Status)

	// The entry is queryable from the ledger afterwards.
	stored, err := s.ledgerRepo.FindEntryByID(s.ctx, entry.EntryID)
	s.Require().NoError(err)
	s.True(stored.TotalAmount.Equal(decimal.NewFromInt(850000)))
}

func (s *SaleServiceTestSuite) TestCreateSale_CashMustCoverTotal() {
	s.stockProducts(testProduct("p1", 100000, 3))

	_, err := s.service.CreateSale(s.ctx, dto.CreateSaleRequest{
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		InitialPayment: decimal.NewFromInt(50000),
		PaymentMethod:  domain.PaymentCash,
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.saleRepo.AssertNotCalled(s.T(), "SaveSale", mock.Anything, mock.Anything)
}

func (s *SaleServiceTestSuite) TestCreateSale_InsufficientStock() {
	s.stockProducts(testProduct("p1", 100000, 1))

	_, err := s.service.CreateSale(s.ctx, dto.CreateSaleRequest{
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3}},
		InitialPayment: decimal.NewFromInt(300000),
		PaymentMethod:  domain.PaymentCash,
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *SaleServiceTestSuite) TestCreateSale_UnknownProduct() {
	s.stockProducts() // empty inventory

	_, err := s.service.CreateSale(s.ctx, dto.CreateSaleRequest{
		Items:          []dto.SaleItemRequest{{ProductID: "ghost", Quantity: 1}},
		InitialPayment: decimal.NewFromInt(100000),
		PaymentMethod:  domain.PaymentCash,
	}, "kasir-1")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SaleServiceTestSuite) TestCreateSale_ResolvesCustomerName() {
	s.stockProducts(testProduct("p1", 200000, 10))
	s.customerRepo.On("FindCustomerByID", mock.Anything, "cust-1").
		Return(&domain.Customer{CustomerID: "cust-1", Name: "Siti Aminah"}, nil)
	s.saleRepo.On("SaveSale", mock.Anything, mock.Anything).Return(nil)

	result, err := s.service.CreateSale(s.ctx, dto.CreateSaleRequest{
		CustomerID:     "cust-1",
		Items:          []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		InitialPayment: decimal.NewFromInt(200000),
		PaymentMethod:  domain.PaymentTransfer,
	}, "kasir-1")
	s.Require().NoError(err)
	s.Equal("Siti Aminah", result.Sale.CustomerName)
}
