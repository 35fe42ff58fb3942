package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	limiter "github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/handlers"
	"github.com/CellkomStore/cellkom_store_app/internal/platform/config"
	"github.com/CellkomStore/cellkom_store_app/internal/utils"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, creatorUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) AddPayment(ctx context.Context, entryID string, req dto.AddPaymentRequest, receivedByUserID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, req, receivedByUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	token, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.LedgerEntry), token, args.Error(2)
}
func (m *MockLedgerService) Subscribe(observer portssvc.LedgerObserver) func() {
	args := m.Called(observer)
	return args.Get(0).(func())
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) RenderLedgerReceipt(ctx context.Context, entryID string) ([]byte, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockReceiptService) RenderSalesReport(ctx context.Context, from time.Time, to time.Time) ([]byte, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	mockReceiptSvc    *MockReceiptService
	jwtSecret         string
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedgerService = new(MockLedgerService)
	suite.mockReceiptSvc = new(MockReceiptService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger registration
	}
	container := &portssvc.ServiceContainer{
		Ledger:  suite.mockLedgerService,
		Receipt: suite.mockReceiptSvc,
	}

	rate, err := limiter.NewRateFromFormatted("100-M")
	suite.Require().NoError(err)
	authLimiter := limiter.New(memorystore.NewStore(), rate)

	handlers.RegisterRoutes(suite.router, cfg, container, authLimiter)
}

// generateTestToken creates a signed access token for testing.
func (suite *LedgerHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "cks-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *LedgerHandlerTestSuite) doJSON(method, url string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testEntry(entryID string, total, paid int64) *domain.LedgerEntry {
	entry := &domain.LedgerEntry{
		EntryID:         entryID,
		Kind:            domain.LedgerKindSale,
		CustomerName:    "Budi",
		TransactionDate: time.Now(),
		TotalAmount:     decimal.NewFromInt(total),
		PaidAmount:      decimal.NewFromInt(paid),
	}
	entry.RecomputeDerived()
	return entry
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Success() {
	req := dto.CreateLedgerEntryRequest{
		EntryID:        "sale-123",
		Kind:           domain.LedgerKindSale,
		CustomerName:   "Budi",
		TotalAmount:    decimal.NewFromInt(850000),
		InitialPayment: decimal.NewFromInt(300000),
	}
	expected := testEntry("sale-123", 850000, 300000)

	suite.mockLedgerService.On("CreateEntry",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateLedgerEntryRequest) bool {
			return r.EntryID == req.EntryID && r.TotalAmount.Equal(req.TotalAmount)
		}),
		"kasir-1",
	).Return(expected, nil).Once()

	token := suite.generateTestToken("kasir-1", domain.RoleKasir)
	w := suite.doJSON(http.MethodPost, "/api/v1/ledger", req, token)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("sale-123", body.EntryID)
	suite.True(body.RemainingAmount.Equal(decimal.NewFromInt(550000)))
	suite.Equal(string(domain.LedgerStatusUnsettled), body.Status)

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestAddPayment_Success() {
	expected := testEntry("sale-123", 850000, 850000)
	suite.mockLedgerService.On("AddPayment",
		mock.Anything,
		"sale-123",
		mock.MatchedBy(func(r dto.AddPaymentRequest) bool {
			return r.Amount.Equal(decimal.NewFromInt(550000))
		}),
		"kasir-1",
	).Return(expected, nil).Once()

	token := suite.generateTestToken("kasir-1", domain.RoleKasir)
	body := dto.AddPaymentRequest{Amount: decimal.NewFromInt(550000)}
	w := suite.doJSON(http.MethodPost, "/api/v1/ledger/sale-123/payments", body, token)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.LedgerStatusSettled), resp.Status)
	suite.True(resp.RemainingAmount.IsZero())

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestAddPayment_InvalidAmountReturns400() {
	suite.mockLedgerService.On("AddPayment", mock.Anything, "sale-123", mock.Anything, "kasir-1").
		Return(nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrInvalidAmount)).Once()

	token := suite.generateTestToken("kasir-1", domain.RoleKasir)
	body := dto.AddPaymentRequest{Amount: decimal.NewFromInt(-500)}
	w := suite.doJSON(http.MethodPost, "/api/v1/ledger/sale-123/payments", body, token)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetEntry_NotFoundReturns404() {
	suite.mockLedgerService.On("GetEntryByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: ledger entry missing", apperrors.ErrNotFound)).Once()

	token := suite.generateTestToken("admin-1", domain.RoleAdmin)
	w := suite.doJSON(http.MethodGet, "/api/v1/ledger/missing", nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestListEntries_Success() {
	entries := []domain.LedgerEntry{*testEntry("sale-1", 100000, 100000), *testEntry("sale-2", 200000, 50000)}
	suite.mockLedgerService.On("ListEntries", mock.Anything, 20, (*string)(nil)).
		Return(entries, (*string)(nil), nil).Once()

	token := suite.generateTestToken("admin-1", domain.RoleAdmin)
	w := suite.doJSON(http.MethodGet, "/api/v1/ledger", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListLedgerEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.Nil(resp.NextToken)
}

func (suite *LedgerHandlerTestSuite) TestLedger_ForbiddenForMembers() {
	token := suite.generateTestToken("member-1", domain.RoleMember)
	w := suite.doJSON(http.MethodGet, "/api/v1/ledger", nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListEntries")
}

func (suite *LedgerHandlerTestSuite) TestLedger_UnauthorizedWithoutToken() {
	w := suite.doJSON(http.MethodGet, "/api/v1/ledger", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetReceipt_Success() {
	suite.mockReceiptSvc.On("RenderLedgerReceipt", mock.Anything, "sale-123").
		Return([]byte("%PDF-1.7 fake"), nil).Once()

	token := suite.generateTestToken("kasir-1", domain.RoleKasir)
	w := suite.doJSON(http.MethodGet, "/api/v1/ledger/sale-123/receipt", nil, token)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "sale-123")
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
