package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// MockSaleRepository is a mock implementation of SaleRepositoryFacade.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if sale, ok := args.Get(0).(*domain.Sale); ok {
		return sale, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var token *string
	if t, ok := args.Get(1).(*string); ok {
		token = t
	}
	if sales, ok := args.Get(0).([]domain.Sale); ok {
		return sales, token, args.Error(2)
	}
	return nil, token, args.Error(2)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepositoryFacade.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if products, ok := args.Get(0).(map[string]domain.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, category string, activeOnly bool, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, category, activeOnly, limit, offset)
	if products, ok := args.Get(0).([]domain.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, productID string, delta int, updatedBy string) error {
	args := m.Called(ctx, productID, delta, updatedBy)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepositoryFacade.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if customer, ok := args.Get(0).(*domain.Customer); ok {
		return customer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if customers, ok := args.Get(0).([]domain.Customer); ok {
		return customers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockServiceOrderRepository is a mock implementation of ServiceOrderRepositoryFacade.
type MockServiceOrderRepository struct {
	mock.Mock
}

func (m *MockServiceOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, orderID)
	if order, ok := args.Get(0).(*domain.ServiceOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceOrderRepository) FindOrderByOrderNo(ctx context.Context, orderNo string) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, orderNo)
	if order, ok := args.Get(0).(*domain.ServiceOrder); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceOrderRepository) ListOrders(ctx context.Context, status *domain.ServiceStatus, limit int, offset int) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, status, limit, offset)
	if orders, ok := args.Get(0).([]domain.ServiceOrder); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceOrderRepository) SaveOrder(ctx context.Context, order domain.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) UpdateOrder(ctx context.Context, order domain.ServiceOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
