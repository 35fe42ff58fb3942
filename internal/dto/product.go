package dto

import (
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest registers a new stock item.
type CreateProductRequest struct {
	SKU           string          `json:"sku" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice" binding:"required"`
	StockQty      int             `json:"stockQty" binding:"gte=0"`
	SupplierID    string          `json:"supplierID"`
	ImageURL      string          `json:"imageURL"`
}

// UpdateProductRequest updates mutable product fields.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice,omitempty"`
	SupplierID    *string          `json:"supplierID,omitempty"`
	ImageURL      *string          `json:"imageURL,omitempty"`
	IsActive      *bool            `json:"isActive,omitempty"`
}

// AdjustStockRequest changes the stock level by a delta (restock or correction).
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// ProductResponse is the staff view of a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQty      int             `json:"stockQty"`
	SupplierID    string          `json:"supplierID,omitempty"`
	ImageURL      string          `json:"imageURL,omitempty"`
	IsActive      bool            `json:"isActive"`
}

// CatalogItemResponse is the public storefront view: no purchase price.
type CatalogItemResponse struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	InStock      bool            `json:"inStock"`
	ImageURL     string          `json:"imageURL,omitempty"`
}

// ToProductResponse converts a domain.Product to its staff DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		StockQty:      p.StockQty,
		SupplierID:    p.SupplierID,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
	}
}

// ToCatalogItemResponse converts a domain.Product to its storefront DTO.
func ToCatalogItemResponse(p *domain.Product) CatalogItemResponse {
	return CatalogItemResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Category:     p.Category,
		SellingPrice: p.SellingPrice,
		InStock:      p.StockQty > 0,
		ImageURL:     p.ImageURL,
	}
}

// ToCatalogItemResponses converts a slice of products to storefront DTOs.
func ToCatalogItemResponses(products []domain.Product) []CatalogItemResponse {
	responses := make([]CatalogItemResponse, len(products))
	for i := range products {
		responses[i] = ToCatalogItemResponse(&products[i])
	}
	return responses
}
