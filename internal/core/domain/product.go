package domain

import "github.com/shopspring/decimal"

// Product is a stock item sold through the POS and the storefront.
type Product struct {
	ProductID     string          `json:"productID"` // Primary Key (UUID)
	SKU           string          `json:"sku"`       // Unique
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQty      int             `json:"stockQty"`
	SupplierID    string          `json:"supplierID,omitempty"`
	ImageURL      string          `json:"imageURL,omitempty"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
