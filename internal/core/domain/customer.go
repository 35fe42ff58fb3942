package domain

// Customer is a shop customer referenced by sales and service orders.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	// Set when the customer registered as a storefront member
	UserID string `json:"userID,omitempty"`
	AuditFields
}
