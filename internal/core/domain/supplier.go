package domain

// Supplier is a goods supplier for stock purchases.
type Supplier struct {
	SupplierID    string `json:"supplierID"` // Primary Key (UUID)
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	AuditFields
}
