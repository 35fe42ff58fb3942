package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatus is the repair workflow state of a service order.
type ServiceStatus string

const (
	ServiceReceived   ServiceStatus = "RECEIVED"
	ServiceInProgress ServiceStatus = "IN_PROGRESS"
	ServiceCompleted  ServiceStatus = "COMPLETED"
	ServiceDelivered  ServiceStatus = "DELIVERED"
	ServiceCancelled  ServiceStatus = "CANCELLED"
)

// ServiceOrder is a device repair job. Members track its status by the
// order number; completing an order with a partial payment finalizes it
// into a ledger entry of kind SERVICE.
type ServiceOrder struct {
	OrderID        string          `json:"orderID"` // Primary Key (UUID)
	OrderNo        string          `json:"orderNo"` // Human-facing tracking number, unique
	CustomerID     string          `json:"customerID,omitempty"`
	CustomerName   string          `json:"customerName"`
	DeviceName     string          `json:"deviceName"`
	Complaint      string          `json:"complaint"`
	Diagnosis      string          `json:"diagnosis,omitempty"`
	Status         ServiceStatus   `json:"status"`
	ReceivedDate   time.Time       `json:"receivedDate"`
	CompletedDate  *time.Time      `json:"completedDate,omitempty"`
	ServiceFee     decimal.Decimal `json:"serviceFee"`
	InitialPayment decimal.Decimal `json:"initialPayment"`
	AuditFields
}

// validServiceTransitions enumerates the allowed status moves. CANCELLED is
// reachable from any non-terminal state.
var validServiceTransitions = map[ServiceStatus][]ServiceStatus{
	ServiceReceived:   {ServiceInProgress, ServiceCancelled},
	ServiceInProgress: {ServiceCompleted, ServiceCancelled},
	ServiceCompleted:  {ServiceDelivered},
}

// CanTransitionTo reports whether the order may move to the target status.
func (s ServiceStatus) CanTransitionTo(target ServiceStatus) bool {
	for _, next := range validServiceTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
