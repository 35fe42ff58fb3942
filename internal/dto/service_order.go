package dto

import (
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceOrderRequest registers a device for repair.
type CreateServiceOrderRequest struct {
	CustomerID   string `json:"customerID"`
	CustomerName string `json:"customerName" binding:"required"`
	DeviceName   string `json:"deviceName" binding:"required"`
	Complaint    string `json:"complaint" binding:"required"`
}

// UpdateServiceOrderRequest moves an order through the repair workflow.
// Status transitions are validated against the workflow state machine.
type UpdateServiceOrderRequest struct {
	Diagnosis      *string               `json:"diagnosis,omitempty"`
	Status         *domain.ServiceStatus `json:"status,omitempty" binding:"omitempty,oneof=RECEIVED IN_PROGRESS COMPLETED DELIVERED CANCELLED"`
	ServiceFee     *decimal.Decimal      `json:"serviceFee,omitempty"`
	InitialPayment *decimal.Decimal      `json:"initialPayment,omitempty"`
}

// ServiceOrderResponse is the staff view of a service order.
type ServiceOrderResponse struct {
	OrderID        string          `json:"orderID"`
	OrderNo        string          `json:"orderNo"`
	CustomerName   string          `json:"customerName"`
	DeviceName     string          `json:"deviceName"`
	Complaint      string          `json:"complaint"`
	Diagnosis      string          `json:"diagnosis,omitempty"`
	Status         string          `json:"status"`
	ReceivedDate   time.Time       `json:"receivedDate"`
	CompletedDate  *time.Time      `json:"completedDate,omitempty"`
	ServiceFee     decimal.Decimal `json:"serviceFee"`
	InitialPayment decimal.Decimal `json:"initialPayment"`
}

// ServiceTrackingResponse is the reduced public view members see when
// tracking an order by number.
type ServiceTrackingResponse struct {
	OrderNo       string     `json:"orderNo"`
	DeviceName    string     `json:"deviceName"`
	Status        string     `json:"status"`
	ReceivedDate  time.Time  `json:"receivedDate"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// ToServiceOrderResponse converts a domain.ServiceOrder to its staff DTO.
func ToServiceOrderResponse(o *domain.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		OrderID:        o.OrderID,
		OrderNo:        o.OrderNo,
		CustomerName:   o.CustomerName,
		DeviceName:     o.DeviceName,
		Complaint:      o.Complaint,
		Diagnosis:      o.Diagnosis,
		Status:         string(o.Status),
		ReceivedDate:   o.ReceivedDate,
		CompletedDate:  o.CompletedDate,
		ServiceFee:     o.ServiceFee,
		InitialPayment: o.InitialPayment,
	}
}

// ToServiceTrackingResponse converts an order to the public tracking DTO.
func ToServiceTrackingResponse(o *domain.ServiceOrder) ServiceTrackingResponse {
	return ServiceTrackingResponse{
		OrderNo:       o.OrderNo,
		DeviceName:    o.DeviceName,
		Status:        string(o.Status),
		ReceivedDate:  o.ReceivedDate,
		CompletedDate: o.CompletedDate,
	}
}
