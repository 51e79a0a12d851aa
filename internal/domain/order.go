package domain

import "time"

// CourierOrder represents a courier order row as stored by the database.
type CourierOrder struct {
	ID              int64
	CustomerID      int64
	AdminID         int64
	BillNumber      string
	PickupAddress   string
	DeliveryAddress string
	Status          OrderStatus
	CreatedAt       time.Time
}

// NewOrderInput carries the five fields required by the order-creation routine.
type NewOrderInput struct {
	CustomerID      int64
	AdminID         int64
	BillNumber      string
	PickupAddress   string
	DeliveryAddress string
}

// StatusUpdate carries the parameters of the status-transition routine.
type StatusUpdate struct {
	OrderID   int64
	NewStatus OrderStatus
	ChangedBy string // email of the acting admin
}

// DeletedOrder identifies an order removed by an explicit delete request.
type DeletedOrder struct {
	ID         int64
	BillNumber string
}

// OrderSummary is an order enriched with customer and admin lookup data.
// AdminName is nil when the order has no managing admin.
type OrderSummary struct {
	ID              int64
	BillNumber      string
	PickupAddress   string
	DeliveryAddress string
	Status          OrderStatus
	CreatedAt       time.Time
	CustomerName    string
	CustomerEmail   string
	AdminName       *string
}

// UserRef is a read-only user or admin lookup row.
type UserRef struct {
	ID    int64
	Name  string
	Email string
}
