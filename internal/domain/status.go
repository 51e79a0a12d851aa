package domain

// OrderStatus represents the status of a courier order.
//
// The legal transition set lives inside the database's status-transition
// routine; the application never enforces it.
type OrderStatus string

// List of statuses the database is known to use.
const (
	StatusPending   OrderStatus = "Pending"
	StatusInTransit OrderStatus = "In Transit"
	StatusDelivered OrderStatus = "Delivered"
)
