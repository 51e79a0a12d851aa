package handlers

import "time"

type createOrderRequest struct {
	CustomerID      int64  `json:"customer_id"`
	AdminID         int64  `json:"admin_id"`
	BillNumber      string `json:"bill_number"`
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
}

type updateStatusRequest struct {
	NewStatus           string `json:"new_status"`
	ChangedByAdminEmail string `json:"changed_by_admin_email"`
}

type orderSummaryDTO struct {
	ID              int64     `json:"id"`
	BillNumber      string    `json:"bill_number"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	AdminName       *string   `json:"admin_name"`
}

type userRefDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type historyEntryDTO struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

type auditEntryDTO struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type orderLogsDTO struct {
	History []historyEntryDTO `json:"history"`
	Audit   []auditEntryDTO   `json:"audit"`
}

type deletedOrderDTO struct {
	ID         int64  `json:"id"`
	BillNumber string `json:"bill_number"`
}

type joinReportRowDTO struct {
	OrderID       int64     `json:"order_id"`
	BillNumber    string    `json:"bill_number"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	AdminName     *string   `json:"admin_name"`
}

type membershipReportRowDTO struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type aggregateReportRowDTO struct {
	Status            string    `json:"status"`
	OrderCount        int64     `json:"order_count"`
	DistinctCustomers int64     `json:"distinct_customers"`
	FirstCreatedAt    time.Time `json:"first_created_at"`
	LastCreatedAt     time.Time `json:"last_created_at"`
}

type adminPerformanceRowDTO struct {
	AdminID   int64  `json:"admin_id"`
	AdminName string `json:"admin_name"`
	Total     int64  `json:"total"`
	Delivered int64  `json:"delivered"`
	InTransit int64  `json:"in_transit"`
	Pending   int64  `json:"pending"`
}

type customerActivityRowDTO struct {
	UserID   int64    `json:"user_id"`
	Name     string   `json:"name"`
	Total    int64    `json:"total"`
	Statuses []string `json:"statuses"`
}
