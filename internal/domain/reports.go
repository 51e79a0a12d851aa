package domain

import "time"

// JoinReportRow is an order with required customer info and optional admin info.
type JoinReportRow struct {
	OrderID       int64
	BillNumber    string
	Status        OrderStatus
	CreatedAt     time.Time
	CustomerName  string
	CustomerEmail string
	AdminName     *string
}

// MembershipReportRow is a user who is the customer of at least one
// delivered order.
type MembershipReportRow struct {
	UserID int64
	Name   string
	Email  string
}

// AggregateReportRow summarizes orders per distinct status.
type AggregateReportRow struct {
	Status            OrderStatus
	OrderCount        int64
	DistinctCustomers int64
	FirstCreatedAt    time.Time
	LastCreatedAt     time.Time
}

// AdminPerformanceRow counts managed orders per admin, including admins
// with zero managed orders.
type AdminPerformanceRow struct {
	AdminID   int64
	AdminName string
	Total     int64
	Delivered int64
	InTransit int64
	Pending   int64
}

// CustomerActivityRow counts orders per user with at least one order.
// Statuses holds the distinct statuses that user's orders have held.
type CustomerActivityRow struct {
	UserID   int64
	Name     string
	Total    int64
	Statuses []string
}
