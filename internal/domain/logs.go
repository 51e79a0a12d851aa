package domain

import "time"

// StatusHistoryEntry is a status-change record written by the database
// trigger. The application only ever reads these back.
type StatusHistoryEntry struct {
	ID        int64
	OrderID   int64
	OldStatus *OrderStatus
	NewStatus OrderStatus
	ChangedBy string
	ChangedAt time.Time
}

// AuditEntry is an audit-log record, also trigger-written.
type AuditEntry struct {
	ID        int64
	OrderID   int64
	Action    string
	Details   string
	CreatedAt time.Time
}

// OrderLogs bundles the two log sequences read back for one order.
// Both may be empty; absence of logs is not an error.
type OrderLogs struct {
	History []StatusHistoryEntry
	Audit   []AuditEntry
}
