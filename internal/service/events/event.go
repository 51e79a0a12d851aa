package events

import "time"

// StatusEvent is a notification emitted after the database accepted a
// status update. It mirrors what the routine was told, not the history
// rows the trigger wrote.
type StatusEvent struct {
	OrderID    int64
	Status     string
	ChangedBy  string
	OccurredAt time.Time
}
