package kafka

import (
	"strings"
	"time"

	"courier-dispatch/internal/service/events"
)

// EventDTO is the wire form of events.StatusEvent.
type EventDTO struct {
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	ChangedBy  string    `json:"changed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDTO converts a domain event to its wire form.
func ToDTO(ev events.StatusEvent) EventDTO {
	return EventDTO{
		OrderID:    ev.OrderID,
		Status:     ev.Status,
		ChangedBy:  ev.ChangedBy,
		OccurredAt: ev.OccurredAt,
	}
}

// ToDomain converts a wire event to the domain form.
func ToDomain(dto EventDTO) events.StatusEvent {
	return events.StatusEvent{
		OrderID:    dto.OrderID,
		Status:     strings.TrimSpace(dto.Status),
		ChangedBy:  strings.TrimSpace(dto.ChangedBy),
		OccurredAt: dto.OccurredAt,
	}
}
