package events

import (
	"context"
	"strings"

	"courier-dispatch/internal/logx"
)

// Processor handles status events consumed by the worker. The database
// trigger already owns history and audit rows, so the processor never
// writes state; it records the transition for downstream observers.
type Processor struct {
	logger logx.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{logger: logger}
}

// Handle processes a single status event.
func (p *Processor) Handle(_ context.Context, ev StatusEvent) error {
	if ev.OrderID <= 0 || strings.TrimSpace(ev.Status) == "" {
		p.logger.Warn("skipping malformed status event",
			logx.Int64("order_id", ev.OrderID),
			logx.String("status", ev.Status),
		)
		return nil
	}

	p.logger.Info("courier status changed",
		logx.Int64("order_id", ev.OrderID),
		logx.String("status", ev.Status),
		logx.String("changed_by", ev.ChangedBy),
		logx.Any("occurred_at", ev.OccurredAt),
	)
	return nil
}
