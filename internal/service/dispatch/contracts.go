package dispatch

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/events"
)

// orderRepository defines the database operations required by the dispatch layer.
type orderRepository interface {
	CreateOrder(ctx context.Context, in domain.NewOrderInput) (int64, error)
	UpdateStatus(ctx context.Context, u domain.StatusUpdate) error
	GetStatus(ctx context.Context, id int64) (*domain.OrderStatus, error)
	History(ctx context.Context, orderID int64) ([]domain.StatusHistoryEntry, error)
	AuditTrail(ctx context.Context, orderID int64) ([]domain.AuditEntry, error)
	ListOrders(ctx context.Context) ([]domain.OrderSummary, error)
	ListUsers(ctx context.Context) ([]domain.UserRef, error)
	ListAdmins(ctx context.Context) ([]domain.UserRef, error)
	Find(ctx context.Context, id int64) (*domain.DeletedOrder, error)
	Delete(ctx context.Context, id int64) error
}

// eventPublisher publishes status-change notifications. Publishing is
// best-effort and never affects the HTTP response.
type eventPublisher interface {
	Publish(ctx context.Context, ev events.StatusEvent) error
}
