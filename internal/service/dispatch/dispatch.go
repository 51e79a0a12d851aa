package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/service/events"
)

// Counters holds the dispatch counters. Either field may be nil.
type Counters struct {
	OrdersCreated prometheus.Counter
	StatusUpdates prometheus.Counter
}

// Service forwards courier order commands and queries to the database
// routines. Validation is deliberately shallow: required-field presence
// only, all semantic correctness belongs to the database tier.
type Service struct {
	repo             orderRepository
	publisher        eventPublisher
	logger           logx.Logger
	counters         Counters
	operationTimeout time.Duration
}

// NewService creates and configures a dispatch Service. publisher may be
// nil when status events are disabled.
func NewService(r orderRepository, publisher eventPublisher, logger logx.Logger, counters Counters, timeout time.Duration) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, publisher: publisher, logger: logger, counters: counters, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate checks required-field presence, nothing more.
func validateCreate(in domain.NewOrderInput) error {
	if in.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id is required", apperr.ErrInvalid)
	}
	if in.AdminID <= 0 {
		return fmt.Errorf("%w: admin_id is required", apperr.ErrInvalid)
	}
	if strings.TrimSpace(in.BillNumber) == "" {
		return fmt.Errorf("%w: bill_number is required", apperr.ErrInvalid)
	}
	if strings.TrimSpace(in.PickupAddress) == "" {
		return fmt.Errorf("%w: pickup_address is required", apperr.ErrInvalid)
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return fmt.Errorf("%w: delivery_address is required", apperr.ErrInvalid)
	}
	return nil
}

func validateStatusUpdate(u domain.StatusUpdate) error {
	if u.OrderID <= 0 {
		return fmt.Errorf("%w: id is required", apperr.ErrInvalid)
	}
	if strings.TrimSpace(string(u.NewStatus)) == "" {
		return fmt.Errorf("%w: new_status is required", apperr.ErrInvalid)
	}
	if strings.TrimSpace(u.ChangedBy) == "" {
		return fmt.Errorf("%w: changed_by_admin_email is required", apperr.ErrInvalid)
	}
	return nil
}

// Create delegates order creation to the database routine and returns the
// new order id. No repository call is made when validation fails.
func (s *Service) Create(ctx context.Context, in domain.NewOrderInput) (int64, error) {
	if err := validateCreate(in); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	id, err := s.repo.CreateOrder(ctx, in)
	if err != nil {
		return 0, err
	}
	if s.counters.OrdersCreated != nil {
		s.counters.OrdersCreated.Inc()
	}
	return id, nil
}

// UpdateStatus delegates the transition to the database routine. The
// routine decides transition legality; a rejected transition surfaces as a
// plain database error. On success a status event is published best-effort.
func (s *Service) UpdateStatus(ctx context.Context, u domain.StatusUpdate) error {
	if err := validateStatusUpdate(u); err != nil {
		return err
	}
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.UpdateStatus(opCtx, u); err != nil {
		return err
	}
	if s.counters.StatusUpdates != nil {
		s.counters.StatusUpdates.Inc()
	}
	s.publish(ctx, u)
	return nil
}

func (s *Service) publish(ctx context.Context, u domain.StatusUpdate) {
	if s.publisher == nil {
		return
	}
	ev := events.StatusEvent{
		OrderID:    u.OrderID,
		Status:     string(u.NewStatus),
		ChangedBy:  u.ChangedBy,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn("status event publish failed",
			logx.Int64("order_id", u.OrderID),
			logx.String("status", string(u.NewStatus)),
			logx.Err(err),
		)
	}
}

// GetStatus calls the status function and maps an absent row or NULL
// result to not-found.
func (s *Service) GetStatus(ctx context.Context, id int64) (domain.OrderStatus, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	status, err := s.repo.GetStatus(ctx, id)
	if err != nil {
		return "", err
	}
	if status == nil {
		return "", apperr.ErrNotFound
	}
	return *status, nil
}

// Logs reads back the trigger-written history and audit rows for an order.
// Empty sequences are a valid result, never not-found.
func (s *Service) Logs(ctx context.Context, id int64) (domain.OrderLogs, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	history, err := s.repo.History(ctx, id)
	if err != nil {
		return domain.OrderLogs{}, err
	}
	audit, err := s.repo.AuditTrail(ctx, id)
	if err != nil {
		return domain.OrderLogs{}, err
	}
	return domain.OrderLogs{History: history, Audit: audit}, nil
}

// ListOrders returns all orders joined with user and admin lookups.
func (s *Service) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOrders(ctx)
}

// ListUsers returns the user lookup table.
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserRef, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListUsers(ctx)
}

// ListAdmins returns the admin lookup table.
func (s *Service) ListAdmins(ctx context.Context) ([]domain.UserRef, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListAdmins(ctx)
}

// Delete checks existence first, then deletes. No delete statement is
// issued for an unknown id. Dependent rows cascade in the database.
func (s *Service) Delete(ctx context.Context, id int64) (domain.DeletedOrder, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	found, err := s.repo.Find(ctx, id)
	if err != nil {
		return domain.DeletedOrder{}, err
	}
	if found == nil {
		return domain.DeletedOrder{}, apperr.ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.DeletedOrder{}, err
	}
	return *found, nil
}
