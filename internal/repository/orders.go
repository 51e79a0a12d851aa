package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/domain"
)

// OrderRepo wraps the courier order tables and the database routines that
// own all order state. Stateful behavior (transition checks, history and
// audit writes) lives inside AddCourierOrder, UpdateCourierStatus and the
// after_courier_status_update trigger; this repo only calls them.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// CreateOrder delegates to the order-creation routine and returns the new id.
func (r *OrderRepo) CreateOrder(ctx context.Context, in domain.NewOrderInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`SELECT AddCourierOrder($1, $2, $3, $4, $5)`,
		in.CustomerID, in.AdminID, in.BillNumber, in.PickupAddress, in.DeliveryAddress,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add courier order: %w", err)
	}
	return id, nil
}

// UpdateStatus delegates to the status-transition routine. The routine
// validates the transition and fires the history/audit trigger inside its
// own transaction.
func (r *OrderRepo) UpdateStatus(ctx context.Context, u domain.StatusUpdate) error {
	_, err := r.db.Exec(ctx,
		`CALL UpdateCourierStatus($1, $2, $3)`,
		u.OrderID, string(u.NewStatus), u.ChangedBy,
	)
	if err != nil {
		return fmt.Errorf("update courier status %d: %w", u.OrderID, err)
	}
	return nil
}

// GetStatus calls the single-value status function. Returns nil when the
// function yields no row or a NULL status.
func (r *OrderRepo) GetStatus(ctx context.Context, id int64) (*domain.OrderStatus, error) {
	var status *string
	err := r.db.QueryRow(ctx, `SELECT GetCourierStatus($1)`, id).Scan(&status)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier status %d: %w", id, err)
	}
	if status == nil {
		return nil, nil
	}
	s := domain.OrderStatus(*status)
	return &s, nil
}

// History returns trigger-written status changes for an order, newest first.
func (r *OrderRepo) History(ctx context.Context, orderID int64) ([]domain.StatusHistoryEntry, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, old_status, new_status, changed_by, changed_at
        FROM courier_status_history
        WHERE order_id = $1
        ORDER BY changed_at DESC, id DESC
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d history: %w", orderID, err)
	}
	defer rows.Close()

	out := make([]domain.StatusHistoryEntry, 0)
	for rows.Next() {
		var (
			e   domain.StatusHistoryEntry
			old *string
		)
		if err := rows.Scan(&e.ID, &e.OrderID, &old, &e.NewStatus, &e.ChangedBy, &e.ChangedAt); err != nil {
			return nil, err
		}
		if old != nil {
			s := domain.OrderStatus(*old)
			e.OldStatus = &s
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// AuditTrail returns trigger-written audit entries for an order, newest first.
func (r *OrderRepo) AuditTrail(ctx context.Context, orderID int64) ([]domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, action, details, created_at
        FROM courier_audit_log
        WHERE order_id = $1
        ORDER BY created_at DESC, id DESC
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d audit trail: %w", orderID, err)
	}
	defer rows.Close()

	out := make([]domain.AuditEntry, 0)
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListOrders joins orders with the user and admin lookup tables, newest first.
func (r *OrderRepo) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	rows, err := r.db.Query(ctx, `
        SELECT o.id, o.bill_number, o.pickup_address, o.delivery_address,
               o.status, o.created_at, u.name, u.email, a.name
        FROM courier_orders o
        JOIN users u ON u.id = o.customer_id
        LEFT JOIN admins a ON a.id = o.admin_id
        ORDER BY o.created_at DESC, o.id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.OrderSummary, 0)
	for rows.Next() {
		var s domain.OrderSummary
		if err := rows.Scan(
			&s.ID, &s.BillNumber, &s.PickupAddress, &s.DeliveryAddress,
			&s.Status, &s.CreatedAt, &s.CustomerName, &s.CustomerEmail, &s.AdminName,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListUsers returns all users ordered by name.
func (r *OrderRepo) ListUsers(ctx context.Context) ([]domain.UserRef, error) {
	return r.listRefs(ctx, `SELECT id, name, email FROM users ORDER BY name`)
}

// ListAdmins returns all admins ordered by name.
func (r *OrderRepo) ListAdmins(ctx context.Context) ([]domain.UserRef, error) {
	return r.listRefs(ctx, `SELECT id, name, email FROM admins ORDER BY name`)
}

func (r *OrderRepo) listRefs(ctx context.Context, q string) ([]domain.UserRef, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.UserRef, 0)
	for rows.Next() {
		var u domain.UserRef
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Find returns the identifying fields of an order, or nil if no row matches.
func (r *OrderRepo) Find(ctx context.Context, id int64) (*domain.DeletedOrder, error) {
	var d domain.DeletedOrder
	err := r.db.QueryRow(ctx,
		`SELECT id, bill_number FROM courier_orders WHERE id = $1`, id,
	).Scan(&d.ID, &d.BillNumber)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order %d: %w", id, err)
	}
	return &d, nil
}

// Delete removes an order. Dependent history and audit rows cascade at the
// database level.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courier_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}
