package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/domain"
)

// ReportsRepo executes the fixed analytical queries. All queries are
// parameterless and read-only.
type ReportsRepo struct{ db *pgxpool.Pool }

// NewReportsRepo creates a new ReportsRepo.
func NewReportsRepo(db *pgxpool.Pool) *ReportsRepo { return &ReportsRepo{db: db} }

// Join returns orders enriched with required customer info and optional
// admin info, newest first.
func (r *ReportsRepo) Join(ctx context.Context) ([]domain.JoinReportRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT o.id, o.bill_number, o.status, o.created_at,
               u.name, u.email, a.name
        FROM courier_orders o
        JOIN users u ON u.id = o.customer_id
        LEFT JOIN admins a ON a.id = o.admin_id
        ORDER BY o.created_at DESC, o.id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("join report: %w", err)
	}
	defer rows.Close()

	out := make([]domain.JoinReportRow, 0)
	for rows.Next() {
		var row domain.JoinReportRow
		if err := rows.Scan(
			&row.OrderID, &row.BillNumber, &row.Status, &row.CreatedAt,
			&row.CustomerName, &row.CustomerEmail, &row.AdminName,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Membership returns users whose id appears among customers of at least one
// delivered order, alphabetical by name.
func (r *ReportsRepo) Membership(ctx context.Context) ([]domain.MembershipReportRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT u.id, u.name, u.email
        FROM users u
        WHERE u.id IN (
            SELECT o.customer_id FROM courier_orders o WHERE o.status = 'Delivered'
        )
        ORDER BY u.name
    `)
	if err != nil {
		return nil, fmt.Errorf("membership report: %w", err)
	}
	defer rows.Close()

	out := make([]domain.MembershipReportRow, 0)
	for rows.Next() {
		var row domain.MembershipReportRow
		if err := rows.Scan(&row.UserID, &row.Name, &row.Email); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Aggregate returns one row per distinct status with order count, distinct
// customer count and the creation timestamp range, ordered by count descending.
func (r *ReportsRepo) Aggregate(ctx context.Context) ([]domain.AggregateReportRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT status, COUNT(*), COUNT(DISTINCT customer_id),
               MIN(created_at), MAX(created_at)
        FROM courier_orders
        GROUP BY status
        ORDER BY COUNT(*) DESC, status
    `)
	if err != nil {
		return nil, fmt.Errorf("aggregate report: %w", err)
	}
	defer rows.Close()

	out := make([]domain.AggregateReportRow, 0)
	for rows.Next() {
		var row domain.AggregateReportRow
		if err := rows.Scan(
			&row.Status, &row.OrderCount, &row.DistinctCustomers,
			&row.FirstCreatedAt, &row.LastCreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// AdminPerformance returns one row per admin, including admins with zero
// managed orders, ordered by total descending.
func (r *ReportsRepo) AdminPerformance(ctx context.Context) ([]domain.AdminPerformanceRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT a.id, a.name,
               COUNT(o.id),
               COUNT(o.id) FILTER (WHERE o.status = 'Delivered'),
               COUNT(o.id) FILTER (WHERE o.status = 'In Transit'),
               COUNT(o.id) FILTER (WHERE o.status = 'Pending')
        FROM admins a
        LEFT JOIN courier_orders o ON o.admin_id = a.id
        GROUP BY a.id, a.name
        ORDER BY COUNT(o.id) DESC, a.name
    `)
	if err != nil {
		return nil, fmt.Errorf("admin performance report: %w", err)
	}
	defer rows.Close()

	out := make([]domain.AdminPerformanceRow, 0)
	for rows.Next() {
		var row domain.AdminPerformanceRow
		if err := rows.Scan(
			&row.AdminID, &row.AdminName, &row.Total,
			&row.Delivered, &row.InTransit, &row.Pending,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CustomerActivity returns one row per user with at least one order, with
// total order count and the distinct statuses held, ordered by total
// descending. The zero-order filter is applied after grouping.
func (r *ReportsRepo) CustomerActivity(ctx context.Context) ([]domain.CustomerActivityRow, error) {
	rows, err := r.db.Query(ctx, `
        SELECT u.id, u.name, COUNT(o.id),
               ARRAY_AGG(DISTINCT o.status) FILTER (WHERE o.id IS NOT NULL)
        FROM users u
        LEFT JOIN courier_orders o ON o.customer_id = u.id
        GROUP BY u.id, u.name
        HAVING COUNT(o.id) > 0
        ORDER BY COUNT(o.id) DESC, u.name
    `)
	if err != nil {
		return nil, fmt.Errorf("customer activity report: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CustomerActivityRow, 0)
	for rows.Next() {
		var row domain.CustomerActivityRow
		if err := rows.Scan(&row.UserID, &row.Name, &row.Total, &row.Statuses); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
