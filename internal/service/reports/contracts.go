package reports

import (
	"context"

	"courier-dispatch/internal/domain"
)

// reportsRepository defines the fixed analytical queries.
type reportsRepository interface {
	Join(ctx context.Context) ([]domain.JoinReportRow, error)
	Membership(ctx context.Context) ([]domain.MembershipReportRow, error)
	Aggregate(ctx context.Context) ([]domain.AggregateReportRow, error)
	AdminPerformance(ctx context.Context) ([]domain.AdminPerformanceRow, error)
	CustomerActivity(ctx context.Context) ([]domain.CustomerActivityRow, error)
}
