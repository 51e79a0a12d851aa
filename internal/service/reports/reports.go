package reports

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"courier-dispatch/internal/domain"
)

// Human-readable labels describing each report's purpose.
const (
	LabelJoin             = "Orders with customer and admin details"
	LabelMembership       = "Users with at least one delivered order"
	LabelAggregate        = "Order counts and time range per status"
	LabelAdminPerformance = "Managed order totals per admin"
	LabelCustomerActivity = "Order totals and statuses per active customer"
)

// Service runs the fixed read-only reports. All operations are
// parameterless; the only failure mode is a database error.
type Service struct {
	repo             reportsRepository
	served           *prometheus.CounterVec
	operationTimeout time.Duration
}

// NewService creates a reports Service. served may be nil.
func NewService(r reportsRepository, served *prometheus.CounterVec, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, served: served, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) count(report string) {
	if s.served != nil {
		s.served.WithLabelValues(report).Inc()
	}
}

// Join runs the join report.
func (s *Service) Join(ctx context.Context) (string, []domain.JoinReportRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.repo.Join(ctx)
	if err != nil {
		return "", nil, err
	}
	s.count("join")
	return LabelJoin, rows, nil
}

// Membership runs the membership report.
func (s *Service) Membership(ctx context.Context) (string, []domain.MembershipReportRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.repo.Membership(ctx)
	if err != nil {
		return "", nil, err
	}
	s.count("membership")
	return LabelMembership, rows, nil
}

// Aggregate runs the per-status aggregate report.
func (s *Service) Aggregate(ctx context.Context) (string, []domain.AggregateReportRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.repo.Aggregate(ctx)
	if err != nil {
		return "", nil, err
	}
	s.count("aggregate")
	return LabelAggregate, rows, nil
}

// AdminPerformance runs the per-admin performance report.
func (s *Service) AdminPerformance(ctx context.Context) (string, []domain.AdminPerformanceRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.repo.AdminPerformance(ctx)
	if err != nil {
		return "", nil, err
	}
	s.count("admin_performance")
	return LabelAdminPerformance, rows, nil
}

// CustomerActivity runs the per-customer activity report.
func (s *Service) CustomerActivity(ctx context.Context) (string, []domain.CustomerActivityRow, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	rows, err := s.repo.CustomerActivity(ctx)
	if err != nil {
		return "", nil, err
	}
	s.count("customer_activity")
	return LabelCustomerActivity, rows, nil
}
