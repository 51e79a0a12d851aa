package handlers

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/dispatch"
	"courier-dispatch/internal/service/reports"
)

type dispatchUsecase interface {
	Create(ctx context.Context, in domain.NewOrderInput) (int64, error)
	UpdateStatus(ctx context.Context, u domain.StatusUpdate) error
	GetStatus(ctx context.Context, id int64) (domain.OrderStatus, error)
	Logs(ctx context.Context, id int64) (domain.OrderLogs, error)
	ListOrders(ctx context.Context) ([]domain.OrderSummary, error)
	ListUsers(ctx context.Context) ([]domain.UserRef, error)
	ListAdmins(ctx context.Context) ([]domain.UserRef, error)
	Delete(ctx context.Context, id int64) (domain.DeletedOrder, error)
}

// NewDispatchUsecase wires a dispatch.Service into a dispatchUsecase.
func NewDispatchUsecase(service *dispatch.Service) dispatchUsecase {
	return service
}

type reportsUsecase interface {
	Join(ctx context.Context) (string, []domain.JoinReportRow, error)
	Membership(ctx context.Context) (string, []domain.MembershipReportRow, error)
	Aggregate(ctx context.Context) (string, []domain.AggregateReportRow, error)
	AdminPerformance(ctx context.Context) (string, []domain.AdminPerformanceRow, error)
	CustomerActivity(ctx context.Context) (string, []domain.CustomerActivityRow, error)
}

// NewReportsUsecase wires a reports.Service into a reportsUsecase.
func NewReportsUsecase(service *reports.Service) reportsUsecase {
	return service
}
