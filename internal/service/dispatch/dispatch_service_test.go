package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/metrics"
	"courier-dispatch/internal/service/events"
)

type mockOrderRepo struct {
	calls int

	createOrderFn  func(ctx context.Context, in domain.NewOrderInput) (int64, error)
	updateStatusFn func(ctx context.Context, u domain.StatusUpdate) error
	getStatusFn    func(ctx context.Context, id int64) (*domain.OrderStatus, error)
	historyFn      func(ctx context.Context, orderID int64) ([]domain.StatusHistoryEntry, error)
	auditTrailFn   func(ctx context.Context, orderID int64) ([]domain.AuditEntry, error)
	listOrdersFn   func(ctx context.Context) ([]domain.OrderSummary, error)
	listUsersFn    func(ctx context.Context) ([]domain.UserRef, error)
	listAdminsFn   func(ctx context.Context) ([]domain.UserRef, error)
	findFn         func(ctx context.Context, id int64) (*domain.DeletedOrder, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, in domain.NewOrderInput) (int64, error) {
	m.calls++
	return m.createOrderFn(ctx, in)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, u domain.StatusUpdate) error {
	m.calls++
	return m.updateStatusFn(ctx, u)
}

func (m *mockOrderRepo) GetStatus(ctx context.Context, id int64) (*domain.OrderStatus, error) {
	m.calls++
	return m.getStatusFn(ctx, id)
}

func (m *mockOrderRepo) History(ctx context.Context, orderID int64) ([]domain.StatusHistoryEntry, error) {
	m.calls++
	return m.historyFn(ctx, orderID)
}

func (m *mockOrderRepo) AuditTrail(ctx context.Context, orderID int64) ([]domain.AuditEntry, error) {
	m.calls++
	return m.auditTrailFn(ctx, orderID)
}

func (m *mockOrderRepo) ListOrders(ctx context.Context) ([]domain.OrderSummary, error) {
	m.calls++
	return m.listOrdersFn(ctx)
}

func (m *mockOrderRepo) ListUsers(ctx context.Context) ([]domain.UserRef, error) {
	m.calls++
	return m.listUsersFn(ctx)
}

func (m *mockOrderRepo) ListAdmins(ctx context.Context) ([]domain.UserRef, error) {
	m.calls++
	return m.listAdminsFn(ctx)
}

func (m *mockOrderRepo) Find(ctx context.Context, id int64) (*domain.DeletedOrder, error) {
	m.calls++
	return m.findFn(ctx, id)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id int64) error {
	m.calls++
	return m.deleteFn(ctx, id)
}

type mockPublisher struct {
	published []events.StatusEvent
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, ev events.StatusEvent) error {
	m.published = append(m.published, ev)
	return m.err
}

func validInput() domain.NewOrderInput {
	return domain.NewOrderInput{
		CustomerID:      1,
		AdminID:         2,
		BillNumber:      "BN-100",
		PickupAddress:   "Tverskaya 1",
		DeliveryAddress: "Arbat 10",
	}
}

func TestNewService_ZeroTimeoutUsesDefault(t *testing.T) {
	t.Parallel()

	service := NewService(&mockOrderRepo{}, nil, nil, Counters{}, 0)
	require.Equal(t, 3*time.Second, service.operationTimeout)
}

func TestService_Create_OK(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		createOrderFn: func(ctx context.Context, in domain.NewOrderInput) (int64, error) {
			require.Equal(t, validInput(), in)
			return 7, nil
		},
	}
	service := NewService(repo, nil, nil, Counters{}, time.Second)

	id, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
	require.Equal(t, 1, repo.calls)
}

func TestService_Create_MissingFieldSkipsRepo(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*domain.NewOrderInput){
		"customer_id":      func(in *domain.NewOrderInput) { in.CustomerID = 0 },
		"admin_id":         func(in *domain.NewOrderInput) { in.AdminID = 0 },
		"bill_number":      func(in *domain.NewOrderInput) { in.BillNumber = "  " },
		"pickup_address":   func(in *domain.NewOrderInput) { in.PickupAddress = "" },
		"delivery_address": func(in *domain.NewOrderInput) { in.DeliveryAddress = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			repo := &mockOrderRepo{
				createOrderFn: func(ctx context.Context, in domain.NewOrderInput) (int64, error) {
					require.FailNow(t, "repo.CreateOrder should not be called on invalid input")
					return 0, nil
				},
			}
			service := NewService(repo, nil, nil, Counters{}, time.Second)

			in := validInput()
			mutate(&in)

			_, err := service.Create(context.Background(), in)
			require.ErrorIs(t, err, apperr.ErrInvalid)
			require.Contains(t, err.Error(), name)
			require.Zero(t, repo.calls)
		})
	}
}

func TestService_Create_CountsCreatedOrders(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		createOrderFn: func(ctx context.Context, in domain.NewOrderInput) (int64, error) { return 1, nil },
	}
	created := metrics.NewOrdersCreatedTotal()
	service := NewService(repo, nil, nil, Counters{OrdersCreated: created}, time.Second)

	_, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)
	_, err = service.Create(context.Background(), domain.NewOrderInput{})
	require.Error(t, err)

	require.Equal(t, float64(1), testutil.ToFloat64(created))
}

func TestService_UpdateStatus_OKPublishesEvent(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		updateStatusFn: func(ctx context.Context, u domain.StatusUpdate) error {
			require.Equal(t, int64(5), u.OrderID)
			require.Equal(t, domain.StatusInTransit, u.NewStatus)
			return nil
		},
	}
	pub := &mockPublisher{}
	service := NewService(repo, pub, nil, Counters{}, time.Second)

	err := service.UpdateStatus(context.Background(), domain.StatusUpdate{
		OrderID:   5,
		NewStatus: domain.StatusInTransit,
		ChangedBy: "admin@example.com",
	})
	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	require.Equal(t, int64(5), pub.published[0].OrderID)
	require.Equal(t, "In Transit", pub.published[0].Status)
	require.Equal(t, "admin@example.com", pub.published[0].ChangedBy)
}

func TestService_UpdateStatus_MissingFields(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		updateStatusFn: func(ctx context.Context, u domain.StatusUpdate) error {
			require.FailNow(t, "repo.UpdateStatus should not be called on invalid input")
			return nil
		},
	}
	service := NewService(repo, nil, nil, Counters{}, time.Second)

	err := service.UpdateStatus(context.Background(), domain.StatusUpdate{
		OrderID:   5,
		ChangedBy: "admin@example.com",
	})
	require.ErrorIs(t, err, apperr.ErrInvalid)

	err = service.UpdateStatus(context.Background(), domain.StatusUpdate{
		OrderID:   5,
		NewStatus: domain.StatusDelivered,
	})
	require.ErrorIs(t, err, apperr.ErrInvalid)
	require.Zero(t, repo.calls)
}

func TestService_UpdateStatus_PublishFailureIsNotSurfaced(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		updateStatusFn: func(ctx context.Context, u domain.StatusUpdate) error { return nil },
	}
	pub := &mockPublisher{err: errors.New("broker down")}
	service := NewService(repo, pub, nil, Counters{}, time.Second)

	err := service.UpdateStatus(context.Background(), domain.StatusUpdate{
		OrderID:   5,
		NewStatus: domain.StatusDelivered,
		ChangedBy: "admin@example.com",
	})
	require.NoError(t, err)
}

func TestService_UpdateStatus_RepoErrorSkipsPublish(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("invalid transition")
	repo := &mockOrderRepo{
		updateStatusFn: func(ctx context.Context, u domain.StatusUpdate) error { return dbErr },
	}
	pub := &mockPublisher{}
	service := NewService(repo, pub, nil, Counters{}, time.Second)

	err := service.UpdateStatus(context.Background(), domain.StatusUpdate{
		OrderID:   5,
		NewStatus: domain.StatusDelivered,
		ChangedBy: "admin@example.com",
	})
	require.ErrorIs(t, err, dbErr)
	require.Empty(t, pub.published)
}

func TestService_GetStatus_OK(t *testing.T) {
	t.Parallel()

	status := domain.StatusPending
	repo := &mockOrderRepo{
		getStatusFn: func(ctx context.Context, id int64) (*domain.OrderStatus, error) {
			require.Equal(t, int64(3), id)
			return &status, nil
		},
	}
	service := NewService(repo, nil, nil, Counters{}, time.Second)

	got, err := service.GetStatus(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got)
}

func TestService_GetStatus_NoRowIsNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		getStatusFn: func(ctx context.Context, id int64) (*domain.OrderStatus, error) {
			return nil, nil
		},
	}
	service := NewService(repo, nil, nil, Counters{}, time.Second)

	_, err := service.GetStatus(context.Background(), 404)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Logs_EmptyIsSuccess(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		historyFn: func(ctx context.Context, orderID int64) ([]domain.StatusHistoryEntry, error) {
			return []domain.StatusHistoryEntry{}, nil
		},
		auditTrailFn: func(ctx context.Context, orderID int64) ([]domain.AuditEntry, error) {
			return []domain.AuditEntry{}, nil
		},
	}
	service := NewService(repo, nil, nil, Counters{}, time.Second)

	logs, err := service.Logs(context.Background(), 9)
	require.NoError(t, err)
	require.Empty(t, logs.History)
	require.Empty(t, logs.Audit)
}

func TestService_Delete_OK(t *testing.T) {
	t.Parallel()

	deleted := false
	repo := &mockOrderRepo{
		findFn: func(ctx context.Context, id int64) (*domain.DeletedOrder, error) {
			return &domain.DeletedOrder{ID: 7, BillNumber: "BN-100"}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			require.Equal(t, int64(7), id)
			deleted = true
			return nil
		},
	}
	service := NewService(repo, nil, nil, Counters{}, time.Second)

	got, err := service.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, domain.DeletedOrder{ID: 7, BillNumber: "BN-100"}, got)
}

func TestService_Delete_UnknownIDIssuesNoDelete(t *testing.T) {
	t.Parallel()

	repo := &mockOrderRepo{
		findFn: func(ctx context.Context, id int64) (*domain.DeletedOrder, error) {
			return nil, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			require.FailNow(t, "repo.Delete should not be called for unknown id")
			return nil
		},
	}
	service := NewService(repo, nil, nil, Counters{}, time.Second)

	_, err := service.Delete(context.Background(), 404)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
