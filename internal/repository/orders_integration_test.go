//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/repository"
)

type OrderRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.OrderRepo

	customerID int64
	adminID    int64
}

func (s *OrderRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewOrderRepo(tcPool)
}

func (s *OrderRepositorySuite) SetupTest() {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx, `TRUNCATE courier_orders, courier_status_history, courier_audit_log, users, admins RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)

	err = s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email) VALUES ('Ivan', 'ivan@example.com') RETURNING id`,
	).Scan(&s.customerID)
	s.Require().NoError(err)

	err = s.pool.QueryRow(ctx,
		`INSERT INTO admins (name, email) VALUES ('Boris', 'boris@example.com') RETURNING id`,
	).Scan(&s.adminID)
	s.Require().NoError(err)
}

func (s *OrderRepositorySuite) createOrder(bill string) int64 {
	id, err := s.repo.CreateOrder(context.Background(), domain.NewOrderInput{
		CustomerID:      s.customerID,
		AdminID:         s.adminID,
		BillNumber:      bill,
		PickupAddress:   "Tverskaya 1",
		DeliveryAddress: "Arbat 10",
	})
	s.Require().NoError(err)
	return id
}

func (s *OrderRepositorySuite) TestCreateOrder_StartsPending() {
	ctx := context.Background()

	id := s.createOrder("BN-100")
	s.Require().Positive(id)

	status, err := s.repo.GetStatus(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(status)
	s.Equal(domain.StatusPending, *status)
}

func (s *OrderRepositorySuite) TestCreateOrder_UnknownCustomerFails() {
	_, err := s.repo.CreateOrder(context.Background(), domain.NewOrderInput{
		CustomerID:      9999,
		AdminID:         s.adminID,
		BillNumber:      "BN-404",
		PickupAddress:   "A",
		DeliveryAddress: "B",
	})
	s.Error(err)
	s.Contains(err.Error(), "foreign key")
}

func (s *OrderRepositorySuite) TestGetStatus_UnknownIDIsNil() {
	status, err := s.repo.GetStatus(context.Background(), 9999)
	s.Require().NoError(err)
	s.Nil(status)
}

func (s *OrderRepositorySuite) TestUpdateStatus_TriggerWritesHistoryAndAudit() {
	ctx := context.Background()
	id := s.createOrder("BN-100")

	err := s.repo.UpdateStatus(ctx, domain.StatusUpdate{
		OrderID:   id,
		NewStatus: domain.StatusInTransit,
		ChangedBy: "boris@example.com",
	})
	s.Require().NoError(err)

	status, err := s.repo.GetStatus(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(status)
	s.Equal(domain.StatusInTransit, *status)

	history, err := s.repo.History(ctx, id)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Require().NotNil(history[0].OldStatus)
	s.Equal(domain.StatusPending, *history[0].OldStatus)
	s.Equal(domain.StatusInTransit, history[0].NewStatus)
	s.Equal("boris@example.com", history[0].ChangedBy)

	audit, err := s.repo.AuditTrail(ctx, id)
	s.Require().NoError(err)
	s.Require().Len(audit, 1)
	s.Equal("status_update", audit[0].Action)
	s.Contains(audit[0].Details, "Pending")
	s.Contains(audit[0].Details, "In Transit")
}

func (s *OrderRepositorySuite) TestUpdateStatus_InvalidTransitionRejected() {
	ctx := context.Background()
	id := s.createOrder("BN-100")

	err := s.repo.UpdateStatus(ctx, domain.StatusUpdate{
		OrderID:   id,
		NewStatus: domain.StatusDelivered,
		ChangedBy: "boris@example.com",
	})
	s.Error(err)
	s.Contains(err.Error(), "invalid status transition")

	history, err := s.repo.History(ctx, id)
	s.Require().NoError(err)
	s.Empty(history, "rejected transition must not write history")
}

func (s *OrderRepositorySuite) TestUpdateStatus_UnknownOrderRejected() {
	err := s.repo.UpdateStatus(context.Background(), domain.StatusUpdate{
		OrderID:   9999,
		NewStatus: domain.StatusInTransit,
		ChangedBy: "boris@example.com",
	})
	s.Error(err)
	s.Contains(err.Error(), "not found")
}

func (s *OrderRepositorySuite) TestHistory_NewestFirst() {
	ctx := context.Background()
	id := s.createOrder("BN-100")

	s.Require().NoError(s.repo.UpdateStatus(ctx, domain.StatusUpdate{
		OrderID: id, NewStatus: domain.StatusInTransit, ChangedBy: "boris@example.com",
	}))
	s.Require().NoError(s.repo.UpdateStatus(ctx, domain.StatusUpdate{
		OrderID: id, NewStatus: domain.StatusDelivered, ChangedBy: "boris@example.com",
	}))

	history, err := s.repo.History(ctx, id)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(domain.StatusDelivered, history[0].NewStatus)
	s.Equal(domain.StatusInTransit, history[1].NewStatus)
}

func (s *OrderRepositorySuite) TestLogs_EmptyForUntouchedOrder() {
	ctx := context.Background()
	id := s.createOrder("BN-100")

	history, err := s.repo.History(ctx, id)
	s.Require().NoError(err)
	s.Empty(history)

	audit, err := s.repo.AuditTrail(ctx, id)
	s.Require().NoError(err)
	s.Empty(audit)
}

func (s *OrderRepositorySuite) TestListOrders_JoinsLookups() {
	ctx := context.Background()
	s.createOrder("BN-1")
	s.createOrder("BN-2")

	list, err := s.repo.ListOrders(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("BN-2", list[0].BillNumber, "newest first")
	s.Equal("Ivan", list[0].CustomerName)
	s.Require().NotNil(list[0].AdminName)
	s.Equal("Boris", *list[0].AdminName)
}

func (s *OrderRepositorySuite) TestListUsersAndAdmins() {
	ctx := context.Background()

	users, err := s.repo.ListUsers(ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("ivan@example.com", users[0].Email)

	admins, err := s.repo.ListAdmins(ctx)
	s.Require().NoError(err)
	s.Require().Len(admins, 1)
	s.Equal("boris@example.com", admins[0].Email)
}

func (s *OrderRepositorySuite) TestFindAndDelete_CascadesLogRows() {
	ctx := context.Background()
	id := s.createOrder("BN-100")
	s.Require().NoError(s.repo.UpdateStatus(ctx, domain.StatusUpdate{
		OrderID: id, NewStatus: domain.StatusInTransit, ChangedBy: "boris@example.com",
	}))

	found, err := s.repo.Find(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("BN-100", found.BillNumber)

	s.Require().NoError(s.repo.Delete(ctx, id))

	found, err = s.repo.Find(ctx, id)
	s.Require().NoError(err)
	s.Nil(found)

	var histRows int
	err = s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courier_status_history WHERE order_id = $1`, id).Scan(&histRows)
	s.Require().NoError(err)
	s.Zero(histRows, "history rows must cascade on delete")
}

func (s *OrderRepositorySuite) TestFind_UnknownIDIsNil() {
	found, err := s.repo.Find(context.Background(), 9999)
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *OrderRepositorySuite) TestCreateOrder_ContextCanceled_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.repo.CreateOrder(ctx, domain.NewOrderInput{
		CustomerID:      s.customerID,
		AdminID:         s.adminID,
		BillNumber:      "BN-100",
		PickupAddress:   "A",
		DeliveryAddress: "B",
	})
	s.Error(err)
	s.ErrorIs(err, context.Canceled)
}

func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderRepositorySuite))
}
