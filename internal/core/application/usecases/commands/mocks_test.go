package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/truckload"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockTruckloadRepository struct{ mock.Mock }

func (m *MockTruckloadRepository) Add(ctx context.Context, tl *truckload.Truckload) error {
	return m.Called(ctx, tl).Error(0)
}

func (m *MockTruckloadRepository) Update(ctx context.Context, tl *truckload.Truckload) error {
	return m.Called(ctx, tl).Error(0)
}

func (m *MockTruckloadRepository) Get(ctx context.Context, id kernel.UUID) (*truckload.Truckload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truckload.Truckload), args.Error(1)
}

func (m *MockTruckloadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*truckload.Truckload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truckload.Truckload), args.Error(1)
}

func (m *MockTruckloadRepository) LockBillOfLadingPrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func (m *MockTruckloadRepository) ListBillOfLadingNumbers(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAssignmentRepository) FindByOrderLeg(
	ctx context.Context,
	orderID kernel.UUID,
	t assignment.Type,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, orderID, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByTruckload(ctx context.Context, id kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByOrder(ctx context.Context, id kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockGoodsRepository struct{ mock.Mock }

func (m *MockGoodsRepository) SetPickedUp(ctx context.Context, ids []kernel.UUID, v bool) error {
	return m.Called(ctx, ids, v).Error(0)
}

func (m *MockGoodsRepository) SetDelivered(ctx context.Context, ids []kernel.UUID, v bool) error {
	return m.Called(ctx, ids, v).Error(0)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TruckloadRepository() ports.TruckloadRepository {
	return m.Called().Get(0).(ports.TruckloadRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	return m.Called().Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) GoodsRepository() ports.GoodsRepository {
	return m.Called().Get(0).(ports.GoodsRepository)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type truckloadUoWFactory struct{ uow *MockUoW }

func (f truckloadUoWFactory) Create() commands.TruckloadUoW { return f.uow }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// fixture wires a MockUoW to fresh repository mocks. Begin and the deferred
// Rollback are expected once; Commit is left to each test.
type fixture struct {
	ctx        context.Context
	uow        *MockUoW
	orders     *MockOrderRepository
	truckloads *MockTruckloadRepository
	stops      *MockAssignmentRepository
	goods      *MockGoodsRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:        t.Context(),
		uow:        new(MockUoW),
		orders:     new(MockOrderRepository),
		truckloads: new(MockTruckloadRepository),
		stops:      new(MockAssignmentRepository),
		goods:      new(MockGoodsRepository),
	}

	f.uow.On("Begin", f.ctx).Return(nil).Once()
	f.uow.On("Rollback", f.ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("TruckloadRepository").Return(f.truckloads).Maybe()
	f.uow.On("AssignmentRepository").Return(f.stops).Maybe()
	f.uow.On("GoodsRepository").Return(f.goods).Maybe()

	return f
}

func (f *fixture) expectCommit() {
	f.uow.On("Commit", f.ctx).Return(nil).Once()
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.truckloads.AssertExpectations(t)
	f.stops.AssertExpectations(t)
	f.goods.AssertExpectations(t)
}

var (
	start = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)
)

func newTruckload(t *testing.T, status truckload.Status) *truckload.Truckload {
	t.Helper()
	tl, err := truckload.RestoreTruckload(kernel.NewUUID(), "R. Alvarez", start, end, "TR-12", nil, status)
	require.NoError(t, err)
	return tl
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Acme Lumber", "Northside Builders")
	require.NoError(t, err)
	return o
}

func newStop(t *testing.T, truckloadID, orderID kernel.UUID, typ assignment.Type, seq int) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), truckloadID, orderID, typ, seq, false)
	require.NoError(t, err)
	return a
}
