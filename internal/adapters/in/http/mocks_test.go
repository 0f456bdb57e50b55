package http

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateDraftTruckload struct{ mock.Mock }

func (m *MockCreateDraftTruckload) Handle(ctx context.Context, cmd commands.CreateDraftTruckloadCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAssignLeg struct{ mock.Mock }

func (m *MockAssignLeg) Handle(ctx context.Context, cmd commands.AssignLegCommand) (commands.LegProjection, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.LegProjection), args.Error(1)
}

type MockUnassignLeg struct{ mock.Mock }

func (m *MockUnassignLeg) Handle(ctx context.Context, cmd commands.UnassignLegCommand) (commands.LegProjection, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.LegProjection), args.Error(1)
}

type MockSetLoadValueExclusion struct{ mock.Mock }

func (m *MockSetLoadValueExclusion) Handle(ctx context.Context, cmd commands.SetLoadValueExclusionCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockReorderStops struct{ mock.Mock }

func (m *MockReorderStops) Handle(ctx context.Context, cmd commands.ReorderStopsCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPromoteTruckload struct{ mock.Mock }

func (m *MockPromoteTruckload) Handle(
	ctx context.Context,
	cmd commands.PromoteTruckloadCommand,
) (commands.PromoteResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PromoteResult), args.Error(1)
}

type MockCompleteTruckload struct{ mock.Mock }

func (m *MockCompleteTruckload) Handle(ctx context.Context, cmd commands.CompleteTruckloadCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetTruckloadStops struct{ mock.Mock }

func (m *MockGetTruckloadStops) Handle(
	ctx context.Context,
	query queries.GetTruckloadStopsQuery,
) (queries.GetTruckloadStopsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetTruckloadStopsQueryResponse), args.Error(1)
}

type MockPeekNextBOL struct{ mock.Mock }

func (m *MockPeekNextBOL) Handle(
	ctx context.Context,
	query queries.PeekNextBOLQuery,
) (queries.PeekNextBOLQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PeekNextBOLQueryResponse), args.Error(1)
}
