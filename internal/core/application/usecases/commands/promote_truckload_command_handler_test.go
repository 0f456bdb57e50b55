package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/bol"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/truckload"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var promotedAt = fixedClock{now: time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)}

func TestPromoteTruckloadCommandHandler_IssuesNextNumberUnderMonthLock(t *testing.T) {
	f := newFixture(t)
	tl := newTruckload(t, truckload.Draft)

	mock.InOrder(
		f.truckloads.On("GetForUpdate", f.ctx, tl.ID()).Return(tl, nil).Once(),
		f.truckloads.On("LockBillOfLadingPrefix", f.ctx, "2503").Return(nil).Once(),
		f.truckloads.On("ListBillOfLadingNumbers", f.ctx, "2503").Return([]string{"2503001", "2503004"}, nil).Once(),
		f.truckloads.On("Update", f.ctx, tl).Return(nil).Once(),
	)
	f.expectCommit()

	cmd, _ := commands.NewPromoteTruckloadCommand(tl.ID())
	res, err := commands.NewPromoteTruckloadCommandHandler(truckloadUoWFactory{f.uow}, promotedAt).Handle(f.ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "2503005", res.BillOfLading)
	assert.Equal(t, truckload.Active, res.Status)
	f.assertExpectations(t)
}

func TestPromoteTruckloadCommandHandler_KeepsExistingNumber(t *testing.T) {
	f := newFixture(t)
	n, _ := bol.NewNumber("2412", 77)
	tl, err := truckload.RestoreTruckload(kernel.NewUUID(), "D", start, end, "", &n, truckload.Draft)
	require.NoError(t, err)

	f.truckloads.On("GetForUpdate", f.ctx, tl.ID()).Return(tl, nil).Once()
	f.truckloads.On("Update", f.ctx, tl).Return(nil).Once()
	f.expectCommit()

	cmd, _ := commands.NewPromoteTruckloadCommand(tl.ID())
	res, err := commands.NewPromoteTruckloadCommandHandler(truckloadUoWFactory{f.uow}, promotedAt).Handle(f.ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "2412077", res.BillOfLading)
	f.truckloads.AssertNotCalled(t, "LockBillOfLadingPrefix", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestPromoteTruckloadCommandHandler_OnlyDraftCanBePromoted(t *testing.T) {
	for _, status := range []truckload.Status{truckload.Active, truckload.Completed} {
		t.Run(status.String(), func(t *testing.T) {
			f := newFixture(t)
			tl := newTruckload(t, status)
			f.truckloads.On("GetForUpdate", f.ctx, tl.ID()).Return(tl, nil).Once()

			cmd, _ := commands.NewPromoteTruckloadCommand(tl.ID())
			_, err := commands.NewPromoteTruckloadCommandHandler(truckloadUoWFactory{f.uow}, promotedAt).Handle(f.ctx, cmd)

			require.ErrorIs(t, err, errs.ErrInvalidState)
			f.truckloads.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.assertExpectations(t)
		})
	}
}

func TestPromoteTruckloadCommandHandler_MonthExhausted(t *testing.T) {
	f := newFixture(t)
	tl := newTruckload(t, truckload.Draft)

	f.truckloads.On("GetForUpdate", f.ctx, tl.ID()).Return(tl, nil).Once()
	f.truckloads.On("LockBillOfLadingPrefix", f.ctx, "2503").Return(nil).Once()
	f.truckloads.On("ListBillOfLadingNumbers", f.ctx, "2503").Return([]string{"2503999"}, nil).Once()

	cmd, _ := commands.NewPromoteTruckloadCommand(tl.ID())
	_, err := commands.NewPromoteTruckloadCommandHandler(truckloadUoWFactory{f.uow}, promotedAt).Handle(f.ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	f.assertExpectations(t)
}
