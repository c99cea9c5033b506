package commands_test

import (
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeExportOrderStatusCommandHandler_Handle_ShippingOnly(t *testing.T) {
	ctx := t.Context()
	id := mustID(t, 11)
	shipping := exportorder.ShippingInTransit
	cmd, err := commands.NewChangeExportOrderStatusCommand(id, nil, &shipping)
	require.NoError(t, err)

	existing := restoredExportOrder(t, id, order.StatusCompleted, exportorder.ShippingPending)
	updated := restoredExportOrder(t, id, order.StatusCompleted, exportorder.ShippingInTransit)

	exportOrderRepo := new(MockExportOrderRepository)
	uow := new(MockExportOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExportOrderRepository").Return(exportOrderRepo).Once(),
		exportOrderRepo.On("Get", ctx, id).Return(existing, nil).Once(),
		exportOrderRepo.On("Update", ctx, existing).Return(nil).Once(),
		exportOrderRepo.On("Get", ctx, id).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExportOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeExportOrderStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, exportorder.ShippingInTransit, result.ShippingStatus())
	// the untouched dimension keeps its stored value
	assert.Equal(t, order.StatusCompleted, existing.Status())
	assert.Equal(t, exportorder.ShippingInTransit, existing.ShippingStatus())
	exportOrderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeExportOrderStatusCommandHandler_Handle_BothDimensions(t *testing.T) {
	ctx := t.Context()
	id := mustID(t, 11)
	status := order.StatusCompleted
	shipping := exportorder.ShippingDelivered
	cmd, err := commands.NewChangeExportOrderStatusCommand(id, &status, &shipping)
	require.NoError(t, err)

	existing := restoredExportOrder(t, id, order.StatusPending, exportorder.ShippingInTransit)
	updated := restoredExportOrder(t, id, order.StatusCompleted, exportorder.ShippingDelivered)

	exportOrderRepo := new(MockExportOrderRepository)
	uow := new(MockExportOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ExportOrderRepository").Return(exportOrderRepo).Once(),
		exportOrderRepo.On("Get", ctx, id).Return(existing, nil).Once(),
		exportOrderRepo.On("Update", ctx, existing).Return(nil).Once(),
		exportOrderRepo.On("Get", ctx, id).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExportOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeExportOrderStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, result.Status())
	assert.Equal(t, exportorder.ShippingDelivered, result.ShippingStatus())
	uow.AssertExpectations(t)
}

func TestNewChangeExportOrderStatusCommand_NoDimension(t *testing.T) {
	_, err := commands.NewChangeExportOrderStatusCommand(mustID(t, 11), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoStatusProvided)
}

func TestNewChangeExportOrderStatusCommand_InvalidShippingStatus(t *testing.T) {
	bad := exportorder.ShippingStatus("Lost")
	_, err := commands.NewChangeExportOrderStatusCommand(mustID(t, 11), nil, &bad)
	require.Error(t, err)
}
