package commands_test

import (
	"testing"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/supplier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSupplierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSupplierCommand("Acme", "Jo", "555-0100", "", "")
	require.NoError(t, err)

	assignedID := mustID(t, 4)
	now := time.Now().UTC()
	stored, err := supplier.RestoreSupplier(
		assignedID, "Acme", "Jo", "555-0100", "", "", true, now, now,
	)
	require.NoError(t, err)

	supplierRepo := new(MockSupplierRepository)
	uow := new(MockSupplierUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SupplierRepository").Return(supplierRepo).Once(),
		supplierRepo.On("Add", ctx, mock.AnythingOfType("*supplier.Supplier")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*supplier.Supplier).SetID(assignedID))
			}).Return(nil).Once(),
		supplierRepo.On("Get", ctx, assignedID).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSupplierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateSupplierCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(assignedID))
	supplierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateSupplierCommand_MissingPhone(t *testing.T) {
	_, err := commands.NewCreateSupplierCommand("Acme", "", "", "", "")
	require.Error(t, err)
}
