package commands_test

import (
	"errors"
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, 49.95), mustMoney(t, 54.95),
		order.StatusPending,
	)
	require.NoError(t, err)

	assignedID := mustID(t, 7)
	stored := restoredOrder(t, assignedID, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	supplierRepo := new(MockSupplierRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SupplierRepository").Return(supplierRepo).Once(),
		supplierRepo.On("Exists", ctx, mustID(t, 1)).Return(true, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Exists", ctx, mustID(t, 2)).Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*order.Order).SetID(assignedID))
			}).Return(nil).Once(),
		orderRepo.On("Get", ctx, assignedID).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(assignedID))
	orderRepo.AssertExpectations(t)
	supplierRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_DanglingSupplier(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, 49.95), mustMoney(t, 54.95),
		order.StatusPending,
	)
	require.NoError(t, err)

	supplierRepo := new(MockSupplierRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SupplierRepository").Return(supplierRepo).Once(),
		supplierRepo.On("Exists", ctx, mustID(t, 1)).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSupplierDoesNotExist)
	supplierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DanglingProduct(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, 49.95), mustMoney(t, 54.95),
		order.StatusPending,
	)
	require.NoError(t, err)

	supplierRepo := new(MockSupplierRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SupplierRepository").Return(supplierRepo).Once(),
		supplierRepo.On("Exists", ctx, mustID(t, 1)).Return(true, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Exists", ctx, mustID(t, 2)).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProductDoesNotExist)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		mustID(t, 1), mustID(t, 2), 5,
		mustMoney(t, 49.95), mustMoney(t, 54.95),
		order.StatusPending,
	)
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
