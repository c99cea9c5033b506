package commands_test

import (
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		"Widget", "WGT-001", mustID(t, 1), "", 10, mustMoney(t, 9.99),
	)
	require.NoError(t, err)

	assignedID := mustID(t, 3)
	stored := restoredProduct(t, assignedID, true)

	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Exists", ctx, mustID(t, 1)).Return(true, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*product.Product).SetID(assignedID))
			}).Return(nil).Once(),
		productRepo.On("Get", ctx, assignedID).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, created.IsActive())
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_DanglingCategory(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		"Widget", "WGT-001", mustID(t, 99), "", 10, mustMoney(t, 9.99),
	)
	require.NoError(t, err)

	categoryRepo := new(MockCategoryRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Exists", ctx, mustID(t, 99)).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCategoryDoesNotExist)
	uow.AssertExpectations(t)
}

func TestChangeProductActivationCommandHandler_Handle_Deactivate(t *testing.T) {
	ctx := t.Context()
	id := mustID(t, 3)
	cmd, err := commands.NewChangeProductActivationCommand(id, false)
	require.NoError(t, err)

	existing := restoredProduct(t, id, true)
	updated := restoredProduct(t, id, false)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, id).Return(existing, nil).Once(),
		productRepo.On("Update", ctx, existing).Return(nil).Once(),
		productRepo.On("Get", ctx, id).Return(updated, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeProductActivationCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.IsActive())
	assert.False(t, existing.IsActive())
	uow.AssertExpectations(t)
}

func TestNewCreateProductCommand_MissingFields(t *testing.T) {
	_, err := commands.NewCreateProductCommand("", "", mustID(t, 1), "", 1, mustMoney(t, 1))
	require.Error(t, err)
}

func TestNewCreateProductCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewCreateProductCommand("Widget", "WGT-001", mustID(t, 1), "", -1, mustMoney(t, 1))
	require.Error(t, err)
}
