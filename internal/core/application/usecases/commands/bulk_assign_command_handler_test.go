package commands_test

import (
	"errors"
	"testing"

	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewBulkAssignCommand_ListsEveryProblem(t *testing.T) {
	_, err := commands.NewBulkAssignCommand(kernel.NewUUID().String(), []commands.AssignItem{
		{OrderID: "nope", Quantity: 1},
		{OrderID: kernel.NewUUID().String(), Quantity: 0},
		{OrderID: kernel.NewUUID().String(), Quantity: 2},
	})
	require.Error(t, err)
	coded := errs.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, errs.CodeValidation, coded.Code())
	problems := coded.Details().([]commands.ItemProblem)
	require.Len(t, problems, 2)
	assert.Equal(t, 0, problems[0].Index)
	assert.Equal(t, 1, problems[1].Index)
}

func TestBulkAssignCommandHandler_Handle_PartialSuccess(t *testing.T) {
	ctx := t.Context()
	worker := newAccount(t, "lan", account.RoleWorker)
	o1 := newOrder(t, "PO-1", kernel.NewUUID(), nil, 10)
	o2 := newOrder(t, "PO-1", kernel.NewUUID(), nil, 5)

	cmd, err := commands.NewBulkAssignCommand(worker.ID().String(), []commands.AssignItem{
		{OrderID: o1.ID().String(), Quantity: 4},
		{OrderID: o2.ID().String(), Quantity: 2},
	})
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	accounts.On("Get", mock.Anything, worker.ID()).Return(worker, nil).Once()
	orders := new(MockOrderRepository)
	orders.On("GetMany", mock.Anything, []kernel.UUID{o1.ID(), o2.ID()}).Return([]*order.Order{o1, o2}, nil).Once()
	orders.On("IncrementAssigned", mock.Anything, o1.ID(), 4).Return(nil).Once()
	assignments := new(MockAssignmentRepository)
	assignments.On("UpsertIncrement", mock.Anything, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once()
	assignments.On("UpsertIncrement", mock.Anything, mock.AnythingOfType("*assignment.Assignment")).Return(errors.New("deadlock")).Once()

	precheck := new(MockUoW)
	precheck.On("AccountRepository").Return(accounts)
	precheck.On("OrderRepository").Return(orders)

	first := new(MockUoW)
	first.On("Begin", ctx).Return(nil).Once()
	first.On("AssignmentRepository").Return(assignments)
	first.On("OrderRepository").Return(orders)
	first.On("Commit", ctx).Return(nil).Once()
	first.On("Rollback", ctx).Return(nil).Once()

	second := new(MockUoW)
	second.On("Begin", ctx).Return(nil).Once()
	second.On("AssignmentRepository").Return(assignments)
	second.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFactory[commands.AssignmentUoW])
	factory.On("Create").Return(precheck).Once()
	factory.On("Create").Return(first).Once()
	factory.On("Create").Return(second).Once()

	h := commands.NewBulkAssignCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Assigned)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 1, result.Failed[0].Index)
	assert.Equal(t, o2.ID().String(), result.Failed[0].ID)
	require.ErrorContains(t, result.Err(), "deadlock")

	orders.AssertExpectations(t)
	assignments.AssertExpectations(t)
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Commit", ctx)
}

func TestBulkAssignCommandHandler_Handle_MissingOrdersBeforeAnyWrite(t *testing.T) {
	ctx := t.Context()
	worker := newAccount(t, "lan", account.RoleWorker)
	known := newOrder(t, "PO-1", kernel.NewUUID(), nil, 10)
	missing := kernel.NewUUID()

	cmd, err := commands.NewBulkAssignCommand(worker.ID().String(), []commands.AssignItem{
		{OrderID: known.ID().String(), Quantity: 1},
		{OrderID: missing.String(), Quantity: 1},
	})
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	accounts.On("Get", mock.Anything, worker.ID()).Return(worker, nil)
	orders := new(MockOrderRepository)
	orders.On("GetMany", mock.Anything, mock.Anything).Return([]*order.Order{known}, nil)

	uow := new(MockUoW)
	uow.On("AccountRepository").Return(accounts)
	uow.On("OrderRepository").Return(orders)
	factory := new(MockFactory[commands.AssignmentUoW])
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkAssignCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	coded := errs.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, errs.CodeNotFound, coded.Code())
	assert.Equal(t, map[string]any{"missingIds": []string{missing.String()}}, coded.Details())
	uow.AssertNotCalled(t, "Begin", ctx)
	factory.AssertExpectations(t)
}

func TestBulkAssignCommandHandler_Handle_RejectsAdminTarget(t *testing.T) {
	ctx := t.Context()
	admin := newAccount(t, "boss", account.RoleAdmin)
	cmd, err := commands.NewBulkAssignCommand(admin.ID().String(), []commands.AssignItem{
		{OrderID: kernel.NewUUID().String(), Quantity: 1},
	})
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	accounts.On("Get", mock.Anything, admin.ID()).Return(admin, nil)
	uow := new(MockUoW)
	uow.On("AccountRepository").Return(accounts)
	factory := new(MockFactory[commands.AssignmentUoW])
	factory.On("Create").Return(uow)

	h := commands.NewBulkAssignCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
}

func TestBulkAssignCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewBulkAssignCommandHandler(new(MockFactory[commands.AssignmentUoW]))
	_, err := h.Handle(t.Context(), commands.BulkAssignCommand{})
	require.ErrorIs(t, err, commands.ErrBulkAssignCommandIsNotConstructed)
}
