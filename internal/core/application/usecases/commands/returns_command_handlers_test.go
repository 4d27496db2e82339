package commands_test

import (
	"testing"

	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/returns"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func returnUoW(assignments *MockAssignmentRepository, rs *MockReturnRepository) (*MockUoW, *MockFactory[commands.ReturnUoW]) {
	uow := new(MockUoW)
	uow.On("AssignmentRepository").Return(assignments)
	uow.On("ReturnRepository").Return(rs)
	factory := new(MockFactory[commands.ReturnUoW])
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestSubmitReturnsCommandHandler_Handle(t *testing.T) {
	worker := newAccount(t, "lan", account.RoleWorker)
	own := restoreAssignment(t, kernel.NewUUID(), worker.ID(), 10, 0, 0)
	foreign := restoreAssignment(t, kernel.NewUUID(), kernel.NewUUID(), 10, 0, 0)

	t.Run("stores unconfirmed returns", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSubmitReturnsCommand(workerIdentity(worker), []commands.ReturnItem{
			{AssignmentID: own.ID().String(), Quantity: 4, Note: " first batch "},
		})
		require.NoError(t, err)

		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, []kernel.UUID{own.ID()}).Return([]*assignment.Assignment{own}, nil)
		rs := new(MockReturnRepository)
		rs.On("AddMany", mock.Anything, mock.MatchedBy(func(items []*returns.Return) bool {
			return len(items) == 1 && items[0].Quantity() == 4 && !items[0].IsConfirmed() && items[0].Note() == "first batch"
		})).Return(nil).Once()

		uow, factory := returnUoW(assignments, rs)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewSubmitReturnsCommandHandler(factory)
		ids, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Len(t, ids, 1)
		rs.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("rejects assignments of another worker", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSubmitReturnsCommand(workerIdentity(worker), []commands.ReturnItem{
			{AssignmentID: own.ID().String(), Quantity: 1},
			{AssignmentID: foreign.ID().String(), Quantity: 1},
		})
		require.NoError(t, err)

		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, mock.Anything).Return([]*assignment.Assignment{own, foreign}, nil)
		rs := new(MockReturnRepository)
		uow, factory := returnUoW(assignments, rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewSubmitReturnsCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeForbidden, errs.CodeOf(err))
		rs.AssertNotCalled(t, "AddMany", mock.Anything, mock.Anything)
	})
}

func TestEditReturnsCommandHandler_Handle(t *testing.T) {
	worker := newAccount(t, "lan", account.RoleWorker)
	a := restoreAssignment(t, kernel.NewUUID(), worker.ID(), 10, 0, 0)

	t.Run("last duplicate wins and zero deletes", func(t *testing.T) {
		ctx := t.Context()
		keep := restoreReturn(t, a.ID(), 3, false, false)
		drop := restoreReturn(t, a.ID(), 2, false, false)

		cmd, err := commands.NewEditReturnsCommand(workerIdentity(worker), []commands.ReturnQuantity{
			{ReturnID: keep.ID().String(), Quantity: 1},
			{ReturnID: drop.ID().String(), Quantity: 0},
			{ReturnID: keep.ID().String(), Quantity: 5},
		})
		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{keep.ID(), drop.ID()}, cmd.ReturnIDs())

		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, []kernel.UUID{a.ID()}).Return([]*assignment.Assignment{a}, nil)
		rs := new(MockReturnRepository)
		rs.On("GetMany", mock.Anything, cmd.ReturnIDs()).Return([]*returns.Return{keep, drop}, nil)
		rs.On("UpdateQuantityUnconfirmed", mock.Anything, keep.ID(), 5).Return(nil).Once()
		rs.On("DeleteUnconfirmed", mock.Anything, drop.ID()).Return(nil).Once()

		uow, factory := returnUoW(assignments, rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewEditReturnsCommandHandler(factory)
		result, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, commands.EditReturnsResult{Updated: 1, Deleted: 1}, result)
		rs.AssertExpectations(t)
	})

	t.Run("confirmed return blocks the whole batch", func(t *testing.T) {
		ctx := t.Context()
		open := restoreReturn(t, a.ID(), 3, false, false)
		done := restoreReturn(t, a.ID(), 2, true, false)

		cmd, err := commands.NewEditReturnsCommand(workerIdentity(worker), []commands.ReturnQuantity{
			{ReturnID: open.ID().String(), Quantity: 1},
			{ReturnID: done.ID().String(), Quantity: 1},
		})
		require.NoError(t, err)

		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, mock.Anything).Return([]*assignment.Assignment{a}, nil)
		rs := new(MockReturnRepository)
		rs.On("GetMany", mock.Anything, mock.Anything).Return([]*returns.Return{open, done}, nil)

		uow, factory := returnUoW(assignments, rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewEditReturnsCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		coded := errs.As(err)
		require.NotNil(t, coded)
		assert.Equal(t, errs.CodeStateConflict, coded.Code())
		assert.Equal(t, map[string]any{"ids": []string{done.ID().String()}}, coded.Details())
		rs.AssertNotCalled(t, "UpdateQuantityUnconfirmed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost race on the guard is a conflict", func(t *testing.T) {
		ctx := t.Context()
		r := restoreReturn(t, a.ID(), 3, false, false)
		cmd, err := commands.NewEditReturnsCommand(workerIdentity(worker), []commands.ReturnQuantity{
			{ReturnID: r.ID().String(), Quantity: 2},
		})
		require.NoError(t, err)

		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, mock.Anything).Return([]*assignment.Assignment{a}, nil)
		rs := new(MockReturnRepository)
		rs.On("GetMany", mock.Anything, mock.Anything).Return([]*returns.Return{r}, nil)
		rs.On("UpdateQuantityUnconfirmed", mock.Anything, r.ID(), 2).Return(ports.ErrConcurrentUpdate)

		uow, factory := returnUoW(assignments, rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewEditReturnsCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeConflict, errs.CodeOf(err))
		require.ErrorIs(t, err, ports.ErrConcurrentUpdate)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func TestConfirmReturnsCommandHandler_Handle(t *testing.T) {
	t.Run("sums duplicates and credits the assignment once", func(t *testing.T) {
		ctx := t.Context()
		a := restoreAssignment(t, kernel.NewUUID(), kernel.NewUUID(), 10, 0, 0)
		r1 := restoreReturn(t, a.ID(), 4, false, false)
		r2 := restoreReturn(t, a.ID(), 4, false, false)

		cmd, err := commands.NewConfirmReturnsCommand([]commands.ReturnQuantity{
			{ReturnID: r1.ID().String(), Quantity: 2},
			{ReturnID: r2.ID().String(), Quantity: 0},
			{ReturnID: r1.ID().String(), Quantity: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, cmd.Accepted(r1.ID()))

		rs := new(MockReturnRepository)
		rs.On("GetMany", mock.Anything, []kernel.UUID{r1.ID(), r2.ID()}).Return([]*returns.Return{r1, r2}, nil)
		rs.On("ConfirmUnconfirmed", mock.Anything, r1.ID(), 4).Return(nil).Once()
		rs.On("DeleteUnconfirmed", mock.Anything, r2.ID()).Return(nil).Once()
		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, []kernel.UUID{a.ID()}).Return([]*assignment.Assignment{a}, nil)
		assignments.On("CreditReturned", mock.Anything, a.ID(), 4).Return(nil).Once()

		uow, factory := returnUoW(assignments, rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewConfirmReturnsCommandHandler(factory)
		result, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, commands.ConfirmReturnsResult{Confirmed: 1, Deleted: 1}, result)
		rs.AssertExpectations(t)
		assignments.AssertExpectations(t)
	})

	t.Run("over-credit aborts everything", func(t *testing.T) {
		ctx := t.Context()
		a := restoreAssignment(t, kernel.NewUUID(), kernel.NewUUID(), 5, 4, 0)
		r := restoreReturn(t, a.ID(), 3, false, false)

		cmd, err := commands.NewConfirmReturnsCommand([]commands.ReturnQuantity{{ReturnID: r.ID().String(), Quantity: 3}})
		require.NoError(t, err)

		rs := new(MockReturnRepository)
		rs.On("GetMany", mock.Anything, mock.Anything).Return([]*returns.Return{r}, nil)
		rs.On("ConfirmUnconfirmed", mock.Anything, r.ID(), 3).Return(nil)
		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, mock.Anything).Return([]*assignment.Assignment{a}, nil)

		uow, factory := returnUoW(assignments, rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewConfirmReturnsCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeStateConflict, errs.CodeOf(err))
		assignments.AssertNotCalled(t, "CreditReturned", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("already confirmed is rejected so confirming twice changes nothing", func(t *testing.T) {
		ctx := t.Context()
		r := restoreReturn(t, kernel.NewUUID(), 3, true, false)
		cmd, err := commands.NewConfirmReturnsCommand([]commands.ReturnQuantity{{ReturnID: r.ID().String(), Quantity: 3}})
		require.NoError(t, err)

		rs := new(MockReturnRepository)
		rs.On("GetMany", mock.Anything, mock.Anything).Return([]*returns.Return{r}, nil)
		uow, factory := returnUoW(new(MockAssignmentRepository), rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewConfirmReturnsCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeStateConflict, errs.CodeOf(err))
		rs.AssertNotCalled(t, "ConfirmUnconfirmed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing ids are listed", func(t *testing.T) {
		ctx := t.Context()
		missing := kernel.NewUUID()
		cmd, err := commands.NewConfirmReturnsCommand([]commands.ReturnQuantity{{ReturnID: missing.String(), Quantity: 1}})
		require.NoError(t, err)

		rs := new(MockReturnRepository)
		rs.On("GetMany", mock.Anything, mock.Anything).Return([]*returns.Return{}, nil)
		uow, factory := returnUoW(new(MockAssignmentRepository), rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewConfirmReturnsCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)
		coded := errs.As(err)
		require.NotNil(t, coded)
		assert.Equal(t, errs.CodeNotFound, coded.Code())
		assert.Equal(t, map[string]any{"missingIds": []string{missing.String()}}, coded.Details())
	})
}

func TestDeleteReturnCommandHandler_Handle(t *testing.T) {
	worker := newAccount(t, "lan", account.RoleWorker)
	a := restoreAssignment(t, kernel.NewUUID(), worker.ID(), 10, 0, 0)

	t.Run("deletes an unconfirmed return", func(t *testing.T) {
		ctx := t.Context()
		r := restoreReturn(t, a.ID(), 2, false, false)
		cmd, err := commands.NewDeleteReturnCommand(workerIdentity(worker), r.ID().String())
		require.NoError(t, err)

		rs := new(MockReturnRepository)
		rs.On("Get", mock.Anything, r.ID()).Return(r, nil)
		rs.On("DeleteUnconfirmed", mock.Anything, r.ID()).Return(nil).Once()
		assignments := new(MockAssignmentRepository)
		assignments.On("GetMany", mock.Anything, []kernel.UUID{a.ID()}).Return([]*assignment.Assignment{a}, nil)

		uow, factory := returnUoW(assignments, rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewDeleteReturnCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		rs.AssertExpectations(t)
	})

	t.Run("confirmed return cannot be deleted", func(t *testing.T) {
		ctx := t.Context()
		r := restoreReturn(t, a.ID(), 2, true, false)
		cmd, err := commands.NewDeleteReturnCommand(adminIdentity(), r.ID().String())
		require.NoError(t, err)

		rs := new(MockReturnRepository)
		rs.On("Get", mock.Anything, r.ID()).Return(r, nil)
		uow, factory := returnUoW(new(MockAssignmentRepository), rs)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewDeleteReturnCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeStateConflict, errs.CodeOf(err))
		rs.AssertNotCalled(t, "DeleteUnconfirmed", mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := commands.NewDeleteReturnCommand(adminIdentity(), "42")
		assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
	})
}
