package commands_test

import (
	"errors"
	"testing"
	"time"

	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/payment"
	"embroidery/internal/core/domain/model/returns"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const paymentKeyTTL = 10 * time.Minute

func shirtBreakdown() payment.Breakdown {
	return payment.Breakdown{{
		Category: "Shirt",
		Quantity: 2,
		Total:    decimal.NewFromInt(20000),
		Sizes:    []payment.BonusLine{{Name: "XL", Quantity: 2, Total: decimal.NewFromInt(4000)}},
	}}
}

type paymentFixture struct {
	uow         *MockUoW
	factory     *MockFactory[commands.PaymentUoW]
	accounts    *MockAccountRepository
	assignments *MockAssignmentRepository
	returns     *MockReturnRepository
	payments    *MockPaymentRepository
}

func newPaymentFixture() paymentFixture {
	f := paymentFixture{
		uow:         new(MockUoW),
		factory:     new(MockFactory[commands.PaymentUoW]),
		accounts:    new(MockAccountRepository),
		assignments: new(MockAssignmentRepository),
		returns:     new(MockReturnRepository),
		payments:    new(MockPaymentRepository),
	}
	f.uow.On("AccountRepository").Return(f.accounts)
	f.uow.On("AssignmentRepository").Return(f.assignments)
	f.uow.On("ReturnRepository").Return(f.returns)
	f.uow.On("PaymentRepository").Return(f.payments)
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

func TestSavePaymentCommandHandler_Handle(t *testing.T) {
	worker := newAccount(t, "lan", account.RoleWorker)
	a := restoreAssignment(t, kernel.NewUUID(), worker.ID(), 10, 6, 0)

	t.Run("marks returns paid and stores the snapshot", func(t *testing.T) {
		ctx := t.Context()
		r1 := restoreReturn(t, a.ID(), 4, true, false)
		r2 := restoreReturn(t, a.ID(), 2, true, false)
		cmd, err := commands.NewSavePaymentCommand("lan", decimal.NewFromInt(24000), "july", shirtBreakdown(),
			[]string{r1.ID().String(), r2.ID().String(), r1.ID().String()}, "")
		require.NoError(t, err)
		ids := []kernel.UUID{r1.ID(), r2.ID()}
		assert.Equal(t, ids, cmd.ReturnIDs())

		f := newPaymentFixture()
		f.accounts.On("FindByUsername", mock.Anything, "lan").Return(worker, nil)
		f.returns.On("GetMany", mock.Anything, ids).Return([]*returns.Return{r1, r2}, nil)
		f.assignments.On("GetMany", mock.Anything, []kernel.UUID{a.ID()}).Return([]*assignment.Assignment{a}, nil)
		f.returns.On("MarkPaid", mock.Anything, ids).Return(int64(2), nil).Once()
		f.payments.On("Add", mock.Anything, mock.MatchedBy(func(p *payment.Payment) bool {
			return p.WorkerID() == worker.ID() && p.GrandTotal().Equal(decimal.NewFromInt(24000)) && len(p.ReturnIDs()) == 2
		})).Return(nil).Once()

		mock.InOrder(
			f.uow.On("Begin", ctx).Return(nil).Once(),
			f.uow.On("Commit", ctx).Return(nil).Once(),
			f.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewSavePaymentCommandHandler(f.factory, nil, paymentKeyTTL)
		id, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		require.NoError(t, id.Validate())
		f.returns.AssertExpectations(t)
		f.payments.AssertExpectations(t)
		f.uow.AssertExpectations(t)
	})

	t.Run("unconfirmed and paid returns are listed", func(t *testing.T) {
		ctx := t.Context()
		open := restoreReturn(t, a.ID(), 1, false, false)
		paid := restoreReturn(t, a.ID(), 1, true, true)
		cmd, err := commands.NewSavePaymentCommand("lan", decimal.Zero, "", shirtBreakdown(),
			[]string{open.ID().String(), paid.ID().String()}, "")
		require.NoError(t, err)

		f := newPaymentFixture()
		f.accounts.On("FindByUsername", mock.Anything, "lan").Return(worker, nil)
		f.returns.On("GetMany", mock.Anything, mock.Anything).Return([]*returns.Return{open, paid}, nil)
		f.assignments.On("GetMany", mock.Anything, mock.Anything).Return([]*assignment.Assignment{a}, nil)
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewSavePaymentCommandHandler(f.factory, nil, paymentKeyTTL)
		_, err = h.Handle(ctx, cmd)

		coded := errs.As(err)
		require.NotNil(t, coded)
		assert.Equal(t, errs.CodeStateConflict, coded.Code())
		problems, ok := coded.Details().([]commands.ItemProblem)
		require.True(t, ok)
		assert.Len(t, problems, 2)
		f.returns.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})

	t.Run("lost race on the paid flag releases the key", func(t *testing.T) {
		ctx := t.Context()
		r1 := restoreReturn(t, a.ID(), 4, true, false)
		r2 := restoreReturn(t, a.ID(), 2, true, false)
		cmd, err := commands.NewSavePaymentCommand("lan", decimal.NewFromInt(1), "", shirtBreakdown(),
			[]string{r1.ID().String(), r2.ID().String()}, "k-1")
		require.NoError(t, err)

		keys := new(MockIdempotencyStore)
		keys.On("Reserve", mock.Anything, "payment:k-1", paymentKeyTTL).Return(true, nil).Once()
		keys.On("Release", mock.Anything, "payment:k-1").Return(nil).Once()

		f := newPaymentFixture()
		f.accounts.On("FindByUsername", mock.Anything, "lan").Return(worker, nil)
		f.returns.On("GetMany", mock.Anything, mock.Anything).Return([]*returns.Return{r1, r2}, nil)
		f.assignments.On("GetMany", mock.Anything, mock.Anything).Return([]*assignment.Assignment{a}, nil)
		f.returns.On("MarkPaid", mock.Anything, mock.Anything).Return(int64(1), nil)
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewSavePaymentCommandHandler(f.factory, keys, paymentKeyTTL)
		_, err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeStateConflict, errs.CodeOf(err))
		keys.AssertExpectations(t)
		f.payments.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("reused key is rejected before any write", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSavePaymentCommand("lan", decimal.NewFromInt(1), "", shirtBreakdown(),
			[]string{kernel.NewUUID().String()}, "k-1")
		require.NoError(t, err)

		keys := new(MockIdempotencyStore)
		keys.On("Reserve", mock.Anything, "payment:k-1", paymentKeyTTL).Return(false, nil)
		factory := new(MockFactory[commands.PaymentUoW])

		h := commands.NewSavePaymentCommandHandler(factory, keys, paymentKeyTTL)
		_, err = h.Handle(ctx, cmd)
		assert.Equal(t, errs.CodeIdempotency, errs.CodeOf(err))
		factory.AssertNotCalled(t, "Create")
		keys.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("key store down", func(t *testing.T) {
		cmd, err := commands.NewSavePaymentCommand("lan", decimal.NewFromInt(1), "", shirtBreakdown(),
			[]string{kernel.NewUUID().String()}, "k-2")
		require.NoError(t, err)

		keys := new(MockIdempotencyStore)
		keys.On("Reserve", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("dial tcp: refused"))

		h := commands.NewSavePaymentCommandHandler(new(MockFactory[commands.PaymentUoW]), keys, paymentKeyTTL)
		_, err = h.Handle(t.Context(), cmd)
		assert.Equal(t, errs.CodeDependency, errs.CodeOf(err))
	})
}

func TestNewSavePaymentCommand_Invalid(t *testing.T) {
	bad := payment.Breakdown{{Category: " ", Quantity: -1, Total: decimal.NewFromInt(1)}}
	_, err := commands.NewSavePaymentCommand("", decimal.NewFromInt(-5), "", bad, nil, "")

	coded := errs.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, errs.CodeValidation, coded.Code())
	problems, ok := coded.Details().([]commands.ItemProblem)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(problems), 5)

	_, err = commands.NewSavePaymentCommand("lan", decimal.Zero, "", shirtBreakdown(), []string{"nope"}, "")
	assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
}
