package postgres_test

import (
	"testing"
	"time"

	postgresadapter "embroidery/internal/adapters/out/postgres"
	"embroidery/internal/adapters/out/postgres/assignmentrepo"
	"embroidery/internal/adapters/out/postgres/catalogrepo"
	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/adapters/out/postgres/pgtest"
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/core/domain/model/payment"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type assignUoWs struct{ f ports.UnitOfWorkFactory }

func (s assignUoWs) Create() commands.AssignmentUoW { return s.f.Create() }

type returnUoWs struct{ f ports.UnitOfWorkFactory }

func (s returnUoWs) Create() commands.ReturnUoW { return s.f.Create() }

type deliveryUoWs struct{ f ports.UnitOfWorkFactory }

func (s deliveryUoWs) Create() commands.DeliveryUoW { return s.f.Create() }

type paymentUoWs struct{ f ports.UnitOfWorkFactory }

func (s paymentUoWs) Create() commands.PaymentUoW { return s.f.Create() }

// ledger wires the real command handlers to an in-memory database seeded
// with one product, one XL order of ten pieces and a worker.
type ledger struct {
	t       *testing.T
	db      *gorm.DB
	factory ports.UnitOfWorkFactory

	order  *order.Order
	worker *account.Account

	assign  commands.BulkAssignCommandHandler
	submit  commands.SubmitReturnsCommandHandler
	edit    commands.EditReturnsCommandHandler
	remove  commands.DeleteReturnCommandHandler
	confirm commands.ConfirmReturnsCommandHandler
	deliver commands.BulkDeliverCommandHandler
	pay     commands.SavePaymentCommandHandler
}

func newLedger(t *testing.T) *ledger {
	t.Helper()
	ctx := t.Context()

	db := pgtest.OpenSQLite(t, postgresadapter.Models()...)
	factory := postgresadapter.NewGormUnitOfWorkFactory(db)
	uow := factory.Create()

	cat, err := catalog.NewCategory(kernel.NewUUID(), "Shirt", decimal.NewFromInt(10000), catalog.CategoryTypeApparel)
	require.NoError(t, err)
	catDTO := catalogrepo.CategoryFromDomain(cat)
	require.NoError(t, db.Create(&catDTO).Error)

	size, err := catalog.NewSize(kernel.NewUUID(), "XL", decimal.NewFromInt(2000))
	require.NoError(t, err)
	sizeDTO := catalogrepo.SizeFromDomain(size)
	require.NoError(t, db.Create(&sizeDTO).Error)

	p, err := catalog.NewProduct(kernel.NewUUID(), "Logo polo", "P-01", cat.ID(), nil, "")
	require.NoError(t, err)
	require.NoError(t, uow.CatalogRepository().AddProduct(ctx, p))

	sizeID := size.ID()
	o, err := order.NewOrder(kernel.NewUUID(), "PO-7", p.ID(), &sizeID, 10, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	l := &ledger{
		t:       t,
		db:      db,
		factory: factory,
		order:   o,
		assign:  commands.NewBulkAssignCommandHandler(assignUoWs{factory}),
		submit:  commands.NewSubmitReturnsCommandHandler(returnUoWs{factory}),
		edit:    commands.NewEditReturnsCommandHandler(returnUoWs{factory}),
		remove:  commands.NewDeleteReturnCommandHandler(returnUoWs{factory}),
		confirm: commands.NewConfirmReturnsCommandHandler(returnUoWs{factory}),
		deliver: commands.NewBulkDeliverCommandHandler(deliveryUoWs{factory}),
		pay:     commands.NewSavePaymentCommandHandler(paymentUoWs{factory}, nil, 0),
	}
	l.worker = l.addWorker("anna")
	return l
}

func (l *ledger) addWorker(username string) *account.Account {
	acc, err := account.NewAccount(kernel.NewUUID(), username, username+"@example.com", "hash", "Worker "+username, "", account.RoleWorker)
	require.NoError(l.t, err)
	require.NoError(l.t, l.factory.Create().AccountRepository().Add(l.t.Context(), acc))
	return acc
}

// assignTo gives n pieces of the order to worker and returns the
// assignment id.
func (l *ledger) assignTo(worker *account.Account, n int) kernel.UUID {
	cmd, err := commands.NewBulkAssignCommand(worker.ID().String(), []commands.AssignItem{{OrderID: l.order.ID().String(), Quantity: n}})
	require.NoError(l.t, err)
	res, err := l.assign.Handle(l.t.Context(), cmd)
	require.NoError(l.t, err)
	require.NoError(l.t, res.Err())

	var dto assignmentrepo.AssignmentDTO
	require.NoError(l.t, l.db.First(&dto, "order_id = ? AND worker_id = ?", l.order.ID().Bytes(), worker.ID().Bytes()).Error)
	id, err := dbconv.ID(dto.ID)
	require.NoError(l.t, err)
	return id
}

func (l *ledger) submitReturn(worker *account.Account, assignmentID kernel.UUID, n int) kernel.UUID {
	actor := ports.Identity{AccountID: worker.ID(), Role: account.RoleWorker}
	cmd, err := commands.NewSubmitReturnsCommand(actor, []commands.ReturnItem{{AssignmentID: assignmentID.String(), Quantity: n}})
	require.NoError(l.t, err)
	ids, err := l.submit.Handle(l.t.Context(), cmd)
	require.NoError(l.t, err)
	require.Len(l.t, ids, 1)
	return ids[0]
}

func (l *ledger) confirmReturn(returnID kernel.UUID, accepted int) error {
	cmd, err := commands.NewConfirmReturnsCommand([]commands.ReturnQuantity{{ReturnID: returnID.String(), Quantity: accepted}})
	require.NoError(l.t, err)
	_, err = l.confirm.Handle(l.t.Context(), cmd)
	return err
}

func (l *ledger) deliverAt(at time.Time, items ...commands.DeliverItem) (commands.BulkDeliverResult, error) {
	cmd, err := commands.NewBulkDeliverCommand(items, at)
	require.NoError(l.t, err)
	return l.deliver.Handle(l.t.Context(), cmd)
}

func (l *ledger) savePayment(worker *account.Account, returnIDs ...kernel.UUID) (kernel.UUID, error) {
	raw := make([]string, 0, len(returnIDs))
	for _, id := range returnIDs {
		raw = append(raw, id.String())
	}
	breakdown := payment.Breakdown{{Category: "Shirt", Quantity: 2, Total: decimal.NewFromInt(20000)}}
	cmd, err := commands.NewSavePaymentCommand(worker.Username(), decimal.NewFromInt(20000), "", breakdown, raw, "")
	require.NoError(l.t, err)
	return l.pay.Handle(l.t.Context(), cmd)
}

func (l *ledger) assignment(id kernel.UUID) *assignment.Assignment {
	a, err := l.factory.Create().AssignmentRepository().Get(l.t.Context(), id)
	require.NoError(l.t, err)
	return a
}

// requireChain checks delivered ≤ returned ≤ quantity on every row, and
// delivered ≤ credited summed per PO.
func (l *ledger) requireChain() {
	var broken int64
	require.NoError(l.t, l.db.Model(&assignmentrepo.AssignmentDTO{}).
		Where("quantity_delivered < 0 OR quantity_delivered > quantity_returned_total OR quantity_returned_total > quantity").
		Count(&broken).Error)
	require.Zero(l.t, broken)

	var perPO []struct {
		PO        string
		Delivered int
		Credited  int
	}
	require.NoError(l.t, l.db.Raw(`
		SELECT o.po AS po,
		       SUM(a.quantity_delivered) AS delivered,
		       SUM(a.quantity_returned_total) AS credited
		FROM assignments a JOIN orders o ON o.id = a.order_id
		GROUP BY o.po`).Scan(&perPO).Error)
	for _, row := range perPO {
		require.LessOrEqual(l.t, row.Delivered, row.Credited, "PO %s", row.PO)
	}
}

func requireCode(t *testing.T, err error, code errs.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, errs.CodeOf(err), err.Error())
}

func TestLedger_AssignReturnConfirmDeliver(t *testing.T) {
	l := newLedger(t)
	at := time.Date(2025, 7, 3, 9, 0, 0, 0, time.UTC)

	aid := l.assignTo(l.worker, 10)
	assert.Equal(t, 10, l.assignment(aid).Quantity())

	rid := l.submitReturn(l.worker, aid, 4)
	assert.Equal(t, 0, l.assignment(aid).Returned(), "unconfirmed returns move no counter")

	require.NoError(t, l.confirmReturn(rid, 4))
	a := l.assignment(aid)
	assert.Equal(t, 4, a.Returned())
	assert.Equal(t, 4, a.Available())
	l.requireChain()

	res, err := l.deliverAt(at, commands.DeliverItem{AssignmentID: aid.String(), Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-03", res.Day)
	a = l.assignment(aid)
	assert.Equal(t, 4, a.Delivered())
	assert.Equal(t, 0, a.Available())

	_, err = l.deliverAt(at, commands.DeliverItem{AssignmentID: aid.String(), Quantity: 1})
	requireCode(t, err, errs.CodeStateConflict)
	assert.Equal(t, 4, l.assignment(aid).Delivered())

	o, err := l.factory.Create().OrderRepository().Get(t.Context(), l.order.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, o.AssignedTotal())
	assert.Equal(t, 4, o.DeliveredTotal())
	l.requireChain()
}

func TestLedger_ConfirmIsNotRepeatable(t *testing.T) {
	l := newLedger(t)
	aid := l.assignTo(l.worker, 10)
	rid := l.submitReturn(l.worker, aid, 3)

	require.NoError(t, l.confirmReturn(rid, 3))
	requireCode(t, l.confirmReturn(rid, 3), errs.CodeStateConflict)

	assert.Equal(t, 3, l.assignment(aid).Returned(), "credited exactly once")
	l.requireChain()
}

func TestLedger_ConfirmedReturnsAreFrozen(t *testing.T) {
	l := newLedger(t)
	actor := ports.Identity{AccountID: l.worker.ID(), Role: account.RoleWorker}
	aid := l.assignTo(l.worker, 10)
	rid := l.submitReturn(l.worker, aid, 3)
	require.NoError(t, l.confirmReturn(rid, 3))

	for _, qty := range []int{1, 3, 5, 0} {
		cmd, err := commands.NewEditReturnsCommand(actor, []commands.ReturnQuantity{{ReturnID: rid.String(), Quantity: qty}})
		require.NoError(t, err)
		_, err = l.edit.Handle(t.Context(), cmd)
		requireCode(t, err, errs.CodeStateConflict)
	}

	del, err := commands.NewDeleteReturnCommand(actor, rid.String())
	require.NoError(t, err)
	requireCode(t, l.remove.Handle(t.Context(), del), errs.CodeStateConflict)

	r, err := l.factory.Create().ReturnRepository().Get(t.Context(), rid)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Quantity())
}

func TestLedger_SameDayDeliveriesMergeIntoOneDocument(t *testing.T) {
	l := newLedger(t)
	aid := l.assignTo(l.worker, 10)
	require.NoError(t, l.confirmReturn(l.submitReturn(l.worker, aid, 5), 5))

	first, err := l.deliverAt(time.Date(2025, 7, 3, 8, 0, 0, 0, time.UTC),
		commands.DeliverItem{AssignmentID: aid.String(), Quantity: 3, Note: "morning"})
	require.NoError(t, err)
	second, err := l.deliverAt(time.Date(2025, 7, 3, 23, 30, 0, 0, time.UTC),
		commands.DeliverItem{AssignmentID: aid.String(), Quantity: 2, Note: "evening"})
	require.NoError(t, err)
	require.Equal(t, first.DeliveryIDs, second.DeliveryIDs)

	doc, err := l.factory.Create().DeliveryRepository().Get(t.Context(), first.DeliveryIDs[0])
	require.NoError(t, err)
	assert.Equal(t, 5, doc.TotalQuantity())
	require.Len(t, doc.Lines(), 1)
	assert.Equal(t, "XL", doc.Lines()[0].Size)
	assert.Equal(t, "morning | evening", doc.Note())

	var docs int64
	require.NoError(t, l.db.Table("deliveries").Count(&docs).Error)
	assert.Equal(t, int64(1), docs)
	l.requireChain()
}

func TestLedger_StaleDeliveryDocumentIsNotOverwritten(t *testing.T) {
	l := newLedger(t)
	aid := l.assignTo(l.worker, 10)
	require.NoError(t, l.confirmReturn(l.submitReturn(l.worker, aid, 5), 5))
	at := time.Date(2025, 7, 3, 8, 0, 0, 0, time.UTC)

	first, err := l.deliverAt(at, commands.DeliverItem{AssignmentID: aid.String(), Quantity: 3})
	require.NoError(t, err)

	repo := l.factory.Create().DeliveryRepository()
	stale, err := repo.Get(t.Context(), first.DeliveryIDs[0])
	require.NoError(t, err)

	_, err = l.deliverAt(at, commands.DeliverItem{AssignmentID: aid.String(), Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, stale.AddLine("Logo polo", "XL", 1))
	require.ErrorIs(t, repo.Update(t.Context(), stale), ports.ErrConcurrentUpdate)

	doc, err := repo.Get(t.Context(), first.DeliveryIDs[0])
	require.NoError(t, err)
	assert.Equal(t, 5, doc.TotalQuantity())
	assert.Equal(t, 5, l.assignment(aid).Delivered())
	l.requireChain()
}

func TestLedger_BulkDeliverIsAllOrNothing(t *testing.T) {
	l := newLedger(t)
	other := l.addWorker("boris")

	enough := l.assignTo(l.worker, 5)
	short := l.assignTo(other, 5)
	require.NoError(t, l.confirmReturn(l.submitReturn(l.worker, enough, 3), 3))
	require.NoError(t, l.confirmReturn(l.submitReturn(other, short, 1), 1))

	_, err := l.deliverAt(time.Date(2025, 7, 3, 9, 0, 0, 0, time.UTC),
		commands.DeliverItem{AssignmentID: enough.String(), Quantity: 3},
		commands.DeliverItem{AssignmentID: short.String(), Quantity: 2},
	)
	requireCode(t, err, errs.CodeStateConflict)

	assert.Equal(t, 0, l.assignment(enough).Delivered())
	assert.Equal(t, 0, l.assignment(short).Delivered())
	var docs int64
	require.NoError(t, l.db.Table("deliveries").Count(&docs).Error)
	assert.Zero(t, docs)
}

func TestLedger_OverlappingPaymentsPayOnce(t *testing.T) {
	l := newLedger(t)
	aid := l.assignTo(l.worker, 10)
	r1 := l.submitReturn(l.worker, aid, 2)
	r2 := l.submitReturn(l.worker, aid, 2)
	r3 := l.submitReturn(l.worker, aid, 2)
	for _, id := range []kernel.UUID{r1, r2, r3} {
		require.NoError(t, l.confirmReturn(id, 2))
	}

	_, err := l.savePayment(l.worker, r1, r2)
	require.NoError(t, err)

	_, err = l.savePayment(l.worker, r2, r3)
	requireCode(t, err, errs.CodeStateConflict)
	appErr := errs.As(err)
	require.NotNil(t, appErr)
	problems, ok := appErr.Details().([]commands.ItemProblem)
	require.True(t, ok)
	require.Len(t, problems, 1)
	assert.Equal(t, r2.String(), problems[0].ID)

	var payments int64
	require.NoError(t, l.db.Table("payments").Count(&payments).Error)
	assert.Equal(t, int64(1), payments)

	r, err := l.factory.Create().ReturnRepository().Get(t.Context(), r3)
	require.NoError(t, err)
	assert.False(t, r.IsPaid(), "the rejected payment left r3 unpaid")
}
