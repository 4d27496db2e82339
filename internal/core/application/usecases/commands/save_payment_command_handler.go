package commands

import (
	"context"
	"fmt"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/payment"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

const idempotencyKeyPrefix = "payment:"

// SavePaymentCommandHandler flips the selected returns to paid and stores
// one payment snapshot in the same transaction. The paid flag is written
// with a confirmed AND NOT paid guard, so of two racing payouts for the
// same returns only one commits.
type SavePaymentCommandHandler struct {
	uowFactory     PaymentUoWFactory
	idempotency    ports.IdempotencyStore
	idempotencyTTL time.Duration
}

// NewSavePaymentCommandHandler creates the handler. idempotency may be nil,
// in which case idempotency keys are ignored.
func NewSavePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	idempotency ports.IdempotencyStore,
	idempotencyTTL time.Duration,
) SavePaymentCommandHandler {
	return SavePaymentCommandHandler{
		uowFactory:     uowFactory,
		idempotency:    idempotency,
		idempotencyTTL: idempotencyTTL,
	}
}

// Handle returns the id of the stored payment.
func (h SavePaymentCommandHandler) Handle(ctx context.Context, cmd SavePaymentCommand) (id kernel.UUID, err error) {
	if err = cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if key := cmd.IdempotencyKey(); key != "" && h.idempotency != nil {
		reserved, rerr := h.idempotency.Reserve(ctx, idempotencyKeyPrefix+key, h.idempotencyTTL)
		if rerr != nil {
			return kernel.UUID{}, errs.Wrap(errs.CodeDependency, rerr, "idempotency store unavailable")
		}
		if !reserved {
			return kernel.UUID{}, errs.New(errs.CodeIdempotency, "a payment with this idempotency key was already submitted")
		}
		defer func() {
			if err != nil {
				_ = h.idempotency.Release(context.WithoutCancel(ctx), idempotencyKeyPrefix+key)
			}
		}()
	}

	return h.save(ctx, cmd)
}

func (h SavePaymentCommandHandler) save(ctx context.Context, cmd SavePaymentCommand) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	worker, err := uow.AccountRepository().FindByUsername(ctx, cmd.Username())
	if err != nil {
		return kernel.UUID{}, err
	}

	ids := cmd.ReturnIDs()
	returnRepo := uow.ReturnRepository()
	rs, err := loadReturns(ctx, returnRepo, ids)
	if err != nil {
		return kernel.UUID{}, err
	}

	assignmentIDs := make([]kernel.UUID, 0, len(rs))
	seen := make(map[kernel.UUID]bool, len(rs))
	for _, id := range ids {
		if aid := rs[id].AssignmentID(); !seen[aid] {
			seen[aid] = true
			assignmentIDs = append(assignmentIDs, aid)
		}
	}
	assignments, err := loadAssignments(ctx, uow.AssignmentRepository(), assignmentIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	var offenders []ItemProblem
	for i, id := range ids {
		r := rs[id]
		if !assignments[r.AssignmentID()].BelongsTo(worker.ID()) {
			offenders = append(offenders, ItemProblem{Index: i, ID: id.String(), Reason: "return belongs to another worker"})
			continue
		}
		if err = r.EnsurePayable(); err != nil {
			offenders = append(offenders, ItemProblem{Index: i, ID: id.String(), Reason: err.Error()})
		}
	}
	if len(offenders) > 0 {
		return kernel.UUID{}, errs.New(errs.CodeStateConflict, "some returns cannot be paid").WithDetails(offenders)
	}

	changed, err := returnRepo.MarkPaid(ctx, ids)
	if err != nil {
		return kernel.UUID{}, err
	}
	if changed != int64(len(ids)) {
		return kernel.UUID{}, errs.New(errs.CodeStateConflict,
			fmt.Sprintf("only %d of %d returns could be marked paid; they were paid or changed concurrently", changed, len(ids)))
	}

	p, err := payment.NewPayment(kernel.NewUUID(), worker.ID(), worker.Username(), cmd.Breakdown(), cmd.GrandTotal(), cmd.Note(), ids)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
