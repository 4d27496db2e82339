package commands

import (
	"context"
	"fmt"

	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"go.uber.org/multierr"
)

// BulkAssignResult reports how many items were applied and why the others
// failed.
type BulkAssignResult struct {
	Assigned int           `json:"assigned"`
	Failed   []ItemProblem `json:"failed"`

	err error
}

// Err combines every item failure, or nil when all items were applied.
func (r BulkAssignResult) Err() error {
	return r.err
}

// BulkAssignCommandHandler upserts one assignment per item, each in its
// own short transaction, and bumps the order's assigned total alongside.
// A failed item does not undo the ones applied before it.
//
// Example:
//
//	handler := NewBulkAssignCommandHandler(uowFactory)
//	cmd, err := NewBulkAssignCommand(workerID, []AssignItem{
//	    {OrderID: orderA, Quantity: 20},
//	    {OrderID: orderB, Quantity: 5},
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    return err // nothing was written
//	case result.Err() != nil:
//	    log.Printf("%d assigned, %d failed", result.Assigned, len(result.Failed))
//	}
type BulkAssignCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewBulkAssignCommandHandler opens one unit of work per item from
// uowFactory.
func NewBulkAssignCommandHandler(uowFactory AssignmentUoWFactory) BulkAssignCommandHandler {
	return BulkAssignCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the worker and the referenced orders before any write, then
// applies the items one by one.
func (h BulkAssignCommandHandler) Handle(ctx context.Context, cmd BulkAssignCommand) (BulkAssignResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkAssignResult{}, err
	}

	if err := h.precheck(ctx, cmd); err != nil {
		return BulkAssignResult{}, err
	}

	result := BulkAssignResult{Failed: []ItemProblem{}}
	for i, line := range cmd.lines {
		if err := h.assignOne(ctx, cmd.workerID, line); err != nil {
			result.Failed = append(result.Failed, ItemProblem{Index: i, ID: line.orderID.String(), Reason: err.Error()})
			result.err = multierr.Append(result.err, fmt.Errorf("order %s: %w", line.orderID, err))
			continue
		}
		result.Assigned++
	}
	return result, nil
}

func (h BulkAssignCommandHandler) precheck(ctx context.Context, cmd BulkAssignCommand) error {
	uow := h.uowFactory.Create()

	worker, err := uow.AccountRepository().Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}
	if !worker.IsWorker() {
		return errs.New(errs.CodeValidation, "assignments can only be given to worker accounts")
	}

	requested := cmd.OrderIDs()
	orders, err := uow.OrderRepository().GetMany(ctx, requested)
	if err != nil {
		return err
	}
	found := make(map[kernel.UUID]bool, len(orders))
	for _, o := range orders {
		found[o.ID()] = true
	}
	if missing := missingIDs(requested, found); len(missing) > 0 {
		return notFoundError("orders not found", missing)
	}
	return nil
}

func (h BulkAssignCommandHandler) assignOne(ctx context.Context, workerID kernel.UUID, line assignLine) error {
	a, err := assignment.NewAssignment(kernel.NewUUID(), line.orderID, workerID, line.quantity)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssignmentRepository().UpsertIncrement(ctx, a); err != nil {
		return err
	}
	if err = uow.OrderRepository().IncrementAssigned(ctx, line.orderID, line.quantity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
