package commands

import (
	"context"
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/ledger"
	"embroidery/internal/pkg/errs"
)

// ConfirmReturnsResult counts confirmed returns and zero-quantity returns
// that were rejected and deleted.
type ConfirmReturnsResult struct {
	Confirmed int `json:"confirmed"`
	Deleted   int `json:"deleted"`
}

// ConfirmReturnsCommandHandler confirms returns and credits the accepted
// pieces to their assignments in the same transaction. Any guard miss or
// over-credit aborts the whole batch.
type ConfirmReturnsCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewConfirmReturnsCommandHandler creates the handler.
func NewConfirmReturnsCommandHandler(uowFactory ReturnUoWFactory) ConfirmReturnsCommandHandler {
	return ConfirmReturnsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms every listed return or none of them.
//
// Example:
//
//	handler := NewConfirmReturnsCommandHandler(uowFactory)
//	cmd, err := NewConfirmReturnsCommand([]ReturnQuantity{
//	    {ReturnID: r1, Quantity: 10},
//	    {ReturnID: r2, Quantity: 0}, // rejected, deleted
//	})
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if errs.CodeOf(err) == errs.CodeConflict {
//	    // another admin confirmed or the worker edited one of them
//	}
func (h ConfirmReturnsCommandHandler) Handle(ctx context.Context, cmd ConfirmReturnsCommand) (ConfirmReturnsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmReturnsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmReturnsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids := cmd.ReturnIDs()
	returnRepo := uow.ReturnRepository()
	rs, err := loadReturns(ctx, returnRepo, ids)
	if err != nil {
		return ConfirmReturnsResult{}, err
	}
	if err = rejectConfirmed(ids, rs); err != nil {
		return ConfirmReturnsResult{}, err
	}

	var result ConfirmReturnsResult
	var creditOrder []kernel.UUID
	credit := make(map[kernel.UUID]int)
	for _, e := range cmd.edits {
		if e.quantity == 0 {
			if err = returnRepo.DeleteUnconfirmed(ctx, e.returnID); err != nil {
				return ConfirmReturnsResult{}, guardFailed("reject return", err)
			}
			result.Deleted++
			continue
		}
		r := rs[e.returnID]
		if err = r.Confirm(e.quantity); err != nil {
			return ConfirmReturnsResult{}, err
		}
		if err = returnRepo.ConfirmUnconfirmed(ctx, e.returnID, e.quantity); err != nil {
			return ConfirmReturnsResult{}, guardFailed("confirm return", err)
		}
		if _, ok := credit[r.AssignmentID()]; !ok {
			creditOrder = append(creditOrder, r.AssignmentID())
		}
		credit[r.AssignmentID()] += e.quantity
		result.Confirmed++
	}

	if len(creditOrder) > 0 {
		if err = h.credit(ctx, uow, creditOrder, credit); err != nil {
			return ConfirmReturnsResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmReturnsResult{}, err
	}

	return result, nil
}

func (h ConfirmReturnsCommandHandler) credit(
	ctx context.Context,
	uow ReturnUoW,
	ids []kernel.UUID,
	amounts map[kernel.UUID]int,
) error {
	repo := uow.AssignmentRepository()
	assignments, err := loadAssignments(ctx, repo, ids)
	if err != nil {
		return err
	}

	var over []string
	for _, id := range ids {
		if err = assignments[id].CreditReturn(amounts[id]); err != nil {
			if !errors.Is(err, ledger.ErrInsufficientQuantity) {
				return err
			}
			over = append(over, id.String())
		}
	}
	if len(over) > 0 {
		return errs.New(errs.CodeStateConflict, "accepted quantity exceeds what is still owed on the assignment").
			WithDetails(map[string]any{"assignmentIds": over})
	}

	for _, id := range ids {
		if err = repo.CreditReturned(ctx, id, amounts[id]); err != nil {
			return guardFailed("credit assignment", err)
		}
	}
	return nil
}
