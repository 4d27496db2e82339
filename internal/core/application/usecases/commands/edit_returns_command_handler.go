package commands

import (
	"context"
)

// EditReturnsResult counts the rewritten and removed returns.
type EditReturnsResult struct {
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// EditReturnsCommandHandler applies a batch of edits in one transaction.
// Every write is guarded by confirmed = false, so a return confirmed
// concurrently aborts the batch.
type EditReturnsCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewEditReturnsCommandHandler creates the handler.
func NewEditReturnsCommandHandler(uowFactory ReturnUoWFactory) EditReturnsCommandHandler {
	return EditReturnsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rewrites quantities of unconfirmed returns. Workers may only touch
// their own, admins any. A zero quantity deletes the return.
func (h EditReturnsCommandHandler) Handle(ctx context.Context, cmd EditReturnsCommand) (EditReturnsResult, error) {
	if err := cmd.Validate(); err != nil {
		return EditReturnsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EditReturnsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids := cmd.ReturnIDs()
	repo := uow.ReturnRepository()
	rs, err := loadReturns(ctx, repo, ids)
	if err != nil {
		return EditReturnsResult{}, err
	}
	if err = ensureReturnsOwned(ctx, cmd.Actor(), uow.AssignmentRepository(), rs); err != nil {
		return EditReturnsResult{}, err
	}
	if err = rejectConfirmed(ids, rs); err != nil {
		return EditReturnsResult{}, err
	}

	var result EditReturnsResult
	for _, e := range cmd.edits {
		if e.quantity == 0 {
			if err = repo.DeleteUnconfirmed(ctx, e.returnID); err != nil {
				return EditReturnsResult{}, guardFailed("delete return", err)
			}
			result.Deleted++
			continue
		}
		if err = rs[e.returnID].Edit(e.quantity); err != nil {
			return EditReturnsResult{}, err
		}
		if err = repo.UpdateQuantityUnconfirmed(ctx, e.returnID, e.quantity); err != nil {
			return EditReturnsResult{}, guardFailed("edit return", err)
		}
		result.Updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return EditReturnsResult{}, err
	}

	return result, nil
}
