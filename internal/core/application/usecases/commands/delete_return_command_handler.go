package commands

import (
	"context"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/returns"
)

// DeleteReturnCommandHandler lets a worker withdraw one of their returns.
type DeleteReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
}

func NewDeleteReturnCommandHandler(uowFactory ReturnUoWFactory) DeleteReturnCommandHandler {
	return DeleteReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the return while it is still unconfirmed. The delete
// itself is guarded, so losing a race against a confirmation is a conflict.
func (h DeleteReturnCommandHandler) Handle(ctx context.Context, cmd DeleteReturnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReturnRepository()
	r, err := repo.Get(ctx, cmd.ReturnID())
	if err != nil {
		return err
	}
	rs := map[kernel.UUID]*returns.Return{r.ID(): r}
	if err = ensureReturnsOwned(ctx, cmd.actor, uow.AssignmentRepository(), rs); err != nil {
		return err
	}
	if err = rejectConfirmed([]kernel.UUID{r.ID()}, rs); err != nil {
		return err
	}

	if err = repo.DeleteUnconfirmed(ctx, r.ID()); err != nil {
		return guardFailed("delete return", err)
	}

	return uow.Commit(ctx)
}
