package commands

import (
	"context"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/returns"
)

// SubmitReturnsCommandHandler inserts unconfirmed returns. No counter moves
// until an admin confirms them.
type SubmitReturnsCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewSubmitReturnsCommandHandler creates the handler.
func NewSubmitReturnsCommandHandler(uowFactory ReturnUoWFactory) SubmitReturnsCommandHandler {
	return SubmitReturnsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the ids of the created returns in request order.
func (h SubmitReturnsCommandHandler) Handle(ctx context.Context, cmd SubmitReturnsCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids := cmd.AssignmentIDs()
	assignments, err := loadAssignments(ctx, uow.AssignmentRepository(), ids)
	if err != nil {
		return nil, err
	}
	if err = ensureOwned(cmd.Actor(), ids, assignments); err != nil {
		return nil, err
	}

	items := make([]*returns.Return, 0, len(cmd.lines))
	created := make([]kernel.UUID, 0, len(cmd.lines))
	for _, line := range cmd.lines {
		r, err := returns.NewReturn(kernel.NewUUID(), line.assignmentID, line.quantity, line.note)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
		created = append(created, r.ID())
	}

	if err = uow.ReturnRepository().AddMany(ctx, items); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
