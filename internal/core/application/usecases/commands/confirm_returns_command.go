package commands

import (
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var ErrConfirmReturnsCommandIsNotConstructed = errors.New(
	"ConfirmReturnsCommand must be created via NewConfirmReturnsCommand constructor",
)

// ConfirmReturnsCommand accepts returns with the counted quantity. An
// accepted quantity of zero deletes the return. Duplicate ids have their
// quantities summed.
type ConfirmReturnsCommand struct { //nolint:recvcheck //using for validation
	edits []returnEdit

	guard guard.ConstructorGuard
}

func NewConfirmReturnsCommand(items []ReturnQuantity) (ConfirmReturnsCommand, error) {
	edits, err := collectReturnQuantities(items, true)
	if err != nil {
		return ConfirmReturnsCommand{}, err
	}
	return ConfirmReturnsCommand{
		edits: edits,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmReturnsCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReturnsCommandIsNotConstructed)
}

func (c ConfirmReturnsCommand) ReturnIDs() []kernel.UUID {
	return editIDs(c.edits)
}

// Accepted returns the folded accepted quantity for id.
func (c ConfirmReturnsCommand) Accepted(id kernel.UUID) int {
	for _, e := range c.edits {
		if e.returnID == id {
			return e.quantity
		}
	}
	return 0
}
