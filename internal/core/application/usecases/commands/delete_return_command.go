package commands

import (
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/guard"
)

var ErrDeleteReturnCommandIsNotConstructed = errors.New(
	"DeleteReturnCommand must be created via NewDeleteReturnCommand constructor",
)

// DeleteReturnCommand withdraws one unconfirmed return.
type DeleteReturnCommand struct { //nolint:recvcheck //using for validation
	actor    ports.Identity
	returnID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReturnCommand(actor ports.Identity, returnID string) (DeleteReturnCommand, error) {
	id, err := parseIDs("returnId", []string{returnID})
	if err != nil {
		return DeleteReturnCommand{}, err
	}
	return DeleteReturnCommand{
		actor:    actor,
		returnID: id[0],
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteReturnCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReturnCommandIsNotConstructed)
}

func (c DeleteReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}
