package commands

import (
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

func NewChangePasswordCommand(accountID kernel.UUID, oldPassword, newPassword string) (ChangePasswordCommand, error) {
	if err := accountID.Validate(); err != nil {
		return ChangePasswordCommand{}, err
	}
	var problems []ItemProblem
	if oldPassword == "" {
		problems = append(problems, ItemProblem{Index: -1, Reason: "oldPassword is required"})
	}
	if p := checkPassword("newPassword", newPassword); p != nil {
		problems = append(problems, *p)
	}
	if len(problems) > 0 {
		return ChangePasswordCommand{}, validationError("invalid password change", problems)
	}
	return ChangePasswordCommand{
		accountID:   accountID,
		oldPassword: oldPassword,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}
