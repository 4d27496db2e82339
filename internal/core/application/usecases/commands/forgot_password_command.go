package commands

import (
	"errors"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/pkg/guard"
)

var ErrForgotPasswordCommandIsNotConstructed = errors.New(
	"ForgotPasswordCommand must be created via NewForgotPasswordCommand constructor",
)

type ForgotPasswordCommand struct { //nolint:recvcheck //using for validation
	email string
	at    time.Time

	guard guard.ConstructorGuard
}

// NewForgotPasswordCommand requests a reset link for email at time at.
func NewForgotPasswordCommand(email string, at time.Time) (ForgotPasswordCommand, error) {
	email = account.NormalizeEmail(email)
	if email == "" {
		return ForgotPasswordCommand{}, validationError("email is required", nil)
	}
	return ForgotPasswordCommand{email: email, at: at.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (c ForgotPasswordCommand) Validate() error {
	return c.guard.Validate(ErrForgotPasswordCommandIsNotConstructed)
}

func (c ForgotPasswordCommand) Email() string { return c.email }
