package commands

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	token    string
	password string
	at       time.Time

	guard guard.ConstructorGuard
}

func NewResetPasswordCommand(token, password string, at time.Time) (ResetPasswordCommand, error) {
	token = strings.TrimSpace(token)
	var problems []ItemProblem
	if token == "" {
		problems = append(problems, ItemProblem{Index: -1, Reason: "token is required"})
	}
	if p := checkPassword("password", password); p != nil {
		problems = append(problems, *p)
	}
	if len(problems) > 0 {
		return ResetPasswordCommand{}, validationError("invalid password reset", problems)
	}
	return ResetPasswordCommand{token: token, password: password, at: at.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}
