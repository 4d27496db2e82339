package commands

import (
	"errors"
	"strings"

	"embroidery/internal/pkg/guard"
)

var ErrRegisterCommandIsNotConstructed = errors.New(
	"RegisterCommand must be created via NewRegisterCommand constructor",
)

// MinPasswordLength applies to registration, password change and reset.
const MinPasswordLength = 6

// checkPassword enforces the shared password policy.
func checkPassword(field, password string) *ItemProblem {
	if len(password) < MinPasswordLength {
		return &ItemProblem{Index: -1, Reason: field + " must be at least 6 characters"}
	}
	return nil
}

// RegisterCommand creates a worker account. Field formats are checked by
// the account model; this command only enforces the password policy.
type RegisterCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	password string
	fullname string
	phone    string

	guard guard.ConstructorGuard
}

func NewRegisterCommand(username, email, password, fullname, phone string) (RegisterCommand, error) {
	if p := checkPassword("password", password); p != nil {
		return RegisterCommand{}, validationError("invalid registration", []ItemProblem{*p})
	}
	return RegisterCommand{
		username: strings.TrimSpace(username),
		email:    strings.TrimSpace(email),
		password: password,
		fullname: strings.TrimSpace(fullname),
		phone:    strings.TrimSpace(phone),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCommandIsNotConstructed)
}
