package commands

import (
	"errors"
	"strings"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// PortalPolicy binds each front-end origin to the role allowed to sign in
// through it.
type PortalPolicy struct {
	AdminOrigin  string
	WorkerOrigin string
	Enforce      bool
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}

// Check rejects a role signing in through the other role's portal, and any
// origin that is neither portal. It accepts everything when not enforced.
func (p PortalPolicy) Check(origin string, role account.Role) error {
	if !p.Enforce {
		return nil
	}
	origin = normalizeOrigin(origin)
	switch {
	case origin != "" && origin == normalizeOrigin(p.AdminOrigin):
		if role != account.RoleAdmin {
			return errs.New(errs.CodeForbidden, "this account cannot sign in to the admin portal")
		}
	case origin != "" && origin == normalizeOrigin(p.WorkerOrigin):
		if role != account.RoleWorker {
			return errs.New(errs.CodeForbidden, "this account cannot sign in to the worker portal")
		}
	default:
		return errs.New(errs.CodeForbidden, "forbidden origin")
	}
	return nil
}

// LoginCommand authenticates by username or, when the identifier contains
// "@", by email.
type LoginCommand struct { //nolint:recvcheck //using for validation
	identifier string
	password   string
	origin     string

	guard guard.ConstructorGuard
}

func NewLoginCommand(identifier, password, origin string) (LoginCommand, error) {
	identifier = strings.TrimSpace(identifier)
	var problems []ItemProblem
	if identifier == "" {
		problems = append(problems, ItemProblem{Index: -1, Reason: "username or email is required"})
	}
	if password == "" {
		problems = append(problems, ItemProblem{Index: -1, Reason: "password is required"})
	}
	if len(problems) > 0 {
		return LoginCommand{}, validationError("invalid login", problems)
	}
	return LoginCommand{
		identifier: identifier,
		password:   password,
		origin:     origin,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) IsEmail() bool {
	return strings.Contains(c.identifier, "@")
}
