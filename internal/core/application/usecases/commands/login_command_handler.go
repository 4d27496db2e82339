package commands

import (
	"context"
	"errors"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *account.Account
}

// LoginCommandHandler verifies credentials and the portal rule, then issues
// an access token.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	portals    PortalPolicy
}

// NewLoginCommandHandler creates the handler. portals decides which portal
// origin each role may sign in from.
func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	portals PortalPolicy,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		portals:    portals,
	}
}

var errBadCredentials = errs.New(errs.CodeUnauthorized, "invalid username/email or password")

// Handle answers an unknown identifier and a wrong password with the same
// UNAUTHORIZED error.
//
// Example:
//
//	cmd, err := NewLoginCommand("lan", password, c.Request().Header.Get(echo.HeaderOrigin))
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("%s signed in until %s", result.Account.Username(), result.ExpiresAt)
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	repo := h.uowFactory.Create().AccountRepository()
	var (
		acc *account.Account
		err error
	)
	if cmd.IsEmail() {
		acc, err = repo.FindByEmail(ctx, account.NormalizeEmail(cmd.identifier))
	} else {
		acc, err = repo.FindByUsername(ctx, cmd.identifier)
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, errBadCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.password); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return LoginResult{}, errBadCredentials
		}
		return LoginResult{}, err
	}

	if err = h.portals.Check(cmd.origin, acc.Role()); err != nil {
		return LoginResult{}, err
	}

	token, identity, err := h.tokens.Issue(acc)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresAt: identity.ExpiresAt, Account: acc}, nil
}
