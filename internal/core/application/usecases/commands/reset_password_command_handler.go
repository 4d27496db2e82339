package commands

import (
	"context"
	"errors"

	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// ResetPasswordCommandHandler consumes a reset token. Expired and orphan
// tokens are deleted even though the request is rejected.
type ResetPasswordCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewResetPasswordCommandHandler creates the handler.
func NewResetPasswordCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle sets the new password and deletes the token in one transaction.
func (h ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
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

	tokens := uow.ResetTokenRepository()
	token, err := tokens.FindByToken(ctx, cmd.token)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.New(errs.CodeValidation, "invalid or expired token")
	}
	if err != nil {
		return err
	}

	if token.IsExpired(cmd.at) {
		return h.discard(ctx, uow, cmd.token, errs.New(errs.CodeValidation, "token has expired"))
	}

	accounts := uow.AccountRepository()
	acc, err := accounts.FindByEmail(ctx, token.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return h.discard(ctx, uow, cmd.token, errs.New(errs.CodeValidation, "account not found for this token"))
	}
	if err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.password)
	if err != nil {
		return err
	}
	if err = acc.ChangePasswordHash(hash); err != nil {
		return err
	}
	if err = accounts.UpdatePassword(ctx, acc.ID(), acc.PasswordHash()); err != nil {
		return err
	}
	if err = tokens.DeleteByEmail(ctx, token.Email()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// discard deletes the token, commits, and reports reason.
func (h ResetPasswordCommandHandler) discard(ctx context.Context, uow AccountUoW, token string, reason error) error {
	if err := uow.ResetTokenRepository().DeleteByToken(ctx, token); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}
	return reason
}
