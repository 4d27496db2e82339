package commands

import (
	"context"
	"errors"

	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// ChangePasswordCommandHandler replaces the password of a signed in
// account after checking the old one.
type ChangePasswordCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewChangePasswordCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle fails with VALIDATION_ERROR when the old password does not match.
func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
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

	repo := uow.AccountRepository()
	acc, err := repo.Get(ctx, cmd.accountID)
	if err != nil {
		return err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.oldPassword); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return errs.New(errs.CodeValidation, "old password is incorrect")
		}
		return err
	}

	hash, err := h.hasher.Hash(cmd.newPassword)
	if err != nil {
		return err
	}
	if err = acc.ChangePasswordHash(hash); err != nil {
		return err
	}
	if err = repo.UpdatePassword(ctx, acc.ID(), acc.PasswordHash()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
