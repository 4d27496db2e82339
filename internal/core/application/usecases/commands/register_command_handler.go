package commands

import (
	"context"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// RegisterCommandHandler creates worker accounts. Admins are never
// registered through it.
type RegisterCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterCommandHandler hashes passwords with hasher before they are
// stored.
func NewRegisterCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) RegisterCommandHandler {
	return RegisterCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle stores a new worker account and returns it.
func (h RegisterCommandHandler) Handle(ctx context.Context, cmd RegisterCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.password)
	if err != nil {
		return nil, err
	}
	acc, err := account.NewAccount(kernel.NewUUID(), cmd.username, cmd.email, hash, cmd.fullname, cmd.phone, account.RoleWorker)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()
	taken, err := repo.ExistsUsernameOrEmail(ctx, acc.Username(), acc.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.New(errs.CodeConflict, "username or email already exists")
	}

	if err = repo.Add(ctx, acc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return acc, nil
}
