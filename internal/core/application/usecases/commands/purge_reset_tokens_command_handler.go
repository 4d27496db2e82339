package commands

import (
	"context"
	"time"

	"embroidery/internal/core/domain/model/account"
)

// PurgeResetTokensCommandHandler removes reset tokens past their lifetime.
type PurgeResetTokensCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewPurgeResetTokensCommandHandler creates the handler run by the reset
// token cleanup job.
func NewPurgeResetTokensCommandHandler(uowFactory AccountUoWFactory) PurgeResetTokensCommandHandler {
	return PurgeResetTokensCommandHandler{uowFactory: uowFactory}
}

// Handle deletes tokens created more than account.ResetTokenTTL before now
// and returns how many went away.
func (h PurgeResetTokensCommandHandler) Handle(ctx context.Context, now time.Time) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.ResetTokenRepository().DeleteOlderThan(ctx, now.Add(-account.ResetTokenTTL))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return n, nil
}
