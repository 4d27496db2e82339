package ports

import (
	"context"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
)

type AccountRepository interface {
	Add(ctx context.Context, aggregate *account.Account) error

	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	FindByUsername(ctx context.Context, username string) (*account.Account, error)

	FindByEmail(ctx context.Context, email string) (*account.Account, error)

	// ExistsUsernameOrEmail reports whether either identifier is taken.
	ExistsUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	UpdatePassword(ctx context.Context, id kernel.UUID, passwordHash string) error
}

// ResetTokenRepository keeps at most one live reset token per email.
type ResetTokenRepository interface {
	// Upsert replaces any token stored for the same email.
	Upsert(ctx context.Context, token account.ResetToken) error

	FindByToken(ctx context.Context, token string) (account.ResetToken, error)

	FindByEmail(ctx context.Context, email string) (account.ResetToken, error)

	DeleteByToken(ctx context.Context, token string) error

	DeleteByEmail(ctx context.Context, email string) error

	// DeleteOlderThan removes tokens created before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
