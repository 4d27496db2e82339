package ports

import (
	"context"
	"errors"
	"io"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
)

var (
	// ErrEmailNotConfigured means the sender has no credentials.
	ErrEmailNotConfigured = errors.New("email sender is not configured")
	// ErrEmailUnavailable means the provider failed or timed out.
	ErrEmailUnavailable = errors.New("email provider is unavailable")

	ErrPasswordMismatch = errors.New("password does not match")
	ErrInvalidToken     = errors.New("token is invalid or expired")
)

type Email struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender delivers transactional mail.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}

// FileStore keeps uploaded product documents and hands back the public
// reference stored on the product.
type FileStore interface {
	Save(ctx context.Context, name string, content io.Reader) (string, error)

	// Delete removes the file behind ref. A missing file is not an error.
	Delete(ctx context.Context, ref string) error
}

// IdempotencyStore remembers request keys for a while.
type IdempotencyStore interface {
	// Reserve claims key for ttl and reports false when it was already taken.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release frees a key whose request failed so it can be retried.
	Release(ctx context.Context, key string) error
}

// TokenDenylist records revoked token ids until they would expire anyway.
type TokenDenylist interface {
	Deny(ctx context.Context, tokenID string, until time.Time) error

	IsDenied(ctx context.Context, tokenID string) (bool, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)

	// Compare returns ErrPasswordMismatch when plain does not match hash.
	Compare(hash, plain string) error
}

// Identity is the authenticated caller carried by an access token.
type Identity struct {
	AccountID kernel.UUID
	Role      account.Role
	TokenID   string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Issue(acc *account.Account) (string, Identity, error)

	// Parse verifies the token and returns ErrInvalidToken on failure.
	Parse(token string) (Identity, error)
}
