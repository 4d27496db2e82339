package account

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"embroidery/internal/pkg/errs"
)

const (
	// ResetTokenTTL is how long a reset link stays valid.
	ResetTokenTTL = 15 * time.Minute
	// ResetCooldown is the minimum gap between two reset emails to one address.
	ResetCooldown = 2 * time.Minute

	resetTokenBytes = 32
)

// ResetToken is a one-time secret mailed to an account holder. There is at
// most one live token per email.
type ResetToken struct {
	email     string
	token     string
	createdAt time.Time
}

// NewResetToken issues a fresh random 64-hex-character token for email.
func NewResetToken(email string, now time.Time) (ResetToken, error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return ResetToken{}, fmt.Errorf("generate reset token: %w", err)
	}
	return RestoreResetToken(email, hex.EncodeToString(raw), now)
}

func RestoreResetToken(email, token string, createdAt time.Time) (ResetToken, error) {
	email = NormalizeEmail(email)
	token = strings.TrimSpace(token)
	var errEmail, errToken error
	if email == "" {
		errEmail = errs.NewValueIsRequiredError("email")
	}
	if token == "" {
		errToken = errs.NewValueIsRequiredError("token")
	}
	if err := errors.Join(errEmail, errToken); err != nil {
		return ResetToken{}, err
	}
	return ResetToken{email: email, token: token, createdAt: createdAt.UTC()}, nil
}

func (t ResetToken) Email() string { return t.email }

func (t ResetToken) Token() string { return t.token }

func (t ResetToken) CreatedAt() time.Time { return t.createdAt }

// IsExpired reports whether the token is older than ResetTokenTTL at now.
func (t ResetToken) IsExpired(now time.Time) bool {
	return now.Sub(t.createdAt) > ResetTokenTTL
}

// CooldownRemaining is how long the holder must wait before another reset
// email may be sent, or zero.
func (t ResetToken) CooldownRemaining(now time.Time) time.Duration {
	return max(ResetCooldown-now.Sub(t.createdAt), 0)
}
