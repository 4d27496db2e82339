package account_test

import (
	"testing"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	a, err := account.NewAccount(kernel.NewUUID(), "lan01", " Lan@Example.com ", "$2a$hash", "Lan Tran", "0901234567", account.RoleWorker)
	require.NoError(t, err)
	assert.Equal(t, "lan@example.com", a.Email())
	assert.True(t, a.IsWorker())
	assert.Equal(t, "worker", a.Role().String())
}

func TestNewAccount_Invalid(t *testing.T) {
	_, err := account.NewAccount(kernel.NewUUID(), "lan 01", "not-an-email", "", "", "09x", account.Role(7))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAccount_ChangePasswordHash(t *testing.T) {
	a, err := account.NewAccount(kernel.NewUUID(), "admin", "admin@example.com", "old", "Admin", "", account.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, a.ChangePasswordHash("new"))
	assert.Equal(t, "new", a.PasswordHash())
	require.ErrorIs(t, a.ChangePasswordHash(" "), errs.ErrValueIsRequired)
}

func TestResetToken(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	tok, err := account.NewResetToken("Lan@Example.com", now)
	require.NoError(t, err)

	assert.Len(t, tok.Token(), 64)
	assert.Equal(t, "lan@example.com", tok.Email())

	assert.Equal(t, 90*time.Second, tok.CooldownRemaining(now.Add(30*time.Second)))
	assert.Zero(t, tok.CooldownRemaining(now.Add(3*time.Minute)))

	assert.False(t, tok.IsExpired(now.Add(15*time.Minute)))
	assert.True(t, tok.IsExpired(now.Add(15*time.Minute+time.Second)))

	other, err := account.NewResetToken("lan@example.com", now)
	require.NoError(t, err)
	assert.NotEqual(t, tok.Token(), other.Token())
}
