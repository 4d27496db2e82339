package identity

import (
	"testing"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccount(t *testing.T, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(kernel.NewUUID(), "ann", "ann@example.com", "hash", "Ann", "0123456789", role)
	require.NoError(t, err)
	return acc
}

func newIssuer(t *testing.T, now time.Time) *JWTIssuer {
	t.Helper()
	issuer, err := NewJWTIssuer(TokenConfig{Secret: "s3cret", Issuer: "embroidery", TTL: time.Hour})
	require.NoError(t, err)
	issuer.now = func() time.Time { return now }
	return issuer
}

func TestNewJWTIssuer_RequiresConfig(t *testing.T) {
	_, err := NewJWTIssuer(TokenConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
	assert.Contains(t, err.Error(), "issuer")
	assert.Contains(t, err.Error(), "ttl")
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := newIssuer(t, now)
	acc := newAccount(t, account.RoleAdmin)

	token, issued, err := issuer.Issue(acc)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.TokenID)
	assert.Equal(t, now.Add(time.Hour), issued.ExpiresAt)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, acc.ID(), parsed.AccountID)
	assert.Equal(t, account.RoleAdmin, parsed.Role)
	assert.Equal(t, issued.TokenID, parsed.TokenID)
	assert.True(t, issued.ExpiresAt.Equal(parsed.ExpiresAt))
}

func TestJWTIssuer_RejectsExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	token, _, err := newIssuer(t, issuedAt).Issue(newAccount(t, account.RoleWorker))
	require.NoError(t, err)

	_, err = newIssuer(t, time.Now()).Parse(token)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestJWTIssuer_RejectsForeignTokens(t *testing.T) {
	issuer := newIssuer(t, time.Now())

	other, err := NewJWTIssuer(TokenConfig{Secret: "other", Issuer: "embroidery", TTL: time.Hour})
	require.NoError(t, err)
	foreign, _, err := other.Issue(newAccount(t, account.RoleWorker))
	require.NoError(t, err)
	_, err = issuer.Parse(foreign)
	require.ErrorIs(t, err, ports.ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(unsigned)
	require.ErrorIs(t, err, ports.ErrInvalidToken)

	_, err = issuer.Parse("not-a-token")
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	require.NoError(t, hasher.Compare(hash, "secret1"))
	require.ErrorIs(t, hasher.Compare(hash, "secret2"), ports.ErrPasswordMismatch)
	require.Error(t, hasher.Compare("not-a-hash", "secret1"))

	_, err = hasher.Hash("")
	require.Error(t, err)
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
