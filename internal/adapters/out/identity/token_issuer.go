// Package identity signs and verifies access tokens and hashes passwords.
package identity

import (
	"errors"
	"fmt"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var signingMethod = jwt.SigningMethodHS256

type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Claims is the payload of an access token.
type Claims struct {
	AccountID string       `json:"account_id"`
	Role      account.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256 tokens.
type JWTIssuer struct {
	cfg TokenConfig
	now func() time.Time
}

func NewJWTIssuer(cfg TokenConfig) (*JWTIssuer, error) {
	var errSecret, errIssuer, errTTL error
	if cfg.Secret == "" {
		errSecret = errors.New("jwt secret is required")
	}
	if cfg.Issuer == "" {
		errIssuer = errors.New("jwt issuer is required")
	}
	if cfg.TTL <= 0 {
		errTTL = errors.New("jwt ttl must be positive")
	}
	if err := errors.Join(errSecret, errIssuer, errTTL); err != nil {
		return nil, err
	}
	return &JWTIssuer{cfg: cfg, now: time.Now}, nil
}

func (i *JWTIssuer) Issue(acc *account.Account) (string, ports.Identity, error) {
	if acc == nil {
		return "", ports.Identity{}, errors.New("account is required")
	}
	now := i.now()
	expiresAt := now.Add(i.cfg.TTL)
	jti := uuid.NewString()

	claims := Claims{
		AccountID: acc.ID().String(),
		Role:      acc.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Subject:   acc.Username(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        jti,
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", ports.Identity{}, fmt.Errorf("signing jwt: %w", err)
	}
	return signed, ports.Identity{
		AccountID: acc.ID(),
		Role:      acc.Role(),
		TokenID:   jti,
		ExpiresAt: expiresAt.Truncate(time.Second),
	}, nil
}

// Parse returns ports.ErrInvalidToken for every malformed, foreign or
// expired token.
func (i *JWTIssuer) Parse(token string) (ports.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %s", t.Header["alg"])
			}
			return []byte(i.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(claims.AccountID)
	if err != nil || !claims.Role.IsValid() || claims.ID == "" {
		return ports.Identity{}, ports.ErrInvalidToken
	}
	return ports.Identity{
		AccountID: id,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
