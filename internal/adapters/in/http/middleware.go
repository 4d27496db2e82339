package http

import (
	"context"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// TokenParser validates bearer tokens.
type TokenParser interface {
	Parse(token string) (ports.Identity, error)
}

// RequestLogger attaches the request id to the request context and writes
// one line per request.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}
			ctx := log.WithRequestID(req.Context(), requestID)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			ctx = log.WithFields(c.Request().Context(), map[string]any{
				"method":     req.Method,
				"path":       c.Path(),
				"status":     c.Response().Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"client_ip":  c.RealIP(),
			})
			log.Info(ctx, "http request")
			return nil
		}
	}
}

// Authenticate requires a valid bearer token that has not been revoked.
func Authenticate(tokens TokenParser, denylist ports.TokenDenylist, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errs.New(errs.CodeUnauthorized, "missing authorization header")
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return errs.New(errs.CodeUnauthorized, "invalid authorization header format")
			}

			identity, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return errs.Wrap(errs.CodeUnauthorized, err, "invalid or expired token")
			}

			if denylist != nil {
				denied, err := denylist.IsDenied(c.Request().Context(), identity.TokenID)
				if err != nil {
					return errs.Wrap(errs.CodeDependency, err, "token store unavailable")
				}
				if denied {
					return errs.New(errs.CodeUnauthorized, "token has been revoked")
				}
			}

			ctx := log.WithAccount(c.Request().Context(), identity.AccountID.String(), identity.Role.String())
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireRole admits only the given roles. It must run after Authenticate.
func RequireRole(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := identityFrom(c)
			if !ok {
				return errs.New(errs.CodeUnauthorized, "authentication required")
			}
			for _, r := range roles {
				if identity.Role == r {
					return next(c)
				}
			}
			return errs.New(errs.CodeForbidden, "insufficient role")
		}
	}
}

func identityFrom(c echo.Context) (ports.Identity, bool) {
	identity, ok := c.Get(identityKey).(ports.Identity)
	return identity, ok
}

func mustIdentity(c echo.Context) (ports.Identity, error) {
	identity, ok := identityFrom(c)
	if !ok {
		return ports.Identity{}, errs.New(errs.CodeUnauthorized, "authentication required")
	}
	return identity, nil
}

func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}
