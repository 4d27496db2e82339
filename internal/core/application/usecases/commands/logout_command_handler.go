package commands

import (
	"context"

	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// LogoutCommandHandler revokes the caller's token until it expires.
type LogoutCommandHandler struct {
	denylist ports.TokenDenylist
}

func NewLogoutCommandHandler(denylist ports.TokenDenylist) LogoutCommandHandler {
	return LogoutCommandHandler{denylist: denylist}
}

// Handle denylists the token id until the token's own expiry.
func (h LogoutCommandHandler) Handle(ctx context.Context, identity ports.Identity) error {
	if identity.TokenID == "" {
		return errs.New(errs.CodeUnauthorized, "token has no id")
	}
	if err := h.denylist.Deny(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return errs.Wrap(errs.CodeDependency, err, "token denylist unavailable")
	}
	return nil
}
