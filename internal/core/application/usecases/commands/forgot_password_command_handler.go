package commands

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"math"
	"net/url"
	"strings"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

var resetMailTemplate = template.Must(template.New("reset").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #333; text-align: center;">Reset your password</h2>
<p>Hello,</p>
<p>You asked to reset the password of your Embroidery account.</p>
<p>Follow the link below to choose a new password:</p>
<div style="text-align: center; margin: 20px 0;">
<a href="{{.Link}}" style="background-color: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset password</a>
</div>
<p><strong>Note:</strong> this link is valid for {{.Minutes}} minutes.</p>
<p>If you did not ask for this, you can ignore this email.</p>
<hr style="margin: 20px 0;">
<p style="font-size: 12px; color: #666; text-align: center;">This message was sent automatically, please do not reply.</p>
</div>`))

const resetMailSubject = "Reset your password - Embroidery"

// Reasons reported in EmailFailure.
const (
	EmailNotConfigured = "not_configured"
	EmailUnavailable   = "unavailable"
)

// EmailFailure is attached as details to the DEPENDENCY_ERROR of a failed
// reset mail so clients can tell a missing sender setup from an outage.
type EmailFailure struct {
	Dependency string `json:"dependency"`
	Reason     string `json:"reason"`
}

// ForgotPasswordCommandHandler mails a reset link. The token is stored only
// after the provider accepted the mail, so a failed send leaves no cooldown
// behind.
type ForgotPasswordCommandHandler struct {
	uowFactory AccountUoWFactory
	sender     ports.EmailSender
	resetURL   string
}

// NewForgotPasswordCommandHandler builds links as resetURL?token=<token>.
func NewForgotPasswordCommandHandler(
	uowFactory AccountUoWFactory,
	sender ports.EmailSender,
	resetURL string,
) ForgotPasswordCommandHandler {
	return ForgotPasswordCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		resetURL:   resetURL,
	}
}

// Handle rejects unknown addresses with VALIDATION_ERROR and repeated
// requests inside the cooldown with RATE_LIMIT_EXCEEDED. A failed send is a DEPENDENCY_ERROR whose
// EmailFailure details tell a missing sender setup from an outage.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	if e := errs.As(err); e != nil && e.Code() == errs.CodeDependency {
//	    if f, ok := e.Details().(EmailFailure); ok && f.Reason == EmailNotConfigured {
//	        log.Println("mail sender has no credentials")
//	    }
//	}
func (h ForgotPasswordCommandHandler) Handle(ctx context.Context, cmd ForgotPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.AccountRepository().FindByEmail(ctx, cmd.Email()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.New(errs.CodeValidation, "no account uses this email")
		}
		return err
	}

	tokens := uow.ResetTokenRepository()
	existing, err := tokens.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		if wait := existing.CooldownRemaining(cmd.at); wait > 0 {
			seconds := int(math.Ceil(wait.Seconds()))
			return errs.Newf(errs.CodeRateLimit, "a reset was requested recently, try again in %d seconds", seconds).
				WithDetails(map[string]int{"retryAfterSeconds": seconds})
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	token, err := account.NewResetToken(cmd.Email(), cmd.at)
	if err != nil {
		return err
	}

	html, err := h.render(token.Token())
	if err != nil {
		return err
	}
	if err = h.sender.Send(ctx, ports.Email{To: cmd.Email(), Subject: resetMailSubject, HTML: html}); err != nil {
		if errors.Is(err, ports.ErrEmailNotConfigured) {
			return errs.Wrap(errs.CodeDependency, err, "email service is not configured").
				WithDetails(EmailFailure{Dependency: "email", Reason: EmailNotConfigured})
		}
		return errs.Wrap(errs.CodeDependency, err, "email service unavailable").
			WithDetails(EmailFailure{Dependency: "email", Reason: EmailUnavailable})
	}

	if err = tokens.Upsert(ctx, token); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ForgotPasswordCommandHandler) render(token string) (string, error) {
	link := strings.TrimRight(h.resetURL, "/")
	if strings.Contains(link, "?") {
		link += "&token=" + url.QueryEscape(token)
	} else {
		link += "?token=" + url.QueryEscape(token)
	}
	var buf bytes.Buffer
	err := resetMailTemplate.Execute(&buf, struct {
		Link    string
		Minutes int
	}{Link: link, Minutes: int(account.ResetTokenTTL.Minutes())})
	return buf.String(), err
}
