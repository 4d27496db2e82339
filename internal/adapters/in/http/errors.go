package http

import (
	"errors"
	"fmt"
	"net/http"

	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as an ErrorEnvelope. Coded errors keep
// their code, echo errors map by status, the rest are internal and logged
// with a stack.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed || err == nil {
			return
		}

		typed := classify(err)
		meta := errs.MetadataFor(typed.Code())

		msg := meta.PublicMessage
		if typed.Code() != errs.CodeInternal && typed.Message() != "" {
			msg = typed.Message()
		}
		payload := ErrorEnvelope{Error: APIError{Code: string(typed.Code()), Message: msg}}
		if meta.DetailsAllowed {
			payload.Error.Details = typed.Details()
		}

		ctx := c.Request().Context()
		if meta.HTTPStatus >= http.StatusInternalServerError {
			log.Error(log.WithField(ctx, "error_code", string(typed.Code())), "request.error", err)
		} else {
			log.Debug(log.WithFields(ctx, map[string]any{"error_code": string(typed.Code()), "error": err.Error()}), "request.rejected")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(meta.HTTPStatus)
		} else {
			writeErr = c.JSON(meta.HTTPStatus, payload)
		}
		if writeErr != nil {
			log.Error(ctx, "write error response", writeErr)
		}
	}
}

func classify(err error) *errs.Error {
	if typed := errs.As(err); typed != nil {
		return typed
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if m, isString := he.Message.(string); isString && m != "" {
			message = m
		}
		return errs.Wrap(codeForStatus(he.Code), err, message)
	}

	switch code := errs.CodeOf(err); code {
	case errs.CodeInternal:
		return errs.Wrap(code, err, "")
	default:
		return errs.Wrap(code, err, err.Error())
	}
}

func codeForStatus(status int) errs.Code {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errs.CodeValidation
	case http.StatusUnauthorized:
		return errs.CodeUnauthorized
	case http.StatusForbidden:
		return errs.CodeForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errs.CodeNotFound
	case http.StatusConflict:
		return errs.CodeConflict
	case http.StatusTooManyRequests:
		return errs.CodeRateLimit
	case http.StatusServiceUnavailable:
		return errs.CodeDependency
	default:
		return errs.CodeInternal
	}
}

func invalidParam(name string, err error) error {
	return errs.Wrap(errs.CodeValidation, err, fmt.Sprintf("invalid %s parameter", name)).
		WithDetails(map[string]string{name: err.Error()})
}
