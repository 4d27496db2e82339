package http

import (
	"net/http"

	"embroidery/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
)

// SuccessEnvelope wraps every successful JSON answer.
type SuccessEnvelope struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Data       any              `json:"data,omitempty"`
	Pagination *pagination.Info `json:"pagination,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessEnvelope{Success: true, Data: data})
}

func created(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusCreated, SuccessEnvelope{Success: true, Message: message, Data: data})
}

func done(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, SuccessEnvelope{Success: true, Message: message, Data: data})
}

func paged[T any](c echo.Context, items []T, info pagination.Info) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, SuccessEnvelope{Success: true, Data: items, Pagination: &info})
}
