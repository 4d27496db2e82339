package http

import (
	"bytes"
	"encoding/json"
	"time"

	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Identifier string `json:"loginIdentifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Fullname string `json:"fullname" validate:"required"`
	Phone    string `json:"phone" validate:"required,numeric"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type AccountView struct {
	ID        kernel.UUID `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Fullname  string      `json:"fullname"`
	Phone     string      `json:"phone"`
	Role      int         `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func accountView(a *account.Account) AccountView {
	return AccountView{
		ID:        a.ID(),
		Username:  a.Username(),
		Email:     a.Email(),
		Fullname:  a.Fullname(),
		Phone:     a.Phone(),
		Role:      int(a.Role()),
		CreatedAt: a.CreatedAt(),
	}
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      AccountView `json:"user"`
}

type OrderRequest struct {
	PO       string    `json:"po" validate:"required"`
	ProdCode string    `json:"prodCode" validate:"required"`
	Size     string    `json:"size"`
	Quantity int       `json:"qty" validate:"required,min=1"`
	Deadline time.Time `json:"deadline" validate:"required"`
	Note     string    `json:"note"`
}

// OrdersRequest accepts a single order object or an array of them.
type OrdersRequest []OrderRequest

func (r *OrdersRequest) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var one OrderRequest
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*r = OrdersRequest{one}
		return nil
	}
	var many []OrderRequest
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return err
	}
	*r = many
	return nil
}

type AssignItemRequest struct {
	OrderID  string `json:"ordId" validate:"required"`
	Quantity int    `json:"qty"`
}

type BulkAssignRequest struct {
	WorkerID string              `json:"userId" validate:"required"`
	Items    []AssignItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ReturnItemRequest struct {
	AssignmentID string `json:"assignId" validate:"required"`
	Quantity     int    `json:"qty"`
	Note         string `json:"note"`
}

type ReturnQuantityRequest struct {
	ReturnID string `json:"returnId" validate:"required"`
	Quantity int    `json:"qty"`
}

type ConfirmItemRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"qty"`
}

type ConfirmReturnsRequest struct {
	IDs []ConfirmItemRequest `json:"ids" validate:"required,min=1,dive"`
}

type DeliverItemRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"qty"`
	Note     string `json:"note"`
}

type BulkDeliverRequest struct {
	Items []DeliverItemRequest `json:"items" validate:"required,min=1,dive"`
}

type SavePaymentRequest struct {
	Username   string            `json:"username" validate:"required"`
	GrandTotal decimal.Decimal   `json:"grandTotal"`
	Note       string            `json:"note"`
	Products   payment.Breakdown `json:"products" validate:"required,min=1"`
	ReturnIDs  []string          `json:"listIdReturn" validate:"required,min=1"`
}
