package queries

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var ErrListAvailableForDeliveryQueryIsNotConstructed = errors.New(
	"ListAvailableForDeliveryQuery must be created via NewListAvailableForDeliveryQuery constructor",
)

// ListAvailableForDeliveryQuery lists assignments with confirmed pieces
// that have not shipped yet. Search matches the product name.
type ListAvailableForDeliveryQuery struct {
	search string
	page   pagination.Params
	guard  guard.ConstructorGuard
}

func NewListAvailableForDeliveryQuery(search string, page, limit int) ListAvailableForDeliveryQuery {
	return ListAvailableForDeliveryQuery{
		search: strings.TrimSpace(search),
		page:   pagination.New(page, limit),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListAvailableForDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableForDeliveryQueryIsNotConstructed)
}

func (q ListAvailableForDeliveryQuery) Page() pagination.Params {
	return q.page
}

func (q ListAvailableForDeliveryQuery) Search() string {
	return q.search
}

type AvailableAssignment struct {
	AssignmentID    kernel.UUID `json:"id"`
	OrderID         kernel.UUID `json:"orderId"`
	PO              string      `json:"po"`
	Fullname        string      `json:"fullname"`
	ProductName     string      `json:"productName"`
	Size            string      `json:"size"`
	QuantityOrdered int         `json:"qtyOrder"`
	Assigned        int         `json:"qtyAssign"`
	Delivered       int         `json:"qtyDelivery"`
	Available       int         `json:"available"`
	Deadline        time.Time   `json:"deadline"`
}

type ListAvailableForDeliveryResponse struct {
	Items      []AvailableAssignment
	Pagination pagination.Info
}
