package queries

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var (
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
	)
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
)

// ListDeliveriesQuery pages through delivery documents, newest day first,
// optionally for one PO.
type ListDeliveriesQuery struct {
	po    string
	page  pagination.Params
	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery(po string, page, limit int) ListDeliveriesQuery {
	return ListDeliveriesQuery{
		po:    strings.TrimSpace(po),
		page:  pagination.New(page, limit),
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Page() pagination.Params {
	return q.page
}

func (q ListDeliveriesQuery) PO() string {
	return q.po
}

// GetDeliveryQuery loads one delivery document, for example to export it.
type GetDeliveryQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(id kernel.UUID) (GetDeliveryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

type DeliveryView struct {
	ID            kernel.UUID     `json:"id"`
	PO            string          `json:"po"`
	Day           string          `json:"day"`
	Lines         []delivery.Line `json:"products"`
	TotalQuantity int             `json:"totalQty"`
	Note          string          `json:"note,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type ListDeliveriesResponse struct {
	Items      []DeliveryView
	Pagination pagination.Info
}
