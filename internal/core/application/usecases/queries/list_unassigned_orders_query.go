package queries

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var ErrListUnassignedOrdersQueryIsNotConstructed = errors.New(
	"ListUnassignedOrdersQuery must be created via NewListUnassignedOrdersQuery constructor",
)

// ListUnassignedOrdersQuery lists orders with pieces not yet handed to any
// worker. po filters by exact PO, search by PO substring.
type ListUnassignedOrdersQuery struct {
	po     string
	search string
	page   pagination.Params
	guard  guard.ConstructorGuard
}

func NewListUnassignedOrdersQuery(po, search string, page, limit int) ListUnassignedOrdersQuery {
	return ListUnassignedOrdersQuery{
		po:     strings.TrimSpace(po),
		search: strings.TrimSpace(search),
		page:   pagination.New(page, limit),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUnassignedOrdersQueryIsNotConstructed)
}

func (q ListUnassignedOrdersQuery) Page() pagination.Params {
	return q.page
}

func (q ListUnassignedOrdersQuery) PO() string {
	return q.po
}

func (q ListUnassignedOrdersQuery) Search() string {
	return q.search
}

type UnassignedOrder struct {
	OrderID         kernel.UUID `json:"id"`
	PO              string      `json:"po"`
	ProductID       kernel.UUID `json:"productId"`
	ProductName     string      `json:"productName"`
	ProdCode        string      `json:"prodCode"`
	SizeName        string      `json:"sizeName"`
	QuantityOrdered int         `json:"qty"`
	AssignedTotal   int         `json:"qtyAssignTotal"`
	Unassigned      int         `json:"qtyUnassigned"`
	Deadline        time.Time   `json:"deadline"`
	Note            string      `json:"note,omitempty"`
}

type ListUnassignedOrdersResponse struct {
	Items      []UnassignedOrder
	Pagination pagination.Info
}
