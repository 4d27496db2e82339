package queries

import (
	"errors"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var ErrListShortageQueryIsNotConstructed = errors.New(
	"ListShortageQuery must be created via NewListShortageQuery constructor",
)

// ListShortageQuery lists a worker's assignments that still owe pieces.
type ListShortageQuery struct {
	workerID kernel.UUID
	page     pagination.Params
	guard    guard.ConstructorGuard
}

func NewListShortageQuery(workerID kernel.UUID, page, limit int) (ListShortageQuery, error) {
	if err := workerID.Validate(); err != nil {
		return ListShortageQuery{}, err
	}
	return ListShortageQuery{
		workerID: workerID,
		page:     pagination.New(page, limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListShortageQuery) Validate() error {
	return q.guard.Validate(ErrListShortageQueryIsNotConstructed)
}

func (q ListShortageQuery) WorkerID() kernel.UUID {
	return q.workerID
}

func (q ListShortageQuery) Page() pagination.Params {
	return q.page
}

type ShortageItem struct {
	AssignmentID kernel.UUID `json:"assignId"`
	PO           string      `json:"po"`
	ProductName  string      `json:"productName"`
	SizeName     string      `json:"sizeName"`
	Image        string      `json:"image"`
	Quantity     int         `json:"qty"`
	Returned     int         `json:"qtyReturnTotal"`
	Shortage     int         `json:"qtyShortage"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type ListShortageResponse struct {
	Items      []ShortageItem
	Pagination pagination.Info
}
