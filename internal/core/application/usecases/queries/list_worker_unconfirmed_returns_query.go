package queries

import (
	"errors"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var ErrListWorkerUnconfirmedReturnsQueryIsNotConstructed = errors.New(
	"ListWorkerUnconfirmedReturnsQuery must be created via NewListWorkerUnconfirmedReturnsQuery constructor",
)

// ListWorkerUnconfirmedReturnsQuery pages through the caller's own returns
// that an admin has not confirmed yet, newest first.
type ListWorkerUnconfirmedReturnsQuery struct {
	workerID kernel.UUID
	page     pagination.Params
	guard    guard.ConstructorGuard
}

func NewListWorkerUnconfirmedReturnsQuery(
	workerID kernel.UUID,
	page, limit int,
) (ListWorkerUnconfirmedReturnsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return ListWorkerUnconfirmedReturnsQuery{}, err
	}
	return ListWorkerUnconfirmedReturnsQuery{
		workerID: workerID,
		page:     pagination.New(page, limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListWorkerUnconfirmedReturnsQuery) Validate() error {
	return q.guard.Validate(ErrListWorkerUnconfirmedReturnsQueryIsNotConstructed)
}

func (q ListWorkerUnconfirmedReturnsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

func (q ListWorkerUnconfirmedReturnsQuery) Page() pagination.Params {
	return q.page
}

type WorkerReturn struct {
	ReturnID    kernel.UUID `json:"id"`
	ProductName string      `json:"productName"`
	SizeName    string      `json:"sizeName"`
	Image       string      `json:"image"`
	Quantity    int         `json:"qty"`
	Note        string      `json:"note,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type ListWorkerUnconfirmedReturnsResponse struct {
	Items      []WorkerReturn
	Pagination pagination.Info
}
