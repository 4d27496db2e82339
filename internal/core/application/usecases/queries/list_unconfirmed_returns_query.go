package queries

import (
	"errors"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var ErrListUnconfirmedReturnsQueryIsNotConstructed = errors.New(
	"ListUnconfirmedReturnsQuery must be created via NewListUnconfirmedReturnsQuery constructor",
)

// NoNameGroup labels returns whose worker has no full name on file.
const NoNameGroup = "(No Name)"

// ListUnconfirmedReturnsQuery lists the returns awaiting confirmation,
// grouped by worker. A nil workerID lists every worker.
type ListUnconfirmedReturnsQuery struct {
	workerID *kernel.UUID
	guard    guard.ConstructorGuard
}

func NewListUnconfirmedReturnsQuery(workerID *kernel.UUID) ListUnconfirmedReturnsQuery {
	return ListUnconfirmedReturnsQuery{workerID: workerID, guard: guard.NewConstructorGuard()}
}

func (q ListUnconfirmedReturnsQuery) Validate() error {
	return q.guard.Validate(ErrListUnconfirmedReturnsQueryIsNotConstructed)
}

func (q ListUnconfirmedReturnsQuery) WorkerID() *kernel.UUID {
	return q.workerID
}

type UnconfirmedReturn struct {
	ReturnID     kernel.UUID `json:"returnId"`
	AssignmentID kernel.UUID `json:"assignId"`
	ProductName  string      `json:"productName"`
	SizeName     string      `json:"sizeName"`
	Assigned     int         `json:"qtyAssign"`
	Returned     int         `json:"qtyReturnTotal"`
	Quantity     int         `json:"qty"`
	Note         string      `json:"note,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// UnconfirmedReturnGroup holds one worker's returns, oldest first.
type UnconfirmedReturnGroup struct {
	WorkerID kernel.UUID         `json:"userId"`
	User     string              `json:"user"`
	Returns  []UnconfirmedReturn `json:"listReturn"`
}
