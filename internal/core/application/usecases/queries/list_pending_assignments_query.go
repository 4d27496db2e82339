package queries

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var ErrListPendingAssignmentsQueryIsNotConstructed = errors.New(
	"ListPendingAssignmentsQuery must be created via NewListPendingAssignmentsQuery constructor",
)

// ListPendingAssignmentsQuery lists assignments whose pieces have not all
// come back yet. po filters by exact PO, search by PO substring.
type ListPendingAssignmentsQuery struct {
	workerID *kernel.UUID
	po       string
	search   string
	page     pagination.Params
	guard    guard.ConstructorGuard
}

// NewListPendingAssignmentsQuery builds the query. workerID may be nil to
// list every worker.
func NewListPendingAssignmentsQuery(
	workerID *kernel.UUID,
	po, search string,
	page, limit int,
) ListPendingAssignmentsQuery {
	return ListPendingAssignmentsQuery{
		workerID: workerID,
		po:       strings.TrimSpace(po),
		search:   strings.TrimSpace(search),
		page:     pagination.New(page, limit),
		guard:    guard.NewConstructorGuard(),
	}
}

func (q ListPendingAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingAssignmentsQueryIsNotConstructed)
}

func (q ListPendingAssignmentsQuery) WorkerID() *kernel.UUID {
	return q.workerID
}

func (q ListPendingAssignmentsQuery) Page() pagination.Params {
	return q.page
}

func (q ListPendingAssignmentsQuery) PO() string {
	return q.po
}

func (q ListPendingAssignmentsQuery) Search() string {
	return q.search
}

type PendingAssignment struct {
	AssignmentID kernel.UUID `json:"id"`
	PO           string      `json:"po"`
	Fullname     string      `json:"fullname"`
	ProductName  string      `json:"productName"`
	SizeName     string      `json:"sizeName"`
	Quantity     int         `json:"qty"`
	Returned     int         `json:"qtyReturnTotal"`
	Deadline     time.Time   `json:"deadline"`
}

type ListPendingAssignmentsResponse struct {
	Items      []PendingAssignment
	Pagination pagination.Info
}
