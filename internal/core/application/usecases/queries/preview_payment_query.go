package queries

import (
	"errors"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/services"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var ErrPreviewPaymentQueryIsNotConstructed = errors.New(
	"PreviewPaymentQuery must be created via NewPreviewPaymentQuery constructor",
)

// PreviewPaymentQuery collects a worker's confirmed, unpaid returns and
// prices them per category before an admin saves the payment.
type PreviewPaymentQuery struct {
	workerID kernel.UUID
	page     pagination.Params
	guard    guard.ConstructorGuard
}

func NewPreviewPaymentQuery(workerID kernel.UUID, page, limit int) (PreviewPaymentQuery, error) {
	if err := workerID.Validate(); err != nil {
		return PreviewPaymentQuery{}, err
	}
	return PreviewPaymentQuery{
		workerID: workerID,
		page:     pagination.New(page, limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q PreviewPaymentQuery) Validate() error {
	return q.guard.Validate(ErrPreviewPaymentQueryIsNotConstructed)
}

func (q PreviewPaymentQuery) Page() pagination.Params {
	return q.page
}

func (q PreviewPaymentQuery) WorkerID() kernel.UUID {
	return q.workerID
}

type PayableReturn struct {
	ReturnID    kernel.UUID `json:"id"`
	ProductName string      `json:"productName"`
	SizeName    string      `json:"sizeName"`
	Quantity    int         `json:"qty"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type PaymentWorker struct {
	ID       kernel.UUID `json:"id"`
	Username string      `json:"username"`
	Fullname string      `json:"fullname"`
}

// PreviewPaymentResponse pages the flat list; Preview and ReturnIDs always
// cover every payable return of the worker.
type PreviewPaymentResponse struct {
	Worker     PaymentWorker              `json:"user"`
	Items      []PayableReturn            `json:"items"`
	Preview    []services.CategoryPreview `json:"preview"`
	ReturnIDs  []kernel.UUID              `json:"listIdReturn"`
	Pagination pagination.Info            `json:"pagination"`
}
