package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListWorkerUnconfirmedReturnsQueryHandler struct {
	db *gorm.DB
}

func NewListWorkerUnconfirmedReturnsQueryHandler(db *gorm.DB) ListWorkerUnconfirmedReturnsQueryHandler {
	return ListWorkerUnconfirmedReturnsQueryHandler{db: db}
}

type workerReturnRow struct {
	ID          uuid.UUID
	ProductName string
	SizeName    *string
	Image       string
	Quantity    int
	Note        string
	UpdatedAt   time.Time
}

func (h ListWorkerUnconfirmedReturnsQueryHandler) Handle(
	ctx context.Context,
	query ListWorkerUnconfirmedReturnsQuery,
) (ListWorkerUnconfirmedReturnsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListWorkerUnconfirmedReturnsResponse{}, err
	}

	base := psql.Select().
		From("returns r").
		Join("assignments a ON a.id = r.assignment_id").
		Where(sq.Eq{"r.confirmed": false, "a.worker_id": query.workerID.Bytes()})

	total, err := count(ctx, h.db, base)
	if err != nil {
		return ListWorkerUnconfirmedReturnsResponse{}, err
	}

	list := base.
		Columns(
			"r.id", "COALESCE(p.name, '') AS product_name", "s.name AS size_name",
			"COALESCE(p.image, '') AS image", "r.quantity", "r.note", "r.updated_at",
		).
		Join("orders o ON o.id = a.order_id").
		LeftJoin("products p ON p.id = o.product_id").
		LeftJoin("sizes s ON s.id = o.size_id").
		OrderBy("r.updated_at DESC", "r.id ASC")

	var rows []workerReturnRow
	if err = fetch(ctx, h.db, window(list, query.page), &rows); err != nil {
		return ListWorkerUnconfirmedReturnsResponse{}, err
	}

	items := make([]WorkerReturn, 0, len(rows))
	for _, r := range rows {
		id, idErr := toID(r.ID)
		if idErr != nil {
			return ListWorkerUnconfirmedReturnsResponse{}, idErr
		}
		items = append(items, WorkerReturn{
			ReturnID:    id,
			ProductName: r.ProductName,
			SizeName:    deref(r.SizeName),
			Image:       r.Image,
			Quantity:    r.Quantity,
			Note:        r.Note,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	return ListWorkerUnconfirmedReturnsResponse{Items: items, Pagination: query.page.Info(total)}, nil
}
