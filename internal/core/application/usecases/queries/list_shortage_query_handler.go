package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListShortageQueryHandler struct {
	db *gorm.DB
}

func NewListShortageQueryHandler(db *gorm.DB) ListShortageQueryHandler {
	return ListShortageQueryHandler{db: db}
}

type shortageRow struct {
	ID          uuid.UUID
	PO          string
	ProductName string
	SizeName    *string
	Image       string
	Quantity    int
	Returned    int
	UpdatedAt   time.Time
}

// Handle returns the most recently updated assignments first.
func (h ListShortageQueryHandler) Handle(ctx context.Context, query ListShortageQuery) (ListShortageResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShortageResponse{}, err
	}

	base := psql.Select().
		From("assignments a").
		Where(sq.Eq{"a.worker_id": query.workerID.Bytes()}).
		Where("a.quantity - a.quantity_returned_total > 0")

	total, err := count(ctx, h.db, base)
	if err != nil {
		return ListShortageResponse{}, err
	}

	list := base.
		Columns(
			"a.id", "o.po", "COALESCE(p.name, '') AS product_name", "s.name AS size_name",
			"COALESCE(p.image, '') AS image", "a.quantity",
			"a.quantity_returned_total AS returned", "a.updated_at",
		).
		Join("orders o ON o.id = a.order_id").
		LeftJoin("products p ON p.id = o.product_id").
		LeftJoin("sizes s ON s.id = o.size_id").
		OrderBy("a.updated_at DESC", "a.id ASC")

	var rows []shortageRow
	if err = fetch(ctx, h.db, window(list, query.page), &rows); err != nil {
		return ListShortageResponse{}, err
	}

	items := make([]ShortageItem, 0, len(rows))
	for _, r := range rows {
		id, idErr := toID(r.ID)
		if idErr != nil {
			return ListShortageResponse{}, idErr
		}
		items = append(items, ShortageItem{
			AssignmentID: id,
			PO:           r.PO,
			ProductName:  r.ProductName,
			SizeName:     deref(r.SizeName),
			Image:        r.Image,
			Quantity:     r.Quantity,
			Returned:     r.Returned,
			Shortage:     r.Quantity - r.Returned,
			UpdatedAt:    r.UpdatedAt,
		})
	}

	return ListShortageResponse{Items: items, Pagination: query.page.Info(total)}, nil
}
