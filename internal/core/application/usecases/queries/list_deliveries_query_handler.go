package queries

import (
	"context"
	"time"

	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var deliveryColumns = []string{"id", "po", "day", "lines", "total_quantity", "note", "updated_at"}

type deliveryRow struct {
	ID            uuid.UUID
	PO            string
	Day           string
	Lines         datatypes.JSONSlice[delivery.Line]
	TotalQuantity int
	Note          string
	UpdatedAt     time.Time
}

func (r deliveryRow) view() (DeliveryView, error) {
	id, err := toID(r.ID)
	if err != nil {
		return DeliveryView{}, err
	}
	lines := []delivery.Line(r.Lines)
	if lines == nil {
		lines = []delivery.Line{}
	}
	return DeliveryView{
		ID:            id,
		PO:            r.PO,
		Day:           r.Day,
		Lines:         lines,
		TotalQuantity: r.TotalQuantity,
		Note:          r.Note,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle sorts by day, newest first, then by PO.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) (ListDeliveriesResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDeliveriesResponse{}, err
	}

	base := psql.Select().From("deliveries")
	if query.po != "" {
		base = base.Where(sq.Eq{"po": query.po})
	}

	total, err := count(ctx, h.db, base)
	if err != nil {
		return ListDeliveriesResponse{}, err
	}

	var rows []deliveryRow
	list := base.Columns(deliveryColumns...).OrderBy("day DESC", "po ASC")
	if err = fetch(ctx, h.db, window(list, query.page), &rows); err != nil {
		return ListDeliveriesResponse{}, err
	}

	items := make([]DeliveryView, 0, len(rows))
	for _, r := range rows {
		v, viewErr := r.view()
		if viewErr != nil {
			return ListDeliveriesResponse{}, viewErr
		}
		items = append(items, v)
	}
	return ListDeliveriesResponse{Items: items, Pagination: query.page.Info(total)}, nil
}

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}

	var rows []deliveryRow
	stmt := psql.Select(deliveryColumns...).From("deliveries").Where(sq.Eq{"id": query.id.Bytes()})
	if err := fetch(ctx, h.db, stmt, &rows); err != nil {
		return DeliveryView{}, err
	}
	if len(rows) == 0 {
		return DeliveryView{}, errs.NewObjectNotFoundError("deliveryId", query.id)
	}
	return rows[0].view()
}
