package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAvailableForDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewListAvailableForDeliveryQueryHandler(db *gorm.DB) ListAvailableForDeliveryQueryHandler {
	return ListAvailableForDeliveryQueryHandler{db: db}
}

type availableRow struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	PO              string
	Fullname        string
	ProductName     string
	SizeName        *string
	QuantityOrdered int
	Quantity        int
	Delivered       int
	Available       int
	Deadline        time.Time
}

// Handle returns one page sorted by order deadline, soonest first.
func (h ListAvailableForDeliveryQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableForDeliveryQuery,
) (ListAvailableForDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAvailableForDeliveryResponse{}, err
	}

	base := psql.Select().
		From("assignments a").
		Join("orders o ON o.id = a.order_id").
		Join("products p ON p.id = o.product_id").
		Where("a.quantity_returned_total - a.quantity_delivered > 0")
	if query.search != "" {
		base = base.Where(sq.ILike{"p.name": containsPattern(query.search)})
	}

	total, err := count(ctx, h.db, base)
	if err != nil {
		return ListAvailableForDeliveryResponse{}, err
	}

	list := base.
		Columns(
			"a.id", "o.id AS order_id", "o.po", "COALESCE(w.fullname, '') AS fullname",
			"p.name AS product_name", "s.name AS size_name",
			"o.quantity_ordered", "a.quantity", "a.quantity_delivered AS delivered",
			"a.quantity_returned_total - a.quantity_delivered AS available", "o.deadline",
		).
		LeftJoin("accounts w ON w.id = a.worker_id").
		LeftJoin("sizes s ON s.id = o.size_id").
		OrderBy("o.deadline ASC", "a.id ASC")

	var rows []availableRow
	if err = fetch(ctx, h.db, window(list, query.page), &rows); err != nil {
		return ListAvailableForDeliveryResponse{}, err
	}

	items := make([]AvailableAssignment, 0, len(rows))
	for _, r := range rows {
		ids, idErr := toIDs(r.ID, r.OrderID)
		if idErr != nil {
			return ListAvailableForDeliveryResponse{}, idErr
		}
		items = append(items, AvailableAssignment{
			AssignmentID:    ids[0],
			OrderID:         ids[1],
			PO:              r.PO,
			Fullname:        r.Fullname,
			ProductName:     r.ProductName,
			Size:            deref(r.SizeName),
			QuantityOrdered: r.QuantityOrdered,
			Assigned:        r.Quantity,
			Delivered:       r.Delivered,
			Available:       r.Available,
			Deadline:        r.Deadline,
		})
	}

	return ListAvailableForDeliveryResponse{Items: items, Pagination: query.page.Info(total)}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
