package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUnassignedOrdersQueryHandler(db *gorm.DB) ListUnassignedOrdersQueryHandler {
	return ListUnassignedOrdersQueryHandler{db: db}
}

type unassignedRow struct {
	ID                    uuid.UUID
	PO                    string
	ProductID             uuid.UUID
	ProductName           string
	ProdCode              string
	SizeName              *string
	QuantityOrdered       int
	QuantityAssignedTotal int
	Deadline              time.Time
	Note                  string
}

// Handle returns one page sorted by deadline, soonest first.
func (h ListUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListUnassignedOrdersQuery,
) (ListUnassignedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUnassignedOrdersResponse{}, err
	}

	base := psql.Select().
		From("orders o").
		Where("o.quantity_assigned_total < o.quantity_ordered")
	if query.po != "" {
		base = base.Where(sq.Eq{"o.po": query.po})
	}
	if query.search != "" {
		base = base.Where(sq.ILike{"o.po": containsPattern(query.search)})
	}

	total, err := count(ctx, h.db, base)
	if err != nil {
		return ListUnassignedOrdersResponse{}, err
	}

	list := base.
		Columns(
			"o.id", "o.po", "o.product_id", "COALESCE(p.name, '') AS product_name",
			"COALESCE(p.prod_code, '') AS prod_code", "s.name AS size_name",
			"o.quantity_ordered", "o.quantity_assigned_total", "o.deadline", "o.note",
		).
		LeftJoin("products p ON p.id = o.product_id").
		LeftJoin("sizes s ON s.id = o.size_id").
		OrderBy("o.deadline ASC", "o.id ASC")

	var rows []unassignedRow
	if err = fetch(ctx, h.db, window(list, query.page), &rows); err != nil {
		return ListUnassignedOrdersResponse{}, err
	}

	items := make([]UnassignedOrder, 0, len(rows))
	for _, r := range rows {
		ids, idErr := toIDs(r.ID, r.ProductID)
		if idErr != nil {
			return ListUnassignedOrdersResponse{}, idErr
		}
		items = append(items, UnassignedOrder{
			OrderID:         ids[0],
			PO:              r.PO,
			ProductID:       ids[1],
			ProductName:     r.ProductName,
			ProdCode:        r.ProdCode,
			SizeName:        deref(r.SizeName),
			QuantityOrdered: r.QuantityOrdered,
			AssignedTotal:   r.QuantityAssignedTotal,
			Unassigned:      r.QuantityOrdered - r.QuantityAssignedTotal,
			Deadline:        r.Deadline,
			Note:            r.Note,
		})
	}

	return ListUnassignedOrdersResponse{Items: items, Pagination: query.page.Info(total)}, nil
}
