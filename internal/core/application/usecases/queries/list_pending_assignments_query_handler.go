package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPendingAssignmentsQueryHandler struct {
	db *gorm.DB
}

func NewListPendingAssignmentsQueryHandler(db *gorm.DB) ListPendingAssignmentsQueryHandler {
	return ListPendingAssignmentsQueryHandler{db: db}
}

type pendingRow struct {
	ID          uuid.UUID
	PO          string
	Fullname    string
	ProductName string
	SizeName    *string
	Quantity    int
	Returned    int
	Deadline    time.Time
}

// Handle returns one page sorted by deadline, then assignment id.
func (h ListPendingAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingAssignmentsQuery,
) (ListPendingAssignmentsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPendingAssignmentsResponse{}, err
	}

	base := psql.Select().
		From("assignments a").
		Join("orders o ON o.id = a.order_id").
		Where("a.quantity_returned_total < a.quantity")
	if query.workerID != nil {
		base = base.Where(sq.Eq{"a.worker_id": query.workerID.Bytes()})
	}
	if query.po != "" {
		base = base.Where(sq.Eq{"o.po": query.po})
	}
	if query.search != "" {
		base = base.Where(sq.ILike{"o.po": containsPattern(query.search)})
	}

	total, err := count(ctx, h.db, base)
	if err != nil {
		return ListPendingAssignmentsResponse{}, err
	}

	list := base.
		Columns(
			"a.id", "o.po", "COALESCE(w.fullname, '') AS fullname",
			"COALESCE(p.name, '') AS product_name", "s.name AS size_name",
			"a.quantity", "a.quantity_returned_total AS returned", "o.deadline",
		).
		LeftJoin("accounts w ON w.id = a.worker_id").
		LeftJoin("products p ON p.id = o.product_id").
		LeftJoin("sizes s ON s.id = o.size_id").
		OrderBy("o.deadline ASC", "a.id ASC")

	var rows []pendingRow
	if err = fetch(ctx, h.db, window(list, query.page), &rows); err != nil {
		return ListPendingAssignmentsResponse{}, err
	}

	items := make([]PendingAssignment, 0, len(rows))
	for _, r := range rows {
		id, idErr := toID(r.ID)
		if idErr != nil {
			return ListPendingAssignmentsResponse{}, idErr
		}
		items = append(items, PendingAssignment{
			AssignmentID: id,
			PO:           r.PO,
			Fullname:     r.Fullname,
			ProductName:  r.ProductName,
			SizeName:     deref(r.SizeName),
			Quantity:     r.Quantity,
			Returned:     r.Returned,
			Deadline:     r.Deadline,
		})
	}

	return ListPendingAssignmentsResponse{Items: items, Pagination: query.page.Info(total)}, nil
}
