package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUnconfirmedReturnsQueryHandler struct {
	db *gorm.DB
}

func NewListUnconfirmedReturnsQueryHandler(db *gorm.DB) ListUnconfirmedReturnsQueryHandler {
	return ListUnconfirmedReturnsQueryHandler{db: db}
}

type unconfirmedRow struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	WorkerID     uuid.UUID
	UserName     string
	ProductName  string
	SizeName     *string
	Assigned     int
	Returned     int
	Quantity     int
	Note         string
	UpdatedAt    time.Time
}

// Handle returns groups sorted by worker name. Rows arrive ordered by
// name, worker and update time, so each group is built in one pass.
func (h ListUnconfirmedReturnsQueryHandler) Handle(
	ctx context.Context,
	query ListUnconfirmedReturnsQuery,
) ([]UnconfirmedReturnGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := psql.
		Select(
			"r.id", "r.assignment_id", "a.worker_id",
			"COALESCE(NULLIF(w.fullname, ''), '"+NoNameGroup+"') AS user_name",
			"COALESCE(p.name, '') AS product_name", "s.name AS size_name",
			"a.quantity AS assigned", "a.quantity_returned_total AS returned",
			"r.quantity", "r.note", "r.updated_at",
		).
		From("returns r").
		Join("assignments a ON a.id = r.assignment_id").
		Join("orders o ON o.id = a.order_id").
		LeftJoin("accounts w ON w.id = a.worker_id").
		LeftJoin("products p ON p.id = o.product_id").
		LeftJoin("sizes s ON s.id = o.size_id").
		Where(sq.Eq{"r.confirmed": false}).
		OrderBy("user_name ASC", "a.worker_id ASC", "r.updated_at ASC", "r.id ASC")
	if query.workerID != nil {
		stmt = stmt.Where(sq.Eq{"a.worker_id": query.workerID.Bytes()})
	}

	var rows []unconfirmedRow
	if err := fetch(ctx, h.db, stmt, &rows); err != nil {
		return nil, err
	}

	groups := make([]UnconfirmedReturnGroup, 0)
	for _, r := range rows {
		ids, err := toIDs(r.ID, r.AssignmentID, r.WorkerID)
		if err != nil {
			return nil, err
		}
		if n := len(groups); n == 0 || !groups[n-1].WorkerID.IsEqual(ids[2]) {
			groups = append(groups, UnconfirmedReturnGroup{WorkerID: ids[2], User: r.UserName})
		}
		last := &groups[len(groups)-1]
		last.Returns = append(last.Returns, UnconfirmedReturn{
			ReturnID:     ids[0],
			AssignmentID: ids[1],
			ProductName:  r.ProductName,
			SizeName:     deref(r.SizeName),
			Assigned:     r.Assigned,
			Returned:     r.Returned,
			Quantity:     r.Quantity,
			Note:         r.Note,
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return groups, nil
}
