package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type LedgerAuditQueryHandler struct {
	db *gorm.DB
}

func NewLedgerAuditQueryHandler(db *gorm.DB) LedgerAuditQueryHandler {
	return LedgerAuditQueryHandler{db: db}
}

func (h LedgerAuditQueryHandler) Handle(ctx context.Context, query LedgerAuditQuery) (LedgerAuditResponse, error) {
	if err := query.Validate(); err != nil {
		return LedgerAuditResponse{}, err
	}

	var out LedgerAuditResponse
	var err error

	out.ChainViolations, err = count(ctx, h.db, psql.Select().
		From("assignments").
		Where(sq.Or{
			sq.Expr("quantity_delivered < 0"),
			sq.Expr("quantity_delivered > quantity_returned_total"),
			sq.Expr("quantity_returned_total > quantity"),
		}))
	if err != nil {
		return LedgerAuditResponse{}, err
	}

	out.PaidUnconfirmed, err = count(ctx, h.db, psql.Select().
		From("returns").
		Where(sq.Eq{"paid": true, "confirmed": false}))
	if err != nil {
		return LedgerAuditResponse{}, err
	}

	credited := psql.Select("order_id", "SUM(quantity_returned_total) AS credited").
		From("assignments").
		GroupBy("order_id")
	out.OverDeliveredOrders, err = count(ctx, h.db, psql.Select().
		From("orders o").
		JoinClause(credited.Prefix("LEFT JOIN (").Suffix(") c ON c.order_id = o.id")).
		Where("o.quantity_delivered_total > COALESCE(c.credited, 0)"))
	if err != nil {
		return LedgerAuditResponse{}, err
	}

	return out, nil
}
