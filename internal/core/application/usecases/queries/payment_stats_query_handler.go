package queries

import (
	"context"

	"embroidery/internal/core/domain/model/delivery"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatsQueryHandler struct {
	db *gorm.DB
}

func NewPaymentStatsQueryHandler(db *gorm.DB) PaymentStatsQueryHandler {
	return PaymentStatsQueryHandler{db: db}
}

// Handle sums grand totals of payments created in the period and delivered
// quantities of delivery documents whose day falls in it.
func (h PaymentStatsQueryHandler) Handle(ctx context.Context, query PaymentStatsQuery) (PaymentStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentStatsResponse{}, err
	}
	from, to := query.Period()

	var paid struct{ Total decimal.NullDecimal }
	paidStmt := psql.Select("SUM(grand_total) AS total").
		From("payments").
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to})
	if err := fetch(ctx, h.db, paidStmt, &paid); err != nil {
		return PaymentStatsResponse{}, err
	}

	var shipped int64
	shippedStmt := psql.Select("COALESCE(SUM(total_quantity), 0)").
		From("deliveries").
		Where(sq.GtOrEq{"day": delivery.DayOf(from).String()}).
		Where(sq.Lt{"day": delivery.DayOf(to).String()})
	if err := fetch(ctx, h.db, shippedStmt, &shipped); err != nil {
		return PaymentStatsResponse{}, err
	}

	return PaymentStatsResponse{
		Period:          StatsPeriod{Year: query.year, Month: query.month, From: from, To: to},
		TotalPaid:       paid.Total.Decimal,
		TotalShippedQty: shipped,
	}, nil
}
