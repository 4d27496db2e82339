package queries

import (
	"errors"
	"time"

	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPaymentStatsQueryIsNotConstructed = errors.New(
	"PaymentStatsQuery must be created via NewPaymentStatsQuery constructor",
)

// FirstStatsYear is the earliest year with production data.
const FirstStatsYear = 2025

// PaymentStatsQuery totals payouts and shipped pieces over one UTC year, or
// one month of it when month is set.
type PaymentStatsQuery struct {
	year  int
	month int
	guard guard.ConstructorGuard
}

// NewPaymentStatsQuery validates the period. month 0 means the whole year.
func NewPaymentStatsQuery(year, month int) (PaymentStatsQuery, error) {
	var errYear, errMonth error
	if year < FirstStatsYear || year > 9999 {
		errYear = errs.NewValueIsOutOfRangeError("year", year, FirstStatsYear, 9999)
	}
	if month < 0 || month > 12 {
		errMonth = errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}
	if err := errors.Join(errYear, errMonth); err != nil {
		return PaymentStatsQuery{}, err
	}
	return PaymentStatsQuery{year: year, month: month, guard: guard.NewConstructorGuard()}, nil
}

func (q PaymentStatsQuery) Validate() error {
	return q.guard.Validate(ErrPaymentStatsQueryIsNotConstructed)
}

// Period returns the half-open UTC window [from, to).
func (q PaymentStatsQuery) Period() (from, to time.Time) {
	if q.month == 0 {
		from = time.Date(q.year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0)
	}
	from = time.Date(q.year, time.Month(q.month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

type StatsPeriod struct {
	Year  int       `json:"year"`
	Month int       `json:"month,omitempty"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

type PaymentStatsResponse struct {
	Period          StatsPeriod     `json:"period"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	TotalShippedQty int64           `json:"totalShippedQty"`
}
