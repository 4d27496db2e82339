package queries

import (
	"errors"

	"embroidery/internal/pkg/guard"
)

var ErrLedgerAuditQueryIsNotConstructed = errors.New(
	"LedgerAuditQuery must be created via NewLedgerAuditQuery constructor",
)

// LedgerAuditQuery counts rows that break the quantity ledger. All counts
// are expected to be zero.
type LedgerAuditQuery struct {
	guard guard.ConstructorGuard
}

func NewLedgerAuditQuery() LedgerAuditQuery {
	return LedgerAuditQuery{guard: guard.NewConstructorGuard()}
}

func (q LedgerAuditQuery) Validate() error {
	return q.guard.Validate(ErrLedgerAuditQueryIsNotConstructed)
}

type LedgerAuditResponse struct {
	// ChainViolations counts assignments outside
	// 0 <= delivered <= returned <= quantity.
	ChainViolations int64 `json:"chainViolations"`

	PaidUnconfirmed int64 `json:"paidUnconfirmed"`

	// OverDeliveredOrders counts orders whose delivered total exceeds the
	// pieces credited on their assignments.
	OverDeliveredOrders int64 `json:"overDeliveredOrders"`
}

func (r LedgerAuditResponse) Clean() bool {
	return r.ChainViolations == 0 && r.PaidUnconfirmed == 0 && r.OverDeliveredOrders == 0
}
