// Package ledger defines the quantity chain every assignment carries:
//
//	0 <= delivered <= returned <= quantity
//
// quantity grows when a worker is assigned more pieces, returned grows when
// an admin confirms finished pieces, delivered grows when confirmed pieces
// ship to the customer. Counters never decrease. Derived values are
// Available (returned - delivered, ready to ship) and Shortage
// (quantity - returned, still owed by the worker).
package ledger

import (
	"errors"
	"fmt"

	"embroidery/internal/pkg/errs"
)

var (
	// ErrChainViolated means a counter set does not satisfy the chain.
	ErrChainViolated = errors.New("ledger chain violated")

	// ErrInsufficientQuantity means an increment would overtake the counter
	// it is bounded by.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// InsufficientQuantityError reports how much was requested against how much
// the bounding counter still allows.
type InsufficientQuantityError struct {
	Counter   string
	Requested int
	Available int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("%s: %s needs %d, only %d available",
		ErrInsufficientQuantity, e.Counter, e.Requested, e.Available)
}

func (e *InsufficientQuantityError) Unwrap() error {
	return ErrInsufficientQuantity
}

// Counters is an immutable snapshot of one assignment's chain.
type Counters struct {
	quantity  int
	returned  int
	delivered int
}

// NewCounters restores a snapshot, rejecting any value outside the chain.
func NewCounters(quantity, returned, delivered int) (Counters, error) {
	if delivered < 0 || delivered > returned || returned > quantity {
		return Counters{}, fmt.Errorf("%w: quantity=%d returned=%d delivered=%d",
			ErrChainViolated, quantity, returned, delivered)
	}
	return Counters{quantity: quantity, returned: returned, delivered: delivered}, nil
}

func (c Counters) Quantity() int  { return c.quantity }
func (c Counters) Returned() int  { return c.returned }
func (c Counters) Delivered() int { return c.delivered }

// Available is the confirmed quantity not yet delivered.
func (c Counters) Available() int { return c.returned - c.delivered }

// Shortage is the assigned quantity the worker has not returned yet.
func (c Counters) Shortage() int { return c.quantity - c.returned }

// Assign adds n freshly assigned pieces.
func (c Counters) Assign(n int) (Counters, error) {
	if err := positive("assign", n); err != nil {
		return c, err
	}
	c.quantity += n
	return c, nil
}

// CreditReturn adds n confirmed pieces, bounded by Shortage.
func (c Counters) CreditReturn(n int) (Counters, error) {
	if err := positive("return", n); err != nil {
		return c, err
	}
	if n > c.Shortage() {
		return c, &InsufficientQuantityError{Counter: "returned", Requested: n, Available: c.Shortage()}
	}
	c.returned += n
	return c, nil
}

// Deliver adds n shipped pieces, bounded by Available.
func (c Counters) Deliver(n int) (Counters, error) {
	if err := positive("deliver", n); err != nil {
		return c, err
	}
	if n > c.Available() {
		return c, &InsufficientQuantityError{Counter: "delivered", Requested: n, Available: c.Available()}
	}
	c.delivered += n
	return c, nil
}

func positive(param string, n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is not greater than 0", n))
	}
	return nil
}
