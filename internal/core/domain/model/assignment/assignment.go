// Package assignment contains the Assignment aggregate: the share of one
// order handed to one worker. There is at most one assignment per
// (order, worker) pair; assigning more pieces grows the existing one.
// Its counters follow the ledger chain.
package assignment

import (
	"errors"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/ledger"
)

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// ErrNotOwner is returned when a worker acts on another worker's assignment.
var ErrNotOwner = errors.New("assignment belongs to another worker")

type Assignment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	workerID      kernel.UUID
	counters      ledger.Counters
	updatedAt     time.Time
	isConstructed bool
}

// NewAssignment creates an assignment of quantity pieces with nothing
// returned or delivered yet.
func NewAssignment(id, orderID, workerID kernel.UUID, quantity int) (*Assignment, error) {
	a := &Assignment{isConstructed: true}
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		workerID.Validate(),
	); err != nil {
		return nil, err
	}
	a.id, a.orderID, a.workerID = id, orderID, workerID

	counters, err := ledger.Counters{}.Assign(quantity)
	if err != nil {
		return nil, err
	}
	a.counters = counters
	return a, nil
}

// RestoreAssignment rebuilds a persisted assignment. Counters outside the
// chain are rejected with ledger.ErrChainViolated.
func RestoreAssignment(
	id, orderID, workerID kernel.UUID,
	quantity, returned, delivered int,
	updatedAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), workerID.Validate()); err != nil {
		return nil, err
	}
	counters, err := ledger.NewCounters(quantity, returned, delivered)
	if err != nil {
		return nil, err
	}
	return &Assignment{
		id:            id,
		orderID:       orderID,
		workerID:      workerID,
		counters:      counters,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID { return a.id }

func (a *Assignment) OrderID() kernel.UUID { return a.orderID }

func (a *Assignment) WorkerID() kernel.UUID { return a.workerID }

func (a *Assignment) Counters() ledger.Counters { return a.counters }

func (a *Assignment) Quantity() int { return a.counters.Quantity() }

func (a *Assignment) Returned() int { return a.counters.Returned() }

func (a *Assignment) Delivered() int { return a.counters.Delivered() }

func (a *Assignment) Available() int { return a.counters.Available() }

func (a *Assignment) Shortage() int { return a.counters.Shortage() }

func (a *Assignment) UpdatedAt() time.Time { return a.updatedAt }

// BelongsTo reports whether workerID owns the assignment.
func (a *Assignment) BelongsTo(workerID kernel.UUID) bool {
	return a.workerID.IsEqual(workerID)
}

// Assign grows the assigned quantity by n.
func (a *Assignment) Assign(n int) error {
	return a.apply(a.counters.Assign, n)
}

// CreditReturn books n confirmed pieces against the shortage.
func (a *Assignment) CreditReturn(n int) error {
	return a.apply(a.counters.CreditReturn, n)
}

// Deliver books n shipped pieces against the available quantity.
func (a *Assignment) Deliver(n int) error {
	return a.apply(a.counters.Deliver, n)
}

func (a *Assignment) apply(step func(int) (ledger.Counters, error), n int) error {
	next, err := step(n)
	if err != nil {
		return err
	}
	a.counters = next
	return nil
}
