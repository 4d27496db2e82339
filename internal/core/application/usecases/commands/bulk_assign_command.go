package commands

import (
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var ErrBulkAssignCommandIsNotConstructed = errors.New(
	"BulkAssignCommand must be created via NewBulkAssignCommand constructor",
)

// AssignItem is one line of a bulk assignment request.
type AssignItem struct {
	OrderID  string
	Quantity int
}

type assignLine struct {
	orderID  kernel.UUID
	quantity int
}

// BulkAssignCommand hands quantities of several orders to one worker.
// Items are applied independently; a failing item does not block the rest.
type BulkAssignCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID
	lines    []assignLine

	guard guard.ConstructorGuard
}

// NewBulkAssignCommand validates every item up front and reports all
// malformed order ids and non-positive quantities together.
func NewBulkAssignCommand(workerID string, items []AssignItem) (BulkAssignCommand, error) {
	worker, err := kernel.UUIDFromString(workerID)
	if err != nil {
		return BulkAssignCommand{}, validationError("invalid worker id", []ItemProblem{{Index: -1, ID: workerID, Reason: "userId is not a valid id"}})
	}
	if len(items) == 0 {
		return BulkAssignCommand{}, validationError("items must not be empty", nil)
	}

	var problems []ItemProblem
	lines := make([]assignLine, 0, len(items))
	for i, it := range items {
		orderID, err := kernel.UUIDFromString(it.OrderID)
		if err != nil {
			problems = append(problems, ItemProblem{Index: i, ID: it.OrderID, Reason: "orderId is not a valid id"})
		}
		if it.Quantity <= 0 {
			problems = append(problems, ItemProblem{Index: i, ID: it.OrderID, Reason: "qty must be a positive integer"})
		}
		lines = append(lines, assignLine{orderID: orderID, quantity: it.Quantity})
	}
	if len(problems) > 0 {
		return BulkAssignCommand{}, validationError("invalid assignment items", problems)
	}

	return BulkAssignCommand{
		workerID: worker,
		lines:    lines,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c BulkAssignCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignCommandIsNotConstructed)
}

func (c BulkAssignCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// OrderIDs returns the order id of every item in request order.
func (c BulkAssignCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		ids = append(ids, l.orderID)
	}
	return ids
}
