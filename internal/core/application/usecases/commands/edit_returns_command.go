package commands

import (
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/guard"
)

var ErrEditReturnsCommandIsNotConstructed = errors.New(
	"EditReturnsCommand must be created via NewEditReturnsCommand constructor",
)

// ReturnQuantity pairs a return id with a new quantity.
type ReturnQuantity struct {
	ReturnID string
	Quantity int
}

type returnEdit struct {
	returnID kernel.UUID
	quantity int
}

// EditReturnsCommand overwrites quantities of unconfirmed returns. A zero
// quantity deletes the return. When an id repeats, its last quantity wins.
type EditReturnsCommand struct { //nolint:recvcheck //using for validation
	actor ports.Identity
	edits []returnEdit

	guard guard.ConstructorGuard
}

func NewEditReturnsCommand(actor ports.Identity, items []ReturnQuantity) (EditReturnsCommand, error) {
	edits, err := collectReturnQuantities(items, false)
	if err != nil {
		return EditReturnsCommand{}, err
	}
	return EditReturnsCommand{
		actor: actor,
		edits: edits,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c EditReturnsCommand) Validate() error {
	return c.guard.Validate(ErrEditReturnsCommandIsNotConstructed)
}

func (c EditReturnsCommand) Actor() ports.Identity {
	return c.actor
}

func (c EditReturnsCommand) ReturnIDs() []kernel.UUID {
	return editIDs(c.edits)
}

// collectReturnQuantities validates items and folds duplicate ids, keeping
// the first position. With sum set quantities add up, otherwise the last
// one wins.
func collectReturnQuantities(items []ReturnQuantity, sum bool) ([]returnEdit, error) {
	if len(items) == 0 {
		return nil, validationError("items must not be empty", nil)
	}

	var problems []ItemProblem
	edits := make([]returnEdit, 0, len(items))
	index := make(map[kernel.UUID]int, len(items))
	for i, it := range items {
		id, err := kernel.UUIDFromString(it.ReturnID)
		if err != nil {
			problems = append(problems, ItemProblem{Index: i, ID: it.ReturnID, Reason: "returnId is not a valid id"})
			continue
		}
		if it.Quantity < 0 {
			problems = append(problems, ItemProblem{Index: i, ID: it.ReturnID, Reason: "qty must be a non-negative integer"})
			continue
		}
		pos, seen := index[id]
		switch {
		case !seen:
			index[id] = len(edits)
			edits = append(edits, returnEdit{returnID: id, quantity: it.Quantity})
		case sum:
			edits[pos].quantity += it.Quantity
		default:
			edits[pos].quantity = it.Quantity
		}
	}
	if len(problems) > 0 {
		return nil, validationError("invalid return items", problems)
	}
	return edits, nil
}

func editIDs(edits []returnEdit) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(edits))
	for _, e := range edits {
		ids = append(ids, e.returnID)
	}
	return ids
}
