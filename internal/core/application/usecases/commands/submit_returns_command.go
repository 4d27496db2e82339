package commands

import (
	"errors"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/guard"
)

var ErrSubmitReturnsCommandIsNotConstructed = errors.New(
	"SubmitReturnsCommand must be created via NewSubmitReturnsCommand constructor",
)

type ReturnItem struct {
	AssignmentID string
	Quantity     int
	Note         string
}

type returnLine struct {
	assignmentID kernel.UUID
	quantity     int
	note         string
}

// SubmitReturnsCommand records finished pieces handed back by workers. The
// batch is stored as a whole or not at all.
type SubmitReturnsCommand struct { //nolint:recvcheck //using for validation
	actor ports.Identity
	lines []returnLine

	guard guard.ConstructorGuard
}

func NewSubmitReturnsCommand(actor ports.Identity, items []ReturnItem) (SubmitReturnsCommand, error) {
	if len(items) == 0 {
		return SubmitReturnsCommand{}, validationError("items must not be empty", nil)
	}

	var problems []ItemProblem
	lines := make([]returnLine, 0, len(items))
	for i, it := range items {
		id, err := kernel.UUIDFromString(it.AssignmentID)
		if err != nil {
			problems = append(problems, ItemProblem{Index: i, ID: it.AssignmentID, Reason: "assignmentId is not a valid id"})
		}
		if it.Quantity <= 0 {
			problems = append(problems, ItemProblem{Index: i, ID: it.AssignmentID, Reason: "qty must be a positive integer"})
		}
		lines = append(lines, returnLine{assignmentID: id, quantity: it.Quantity, note: strings.TrimSpace(it.Note)})
	}
	if len(problems) > 0 {
		return SubmitReturnsCommand{}, validationError("invalid return items", problems)
	}

	return SubmitReturnsCommand{
		actor: actor,
		lines: lines,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitReturnsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReturnsCommandIsNotConstructed)
}

func (c SubmitReturnsCommand) Actor() ports.Identity {
	return c.actor
}

func (c SubmitReturnsCommand) AssignmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		ids = append(ids, l.assignmentID)
	}
	return ids
}
