package commands

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
)

var ErrBulkDeliverCommandIsNotConstructed = errors.New(
	"BulkDeliverCommand must be created via NewBulkDeliverCommand constructor",
)

type DeliverItem struct {
	AssignmentID string
	Quantity     int
	Note         string
}

type deliverLine struct {
	assignmentID kernel.UUID
	quantity     int
	notes        []string
}

// BulkDeliverCommand ships confirmed pieces of several assignments at once.
// Repeated assignment ids are merged: quantities add up and notes are
// collected in order.
type BulkDeliverCommand struct { //nolint:recvcheck //using for validation
	lines []deliverLine
	at    time.Time

	guard guard.ConstructorGuard
}

// NewBulkDeliverCommand builds the command for a delivery made at at. The
// UTC date of at picks the delivery document.
func NewBulkDeliverCommand(items []DeliverItem, at time.Time) (BulkDeliverCommand, error) {
	if len(items) == 0 {
		return BulkDeliverCommand{}, validationError("items must not be empty", nil)
	}
	if at.IsZero() {
		return BulkDeliverCommand{}, validationError("delivery time is required", nil)
	}

	var problems []ItemProblem
	lines := make([]deliverLine, 0, len(items))
	index := make(map[kernel.UUID]int, len(items))
	for i, it := range items {
		id, err := kernel.UUIDFromString(it.AssignmentID)
		if err != nil {
			problems = append(problems, ItemProblem{Index: i, ID: it.AssignmentID, Reason: "assignmentId is not a valid id"})
			continue
		}
		if it.Quantity <= 0 {
			problems = append(problems, ItemProblem{Index: i, ID: it.AssignmentID, Reason: "qty must be a positive integer"})
			continue
		}
		pos, seen := index[id]
		if !seen {
			pos = len(lines)
			index[id] = pos
			lines = append(lines, deliverLine{assignmentID: id})
		}
		lines[pos].quantity += it.Quantity
		if note := strings.TrimSpace(it.Note); note != "" {
			lines[pos].notes = append(lines[pos].notes, note)
		}
	}
	if len(problems) > 0 {
		return BulkDeliverCommand{}, validationError("invalid delivery items", problems)
	}

	return BulkDeliverCommand{
		lines: lines,
		at:    at.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c BulkDeliverCommand) Validate() error {
	return c.guard.Validate(ErrBulkDeliverCommandIsNotConstructed)
}

func (c BulkDeliverCommand) At() time.Time {
	return c.at
}

func (c BulkDeliverCommand) AssignmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		ids = append(ids, l.assignmentID)
	}
	return ids
}

// Quantity returns the merged quantity for id.
func (c BulkDeliverCommand) Quantity(id kernel.UUID) int {
	for _, l := range c.lines {
		if l.assignmentID == id {
			return l.quantity
		}
	}
	return 0
}
