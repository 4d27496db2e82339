package services

import (
	"errors"
	"fmt"
	"strings"

	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/ledger"
)

// ErrNothingToDeliver is returned when a plan is requested for no items.
var ErrNothingToDeliver = errors.New("nothing to deliver")

// DeliveryItem is one assignment's contribution to a bulk delivery, already
// merged so each assignment appears once.
type DeliveryItem struct {
	Assignment  *assignment.Assignment
	PO          string
	ProductName string
	Size        string
	Quantity    int
	Notes       []string
}

// Shortfall describes an item that asks for more than the assignment holds.
type Shortfall struct {
	AssignmentID kernel.UUID `json:"assignmentId"`
	Requested    int         `json:"requested"`
	Available    int         `json:"available"`
}

// ShortfallError lists every offending item of a rejected plan.
type ShortfallError struct {
	Items []Shortfall
}

func (e *ShortfallError) Error() string {
	parts := make([]string, 0, len(e.Items))
	for _, s := range e.Items {
		parts = append(parts, fmt.Sprintf("%s requested %d, available %d", s.AssignmentID, s.Requested, s.Available))
	}
	return "insufficient quantity: " + strings.Join(parts, "; ")
}

func (e *ShortfallError) Unwrap() error {
	return ledger.ErrInsufficientQuantity
}

// Shipment groups the items of one PO delivered on the same day.
type Shipment struct {
	PO    string
	Items []DeliveryItem
}

// Total is the number of pieces in the shipment.
func (s Shipment) Total() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// ApplyTo merges the shipment lines into doc and appends the item notes.
func (s Shipment) ApplyTo(doc *delivery.Delivery) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	notes := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		if err := doc.AddLine(it.ProductName, it.Size, it.Quantity); err != nil {
			return err
		}
		notes = append(notes, it.Notes...)
	}
	doc.AppendNotes(notes...)
	return nil
}

// DeliveryPlanner checks availability for a whole batch before anything is
// written and decides which delivery document each item lands on.
type DeliveryPlanner struct{}

func NewDeliveryPlanner() DeliveryPlanner {
	return DeliveryPlanner{}
}

// Plan validates every item against its assignment and, if all fit, moves
// the quantities to delivered on the in-memory assignments and returns one
// shipment per PO in first-seen order. Nothing is mutated when any item
// falls short; the error then lists all shortfalls.
func (DeliveryPlanner) Plan(items []DeliveryItem) ([]Shipment, error) {
	if len(items) == 0 {
		return nil, ErrNothingToDeliver
	}

	var shortfalls []Shortfall
	for _, it := range items {
		if err := it.Assignment.Validate(); err != nil {
			return nil, err
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("assignment %s: quantity %d must be greater than 0", it.Assignment.ID(), it.Quantity)
		}
		if it.Quantity > it.Assignment.Available() {
			shortfalls = append(shortfalls, Shortfall{
				AssignmentID: it.Assignment.ID(),
				Requested:    it.Quantity,
				Available:    it.Assignment.Available(),
			})
		}
	}
	if len(shortfalls) > 0 {
		return nil, &ShortfallError{Items: shortfalls}
	}

	var shipments []Shipment
	index := make(map[string]int)
	for _, it := range items {
		if err := it.Assignment.Deliver(it.Quantity); err != nil {
			return nil, err
		}
		i, ok := index[it.PO]
		if !ok {
			i = len(shipments)
			index[it.PO] = i
			shipments = append(shipments, Shipment{PO: it.PO})
		}
		shipments[i].Items = append(shipments[i].Items, it)
	}
	return shipments, nil
}
