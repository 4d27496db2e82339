// Package delivery contains the Delivery aggregate: the shipment document
// for one PO on one UTC day. Shipping twice on the same day for the same
// PO adds to the existing document, merging lines with the same product
// name and size.
package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

const noteSeparator = " | "

// Line is one product/size row of a delivery document.
type Line struct {
	ProductName string `json:"productName"`
	Size        string `json:"size,omitempty"`
	Quantity    int    `json:"quantity"`
}

func (l Line) key() string {
	return l.ProductName + "__" + l.Size
}

type Delivery struct {
	id            kernel.UUID
	po            string
	day           Day
	lines         []Line
	note          string
	createdAt     time.Time
	updatedAt     time.Time
	loadedTotal   int
	isConstructed bool
}

// NewDelivery opens an empty document for po on day.
func NewDelivery(id kernel.UUID, po string, day Day) (*Delivery, error) {
	d := &Delivery{isConstructed: true}
	po = strings.TrimSpace(po)

	var errPO, errDay error
	if po == "" {
		errPO = errs.NewValueIsRequiredError("po")
	}
	if day.IsZero() {
		errDay = errs.NewValueIsRequiredError("day")
	}
	if err := errors.Join(id.Validate(), errPO, errDay); err != nil {
		return nil, err
	}

	d.id, d.po, d.day = id, po, day
	d.lines = make([]Line, 0)
	return d, nil
}

// RestoreDelivery rebuilds a persisted document.
func RestoreDelivery(
	id kernel.UUID,
	po string,
	day Day,
	lines []Line,
	note string,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, po, day)
	if err != nil {
		return nil, err
	}
	d.lines = append(d.lines, lines...)
	d.note = note
	d.createdAt = createdAt
	d.updatedAt = updatedAt
	d.loadedTotal = d.TotalQuantity()
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID { return d.id }

func (d *Delivery) PO() string { return d.po }

func (d *Delivery) Day() Day { return d.day }

func (d *Delivery) Note() string { return d.note }

func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

// LoadedTotal is the total the document held when it was restored. Zero
// for a new document. Totals only grow, so it identifies the stored
// revision.
func (d *Delivery) LoadedTotal() int { return d.loadedTotal }

// Lines returns a copy of the document rows in insertion order.
func (d *Delivery) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// TotalQuantity sums every line.
func (d *Delivery) TotalQuantity() int {
	total := 0
	for _, l := range d.lines {
		total += l.Quantity
	}
	return total
}

// AddLine merges quantity into the row with the same product name and
// size, appending a new row otherwise.
func (d *Delivery) AddLine(productName, size string, quantity int) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	line := Line{ProductName: productName, Size: strings.TrimSpace(size), Quantity: quantity}
	for i := range d.lines {
		if d.lines[i].key() == line.key() {
			d.lines[i].Quantity += quantity
			return nil
		}
	}
	d.lines = append(d.lines, line)
	return nil
}

// AppendNotes joins the non-blank notes with " | " and appends them to
// the existing note with the same separator.
func (d *Delivery) AppendNotes(notes ...string) {
	kept := make([]string, 0, len(notes))
	for _, n := range notes {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return
	}
	more := strings.Join(kept, noteSeparator)
	if d.note == "" {
		d.note = more
		return
	}
	d.note = d.note + noteSeparator + more
}
