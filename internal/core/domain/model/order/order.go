package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of one production order line.
type Order struct {
	id              kernel.UUID
	po              string
	productID       kernel.UUID
	sizeID          *kernel.UUID
	quantityOrdered int
	assignedTotal   int
	deliveredTotal  int
	deadline        time.Time
	note            string
	createdAt       time.Time
	isConstructed   bool
}

// NewOrder creates an order with zero assigned and delivered totals.
//
//	o, err := order.NewOrder(kernel.NewUUID(), "PO-1042", productID, &sizeID, 120, deadline, "rush")
func NewOrder(
	id kernel.UUID,
	po string,
	productID kernel.UUID,
	sizeID *kernel.UUID,
	quantity int,
	deadline time.Time,
	note string,
) (*Order, error) {
	o := &Order{
		note:          strings.TrimSpace(note),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPO(po),
		o.setProductID(productID),
		o.setSizeID(sizeID),
		o.setQuantity(quantity),
		o.setDeadline(deadline),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order including its running totals.
func RestoreOrder(
	id kernel.UUID,
	po string,
	productID kernel.UUID,
	sizeID *kernel.UUID,
	quantity, assignedTotal, deliveredTotal int,
	deadline time.Time,
	note string,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, po, productID, sizeID, quantity, deadline, note)
	if err != nil {
		return nil, err
	}
	if assignedTotal < 0 || deliveredTotal < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order totals",
			fmt.Errorf("assigned=%d delivered=%d", assignedTotal, deliveredTotal))
	}
	o.assignedTotal = assignedTotal
	o.deliveredTotal = deliveredTotal
	o.createdAt = createdAt
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) PO() string { return o.po }
func (o *Order) ProductID() kernel.UUID { return o.productID }
func (o *Order) SizeID() *kernel.UUID { return o.sizeID }
func (o *Order) QuantityOrdered() int { return o.quantityOrdered }
func (o *Order) AssignedTotal() int { return o.assignedTotal }
func (o *Order) DeliveredTotal() int { return o.deliveredTotal }
func (o *Order) Deadline() time.Time { return o.deadline }
func (o *Order) Note() string { return o.note }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Unassigned is how many ordered pieces have no worker yet, never negative.
func (o *Order) Unassigned() int {
	return max(o.quantityOrdered-o.assignedTotal, 0)
}

// AddAssigned records n more pieces handed out to workers.
func (o *Order) AddAssigned(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("assigned quantity", fmt.Errorf("%d is not greater than 0", n))
	}
	o.assignedTotal += n
	return nil
}

// AddDelivered records n more pieces shipped to the customer.
func (o *Order) AddDelivered(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivered quantity", fmt.Errorf("%d is not greater than 0", n))
	}
	o.deliveredTotal += n
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPO(po string) error {
	po = strings.TrimSpace(po)
	if po == "" {
		return errs.NewValueIsRequiredError("po")
	}
	o.po = po
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	o.productID = id
	return nil
}

func (o *Order) setSizeID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sizeId", err)
	}
	sizeID := *id
	o.sizeID = &sizeID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantityOrdered = quantity
	return nil
}

func (o *Order) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}
	o.deadline = deadline.UTC()
	return nil
}
