// Package returns contains the Return entity: a batch of finished pieces a
// worker hands back against one assignment.
//
// A return starts unconfirmed. While unconfirmed it can be edited or
// deleted and has no effect on any counter. Confirming fixes the accepted
// quantity for good; the accepted pieces are credited to the assignment in
// the same transaction. A confirmed return can later be marked paid, once.
// Paid implies confirmed.
package returns

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"
)

var (
	ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn constructor")
	ErrAlreadyConfirmed       = errors.New("return is already confirmed")
	ErrNotConfirmed           = errors.New("return is not confirmed")
	ErrAlreadyPaid            = errors.New("return is already paid")
)

type Return struct {
	id            kernel.UUID
	assignmentID  kernel.UUID
	quantity      int
	confirmed     bool
	paid          bool
	note          string
	createdAt     time.Time
	updatedAt     time.Time
	isConstructed bool
}

// NewReturn records quantity > 0 pieces returned against assignmentID.
func NewReturn(id, assignmentID kernel.UUID, quantity int, note string) (*Return, error) {
	r := &Return{note: strings.TrimSpace(note), isConstructed: true}
	if err := errors.Join(
		id.Validate(),
		assignmentID.Validate(),
		positive(quantity),
	); err != nil {
		return nil, err
	}
	r.id, r.assignmentID, r.quantity = id, assignmentID, quantity
	return r, nil
}

// RestoreReturn rebuilds a persisted return.
func RestoreReturn(
	id, assignmentID kernel.UUID,
	quantity int,
	confirmed, paid bool,
	note string,
	createdAt, updatedAt time.Time,
) (*Return, error) {
	if err := errors.Join(id.Validate(), assignmentID.Validate()); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if paid && !confirmed {
		return nil, ErrNotConfirmed
	}
	return &Return{
		id:            id,
		assignmentID:  assignmentID,
		quantity:      quantity,
		confirmed:     confirmed,
		paid:          paid,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

func (r *Return) ID() kernel.UUID { return r.id }

func (r *Return) AssignmentID() kernel.UUID { return r.assignmentID }

func (r *Return) Quantity() int { return r.quantity }

func (r *Return) IsConfirmed() bool { return r.confirmed }

func (r *Return) IsPaid() bool { return r.paid }

func (r *Return) Note() string { return r.note }

func (r *Return) CreatedAt() time.Time { return r.createdAt }

func (r *Return) UpdatedAt() time.Time { return r.updatedAt }

// Edit overwrites the quantity of an unconfirmed return.
func (r *Return) Edit(quantity int) error {
	if r.confirmed {
		return ErrAlreadyConfirmed
	}
	if err := positive(quantity); err != nil {
		return err
	}
	r.quantity = quantity
	return nil
}

// EnsureDeletable fails once the return has been confirmed.
func (r *Return) EnsureDeletable() error {
	if r.confirmed {
		return ErrAlreadyConfirmed
	}
	return nil
}

// Confirm fixes the accepted quantity. accepted must be positive; an
// accepted quantity of zero is expressed by deleting the return instead.
func (r *Return) Confirm(accepted int) error {
	if r.confirmed {
		return ErrAlreadyConfirmed
	}
	if err := positive(accepted); err != nil {
		return err
	}
	r.quantity = accepted
	r.confirmed = true
	return nil
}

// EnsurePayable fails unless the return is confirmed and unpaid.
func (r *Return) EnsurePayable() error {
	if !r.confirmed {
		return ErrNotConfirmed
	}
	if r.paid {
		return ErrAlreadyPaid
	}
	return nil
}

func (r *Return) MarkPaid() error {
	if err := r.EnsurePayable(); err != nil {
		return err
	}
	r.paid = true
	return nil
}

func positive(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
