// Package payment contains the Payment aggregate: an immutable snapshot of
// what a worker was paid, for which confirmed returns, broken down by
// product category, size bonus and difficulty bonus.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

type Payment struct {
	id            kernel.UUID
	workerID      kernel.UUID
	username      string
	breakdown     Breakdown
	grandTotal    decimal.Decimal
	note          string
	returnIDs     []kernel.UUID
	createdAt     time.Time
	isConstructed bool
}

// NewPayment validates and snapshots a payout. returnIDs are de-duplicated
// keeping first occurrence order.
func NewPayment(
	id, workerID kernel.UUID,
	username string,
	breakdown Breakdown,
	grandTotal decimal.Decimal,
	note string,
	returnIDs []kernel.UUID,
) (*Payment, error) {
	p := &Payment{
		username:      strings.TrimSpace(username),
		note:          strings.TrimSpace(note),
		isConstructed: true,
	}

	var errUser, errTotal, errReturns error
	if p.username == "" {
		errUser = errs.NewValueIsRequiredError("username")
	}
	if grandTotal.IsNegative() {
		errTotal = errs.NewValueIsInvalidErrorWithCause("grandTotal", fmt.Errorf("%s is negative", grandTotal))
	}
	p.returnIDs = UniqueIDs(returnIDs)
	if len(p.returnIDs) == 0 {
		errReturns = errs.NewValueIsRequiredError("listIdReturn")
	}
	normalized, errBreakdown := breakdown.Normalize()

	if err := errors.Join(id.Validate(), workerID.Validate(), errUser, errTotal, errReturns, errBreakdown); err != nil {
		return nil, err
	}

	p.id, p.workerID = id, workerID
	p.breakdown = normalized
	p.grandTotal = grandTotal
	return p, nil
}

// RestorePayment rebuilds a persisted payment.
func RestorePayment(
	id, workerID kernel.UUID,
	username string,
	breakdown Breakdown,
	grandTotal decimal.Decimal,
	note string,
	returnIDs []kernel.UUID,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, workerID, username, breakdown, grandTotal, note, returnIDs)
	if err != nil {
		return nil, err
	}
	p.createdAt = createdAt
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID { return p.id }

func (p *Payment) WorkerID() kernel.UUID { return p.workerID }

func (p *Payment) Username() string { return p.username }

func (p *Payment) Breakdown() Breakdown { return p.breakdown }

func (p *Payment) GrandTotal() decimal.Decimal { return p.grandTotal }

func (p *Payment) Note() string { return p.note }

func (p *Payment) CreatedAt() time.Time { return p.createdAt }

func (p *Payment) ReturnIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(p.returnIDs))
	copy(out, p.returnIDs)
	return out
}

// UniqueIDs drops repeated identifiers, keeping first occurrences in order.
func UniqueIDs(ids []kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
