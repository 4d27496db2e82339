package commands

import (
	"errors"
	"strings"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/payment"
	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSavePaymentCommandIsNotConstructed = errors.New(
	"SavePaymentCommand must be created via NewSavePaymentCommand constructor",
)

// SavePaymentCommand pays a worker for a set of confirmed returns and
// stores the breakdown shown to the admin at that moment.
type SavePaymentCommand struct { //nolint:recvcheck //using for validation
	username       string
	grandTotal     decimal.Decimal
	note           string
	breakdown      payment.Breakdown
	returnIDs      []kernel.UUID
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewSavePaymentCommand validates the breakdown and the return ids. The
// ids are de-duplicated; idempotencyKey may be empty.
func NewSavePaymentCommand(
	username string,
	grandTotal decimal.Decimal,
	note string,
	breakdown payment.Breakdown,
	returnIDs []string,
	idempotencyKey string,
) (SavePaymentCommand, error) {
	c := SavePaymentCommand{
		username:       strings.TrimSpace(username),
		grandTotal:     grandTotal,
		note:           strings.TrimSpace(note),
		idempotencyKey: strings.TrimSpace(idempotencyKey),
	}

	var problems []ItemProblem
	if c.username == "" {
		problems = append(problems, ItemProblem{Index: -1, Reason: "username is required"})
	}
	if grandTotal.IsNegative() {
		problems = append(problems, ItemProblem{Index: -1, Reason: "grandTotal must be a non-negative number"})
	}
	normalized, err := breakdown.Normalize()
	if err != nil {
		var be *payment.BreakdownError
		if !errors.As(err, &be) {
			return SavePaymentCommand{}, err
		}
		for _, p := range be.Problems {
			problems = append(problems, ItemProblem{Index: -1, Reason: p})
		}
	}
	if len(returnIDs) == 0 {
		problems = append(problems, ItemProblem{Index: -1, Reason: "listIdReturn must not be empty"})
	}
	if len(problems) > 0 {
		return SavePaymentCommand{}, validationError("invalid payment", problems)
	}

	ids, err := parseIDs("listIdReturn", returnIDs)
	if err != nil {
		return SavePaymentCommand{}, err
	}

	c.breakdown = normalized
	c.returnIDs = payment.UniqueIDs(ids)
	c.guard = guard.NewConstructorGuard()
	return c, nil
}

func (c SavePaymentCommand) Validate() error {
	if err := c.guard.Validate(ErrSavePaymentCommandIsNotConstructed); err != nil {
		return err
	}
	if len(c.returnIDs) == 0 {
		return errs.NewValueIsRequiredError("listIdReturn")
	}
	return nil
}

func (c SavePaymentCommand) Username() string { return c.username }

func (c SavePaymentCommand) GrandTotal() decimal.Decimal { return c.grandTotal }

func (c SavePaymentCommand) Note() string { return c.note }

func (c SavePaymentCommand) Breakdown() payment.Breakdown { return c.breakdown }

func (c SavePaymentCommand) ReturnIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.returnIDs))
	copy(out, c.returnIDs)
	return out
}

func (c SavePaymentCommand) IdempotencyKey() string { return c.idempotencyKey }
