package commands

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/pkg/guard"
)

var ErrCreateOrdersCommandIsNotConstructed = errors.New(
	"CreateOrdersCommand must be created via NewCreateOrdersCommand constructor",
)

// OrderItem is one order line as typed by the admin. The product is named
// by its code and the size, when present, by its name.
type OrderItem struct {
	PO       string
	ProdCode string
	Size     string
	Quantity int
	Deadline time.Time
	Note     string
}

// CreateOrdersCommand registers a batch of order lines. Invalid lines are
// reported back while valid ones are stored.
type CreateOrdersCommand struct { //nolint:recvcheck //using for validation
	items []OrderItem

	guard guard.ConstructorGuard
}

func NewCreateOrdersCommand(items []OrderItem) (CreateOrdersCommand, error) {
	if len(items) == 0 {
		return CreateOrdersCommand{}, validationError("orders must not be empty", nil)
	}
	normalized := make([]OrderItem, len(items))
	for i, it := range items {
		it.PO = strings.TrimSpace(it.PO)
		it.ProdCode = strings.TrimSpace(it.ProdCode)
		it.Size = strings.TrimSpace(it.Size)
		it.Note = strings.TrimSpace(it.Note)
		normalized[i] = it
	}
	return CreateOrdersCommand{
		items: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrdersCommandIsNotConstructed)
}

func (c CreateOrdersCommand) Items() []OrderItem {
	out := make([]OrderItem, len(c.items))
	copy(out, c.items)
	return out
}
