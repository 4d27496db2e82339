// Package ports defines the contracts between the production ledger core and
// its infrastructure: repositories bound to a unit of work and the outbound
// services (mail, file storage, tokens) the application layer depends on.
package ports

import (
	"context"
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
)

// ErrConcurrentUpdate is returned by guarded writes whose WHERE clause no
// longer matched, meaning another transaction changed the row first.
var ErrConcurrentUpdate = errors.New("row was changed concurrently")

// OrderRepository defines the persistence contract for production orders.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany returns the orders that exist among ids, in no particular order.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// IncrementAssigned adds n to the order's assigned total.
	IncrementAssigned(ctx context.Context, id kernel.UUID, n int) error

	// IncrementDelivered adds n to the order's delivered total.
	IncrementDelivered(ctx context.Context, id kernel.UUID, n int) error

	// ExistsForProduct reports whether any order references the product.
	ExistsForProduct(ctx context.Context, productID kernel.UUID) (bool, error)
}
