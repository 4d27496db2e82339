package ports

import (
	"context"

	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/payment"
	"embroidery/internal/core/domain/model/returns"
)

// AssignmentRepository persists the per-worker share of an order. Every
// counter write is guarded so the delivered ≤ returned ≤ quantity chain
// holds after commit; a guard miss yields ErrConcurrentUpdate.
type AssignmentRepository interface {
	// UpsertIncrement inserts the assignment, or adds its quantity to the
	// existing row for the same order and worker.
	UpsertIncrement(ctx context.Context, aggregate *assignment.Assignment) error

	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetMany returns the assignments that exist among ids.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*assignment.Assignment, error)

	// CreditReturned adds n to the returned total while it stays within
	// the assigned quantity.
	CreditReturned(ctx context.Context, id kernel.UUID, n int) error

	// AddDelivered adds n to the delivered counter while it stays within
	// the returned total.
	AddDelivered(ctx context.Context, id kernel.UUID, n int) error
}

// ReturnRepository persists worker returns. Writes on unconfirmed returns
// are guarded by confirmed = false.
type ReturnRepository interface {
	AddMany(ctx context.Context, items []*returns.Return) error

	Get(ctx context.Context, id kernel.UUID) (*returns.Return, error)

	// GetMany returns the returns that exist among ids.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*returns.Return, error)

	UpdateQuantityUnconfirmed(ctx context.Context, id kernel.UUID, quantity int) error

	DeleteUnconfirmed(ctx context.Context, id kernel.UUID) error

	// ConfirmUnconfirmed sets the accepted quantity and flips confirmed.
	ConfirmUnconfirmed(ctx context.Context, id kernel.UUID, quantity int) error

	// MarkPaid flips paid on the confirmed unpaid returns among ids and
	// reports how many rows changed.
	MarkPaid(ctx context.Context, ids []kernel.UUID) (int64, error)
}

// DeliveryRepository persists delivery documents, one per PO and day.
type DeliveryRepository interface {
	// FindByPODay returns errs.ErrObjectNotFound when no document exists.
	// The row stays locked for the rest of the transaction.
	FindByPODay(ctx context.Context, po string, day delivery.Day) (*delivery.Delivery, error)

	// Add inserts a document. A duplicate (po, day) yields ErrConcurrentUpdate.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update yields ErrConcurrentUpdate when another transaction changed the
	// document after it was loaded.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
}

// PaymentRepository stores immutable payout snapshots.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error

	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
}
