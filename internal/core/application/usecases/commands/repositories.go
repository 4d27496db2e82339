// Package commands contains business operations that modify the production
// ledger. Every command follows the same shape: a validated command value,
// a handler that opens a unit of work, performs guarded writes and commits.
package commands

import (
	"context"

	"embroidery/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	ResetTokenRepoFactory interface {
		ResetTokenRepository() ports.ResetTokenRepository
	}

	// AssignmentUoW covers handing order quantity out to workers.
	AssignmentUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
		AssignmentRepoFactory
	}

	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ReturnUoW covers submitting, editing, deleting and confirming returns.
	ReturnUoW interface {
		TxManager
		AssignmentRepoFactory
		ReturnRepoFactory
	}

	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// DeliveryUoW covers shipping confirmed pieces on delivery documents.
	DeliveryUoW interface {
		TxManager
		AssignmentRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PaymentUoW covers paying out confirmed returns.
	PaymentUoW interface {
		TxManager
		AccountRepoFactory
		AssignmentRepoFactory
		ReturnRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// OrderUoW covers order intake, which resolves catalog references.
	OrderUoW interface {
		TxManager
		CatalogRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW covers product maintenance.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
		OrderRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// AccountUoW covers registration, credentials and password resets.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
		ResetTokenRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
