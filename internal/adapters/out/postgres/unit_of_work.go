// Package postgres provides the GORM implementation of the unit of work.
//
// A unit of work wraps one database transaction. Repositories obtained
// from it after Begin run inside that transaction; before Begin they run
// directly on the pool.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.AssignmentRepository().CreditReturned(ctx, id, n); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction
// and changes nothing, so the deferred call is always safe.
package postgres

import (
	"context"

	"embroidery/internal/adapters/out/postgres/accountrepo"
	"embroidery/internal/adapters/out/postgres/assignmentrepo"
	"embroidery/internal/adapters/out/postgres/catalogrepo"
	"embroidery/internal/adapters/out/postgres/deliveryrepo"
	"embroidery/internal/adapters/out/postgres/orderrepo"
	"embroidery/internal/adapters/out/postgres/paymentrepo"
	"embroidery/internal/adapters/out/postgres/returnrepo"
	"embroidery/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory hands out a fresh unit of work per command so
// concurrent requests never share a transaction.
//
// Example:
//
//	db, err := postgres.Open(cfg.DSN(), postgres.PoolOptions{MaxOpenConns: 10})
//	if err != nil {
//	    return err
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	handler := commands.NewBulkAssignCommandHandler(
//	    FuncAssignmentUoWFactory(func() commands.AssignmentUoW { return factory.Create() }),
//	)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory uses db for every unit of work it creates. The
// pool is shared; transactions are not.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns an idle unit of work. Nothing touches the database until
// Begin or a repository call.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	doc, err := uow.DeliveryRepository().FindByPODay(ctx, po, day)
//	if err != nil {
//	    return err
//	}
//	if err := doc.AddLine("Logo polo", "M", 2); err != nil {
//	    return err
//	}
//	if err := uow.DeliveryRepository().Update(ctx, doc); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork is not safe for concurrent use. Row locks taken by its
// repositories, such as the one DeliveryRepository.FindByPODay takes, are
// held until Commit or Rollback.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit ends the transaction. A serialization or constraint failure
// surfaces here, after every repository call already succeeded.
//
// Example:
//
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Without an open transaction it
// returns gorm.ErrInvalidTransaction, which deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository and the accessors below bind a repository to the open
// transaction, or to the pool when Begin was not called. Call them after
// Begin; a repository obtained earlier keeps using the pool.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReturnRepository() ports.ReturnRepository {
	return returnrepo.NewGormReturnRepository(uow.conn())
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn())
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

func (uow *GormUnitOfWork) ResetTokenRepository() ports.ResetTokenRepository {
	return accountrepo.NewGormResetTokenRepository(uow.conn())
}

// conn is the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
