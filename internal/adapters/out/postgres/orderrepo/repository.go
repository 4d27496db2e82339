package orderrepo

import (
	"context"
	"fmt"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository binds the repository to db, which is either the
// pool or an open transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "order", id.String())
	}
	return toDomain(dto)
}

func (r *GormOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", dbconv.IDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) IncrementAssigned(ctx context.Context, id kernel.UUID, n int) error {
	return r.increment(ctx, id, "quantity_assigned_total", n)
}

func (r *GormOrderRepository) IncrementDelivered(ctx context.Context, id kernel.UUID, n int) error {
	return r.increment(ctx, id, "quantity_delivered_total", n)
}

func (r *GormOrderRepository) ExistsForProduct(ctx context.Context, productID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *GormOrderRepository) increment(ctx context.Context, id kernel.UUID, column string, n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(column, fmt.Errorf("%d is not greater than 0", n))
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn(column, gorm.Expr(column+" + ?", n))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}
