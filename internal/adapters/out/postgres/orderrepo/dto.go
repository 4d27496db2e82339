// Package orderrepo persists production orders and their running totals.
package orderrepo

import (
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. The totals are only ever changed by
// relative UPDATEs, never rewritten from a loaded aggregate.
type OrderDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PO                     string     `gorm:"column:po;not null;index"`
	ProductID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	SizeID                 *uuid.UUID `gorm:"type:uuid"`
	QuantityOrdered        int        `gorm:"not null;check:chk_orders_quantity,quantity_ordered >= 1"`
	QuantityAssignedTotal  int        `gorm:"not null;default:0"`
	QuantityDeliveredTotal int        `gorm:"not null;default:0"`
	Deadline               time.Time  `gorm:"not null;index"`
	Note                   string     `gorm:"not null;default:''"`
	CreatedAt              time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                     o.ID().Bytes(),
		PO:                     o.PO(),
		ProductID:              o.ProductID().Bytes(),
		SizeID:                 dbconv.OptionalRaw(o.SizeID()),
		QuantityOrdered:        o.QuantityOrdered(),
		QuantityAssignedTotal:  o.AssignedTotal(),
		QuantityDeliveredTotal: o.DeliveredTotal(),
		Deadline:               o.Deadline().UTC(),
		Note:                   o.Note(),
		CreatedAt:              o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	productID, err := dbconv.ID(dto.ProductID)
	if err != nil {
		return nil, err
	}
	sizeID, err := dbconv.OptionalID(dto.SizeID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.PO,
		productID,
		sizeID,
		dto.QuantityOrdered,
		dto.QuantityAssignedTotal,
		dto.QuantityDeliveredTotal,
		dto.Deadline.UTC(),
		dto.Note,
		dto.CreatedAt.UTC(),
	)
}
