// Package deliveryrepo persists delivery documents keyed by PO and day.
package deliveryrepo

import (
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DeliveryDTO struct {
	ID            uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	PO            string                             `gorm:"column:po;not null;uniqueIndex:uq_deliveries_po_day"`
	Day           string                             `gorm:"type:varchar(10);not null;uniqueIndex:uq_deliveries_po_day;index"`
	Lines         datatypes.JSONSlice[delivery.Line] `gorm:"not null"`
	TotalQuantity int                                `gorm:"not null;default:0"`
	Note          string                             `gorm:"not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:            d.ID().Bytes(),
		PO:            d.PO(),
		Day:           d.Day().String(),
		Lines:         datatypes.NewJSONSlice(d.Lines()),
		TotalQuantity: d.TotalQuantity(),
		Note:          d.Note(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	day, err := delivery.ParseDay(dto.Day)
	if err != nil {
		return nil, err
	}
	return delivery.RestoreDelivery(
		id, dto.PO, day,
		[]delivery.Line(dto.Lines),
		dto.Note,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(),
	)
}
