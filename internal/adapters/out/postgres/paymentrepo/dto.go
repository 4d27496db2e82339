// Package paymentrepo stores payout snapshots. Rows are insert-only.
package paymentrepo

import (
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PaymentDTO struct {
	ID         uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	WorkerID   uuid.UUID                             `gorm:"type:uuid;not null;index"`
	Username   string                                `gorm:"not null"`
	Breakdown  datatypes.JSONType[payment.Breakdown] `gorm:"not null"`
	GrandTotal decimal.Decimal                       `gorm:"type:numeric(14,2);not null"`
	Note       string                                `gorm:"not null;default:''"`
	ReturnIDs  datatypes.JSONSlice[uuid.UUID]        `gorm:"column:return_ids;not null"`
	CreatedAt  time.Time                             `gorm:"index"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         p.ID().Bytes(),
		WorkerID:   p.WorkerID().Bytes(),
		Username:   p.Username(),
		Breakdown:  datatypes.NewJSONType(p.Breakdown()),
		GrandTotal: p.GrandTotal(),
		Note:       p.Note(),
		ReturnIDs:  datatypes.NewJSONSlice(dbconv.IDs(p.ReturnIDs())),
		CreatedAt:  p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	workerID, err := dbconv.ID(dto.WorkerID)
	if err != nil {
		return nil, err
	}

	returnIDs := make([]kernel.UUID, 0, len(dto.ReturnIDs))
	for _, raw := range dto.ReturnIDs {
		rid, convErr := dbconv.ID(raw)
		if convErr != nil {
			return nil, convErr
		}
		returnIDs = append(returnIDs, rid)
	}

	return payment.RestorePayment(
		id, workerID,
		dto.Username,
		dto.Breakdown.Data(),
		dto.GrandTotal,
		dto.Note,
		returnIDs,
		dto.CreatedAt.UTC(),
	)
}
