// Package returnrepo persists worker returns.
package returnrepo

import (
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/returns"

	"github.com/google/uuid"
)

type ReturnDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity     int       `gorm:"not null;check:chk_returns_quantity,quantity >= 0"`
	Confirmed    bool      `gorm:"not null;default:false;index:idx_returns_open,priority:1"`
	Paid         bool      `gorm:"not null;default:false;index:idx_returns_open,priority:2;check:chk_returns_paid_confirmed,confirmed OR NOT paid"`
	Note         string    `gorm:"not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ReturnDTO) TableName() string {
	return "returns"
}

func fromDomain(r *returns.Return) ReturnDTO {
	return ReturnDTO{
		ID:           r.ID().Bytes(),
		AssignmentID: r.AssignmentID().Bytes(),
		Quantity:     r.Quantity(),
		Confirmed:    r.IsConfirmed(),
		Paid:         r.IsPaid(),
		Note:         r.Note(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
}

func toDomain(dto ReturnDTO) (*returns.Return, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	assignmentID, err := dbconv.ID(dto.AssignmentID)
	if err != nil {
		return nil, err
	}
	return returns.RestoreReturn(
		id, assignmentID,
		dto.Quantity, dto.Confirmed, dto.Paid,
		dto.Note,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(),
	)
}
