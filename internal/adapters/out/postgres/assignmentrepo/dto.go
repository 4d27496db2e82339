// Package assignmentrepo persists assignments. Counter writes are relative
// UPDATEs guarded by the ledger chain, so two transactions racing on the
// same row cannot both succeed past its bounds.
package assignmentrepo

import (
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/assignment"

	"github.com/google/uuid"
)

type AssignmentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_order_worker"`
	WorkerID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_order_worker;index"`
	Quantity              int       `gorm:"not null;check:chk_assignments_chain,quantity_delivered >= 0 AND quantity_delivered <= quantity_returned_total AND quantity_returned_total <= quantity"`
	QuantityReturnedTotal int       `gorm:"not null;default:0"`
	QuantityDelivered     int       `gorm:"not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                    a.ID().Bytes(),
		OrderID:               a.OrderID().Bytes(),
		WorkerID:              a.WorkerID().Bytes(),
		Quantity:              a.Quantity(),
		QuantityReturnedTotal: a.Returned(),
		QuantityDelivered:     a.Delivered(),
		UpdatedAt:             a.UpdatedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := dbconv.ID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	workerID, err := dbconv.ID(dto.WorkerID)
	if err != nil {
		return nil, err
	}
	return assignment.RestoreAssignment(
		id, orderID, workerID,
		dto.Quantity, dto.QuantityReturnedTotal, dto.QuantityDelivered,
		dto.UpdatedAt.UTC(),
	)
}
