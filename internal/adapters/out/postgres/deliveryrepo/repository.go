package deliveryrepo

import (
	"context"
	"fmt"
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository.
type GormDeliveryRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormDeliveryRepository binds the repository to db. FindByPODay only
// locks when db is an open transaction.
//
// Example:
//
//	repo := deliveryrepo.NewGormDeliveryRepository(tx)
//	doc, err := repo.FindByPODay(ctx, po, day)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    doc, _ = delivery.NewDelivery(kernel.NewUUID(), po, day)
//	    _ = doc.AddLine("Rose patch", "M", 3)
//	    err = repo.Add(ctx, doc)
//	case err == nil:
//	    _ = doc.AddLine("Rose patch", "M", 3)
//	    err = repo.Update(ctx, doc)
//	}
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db, now: time.Now}
}

// FindByPODay loads the document and locks its row until the transaction
// ends, so concurrent shipments for the same PO and day merge one after the
// other.
func (r *GormDeliveryRepository) FindByPODay(ctx context.Context, po string, day delivery.Day) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("po = ? AND day = ?", po, day.String()).
		First(&dto).Error
	if err != nil {
		return nil, dbconv.NotFound(err, "delivery", po+"@"+day.String())
	}
	return toDomain(dto)
}

// Add inserts the document. Losing the race for (po, day) to another
// transaction surfaces as ports.ErrConcurrentUpdate so the caller retries
// and merges into the winner.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = r.now().UTC()
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dbconv.IsDuplicate(err) {
			return fmt.Errorf("delivery %s@%s: %w", dto.PO, dto.Day, ports.ErrConcurrentUpdate)
		}
		return err
	}
	return nil
}

// Update writes the merged document only if the stored total still equals
// the total it was loaded with. Otherwise it returns
// ports.ErrConcurrentUpdate.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = r.now().UTC()
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND total_quantity = ?", dto.ID, aggregate.LoadedTotal()).
		Select("lines", "total_quantity", "note", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delivery %s: %w", aggregate.ID(), ports.ErrConcurrentUpdate)
	}
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "delivery", id.String())
	}
	return toDomain(dto)
}
