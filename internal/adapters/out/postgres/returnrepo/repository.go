package returnrepo

import (
	"context"
	"fmt"
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/returns"
	"embroidery/internal/core/ports"

	"gorm.io/gorm"
)

// GormReturnRepository implements ports.ReturnRepository. Every write on
// an existing row carries confirmed = false so a return confirmed by
// another transaction is never edited, deleted or confirmed twice.
type GormReturnRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormReturnRepository binds the repository to db, which is either the
// pool or an open transaction.
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db, now: time.Now}
}

func (r *GormReturnRepository) AddMany(ctx context.Context, items []*returns.Return) error {
	if len(items) == 0 {
		return nil
	}

	dtos := make([]ReturnDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(item))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

func (r *GormReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.Return, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "return", id.String())
	}
	return toDomain(dto)
}

func (r *GormReturnRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*returns.Return, error) {
	if len(ids) == 0 {
		return []*returns.Return{}, nil
	}

	var dtos []ReturnDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", dbconv.IDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*returns.Return, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *GormReturnRepository) UpdateQuantityUnconfirmed(ctx context.Context, id kernel.UUID, quantity int) error {
	return r.updateUnconfirmed(ctx, id, map[string]any{"quantity": quantity})
}

func (r *GormReturnRepository) ConfirmUnconfirmed(ctx context.Context, id kernel.UUID, quantity int) error {
	return r.updateUnconfirmed(ctx, id, map[string]any{"quantity": quantity, "confirmed": true})
}

func (r *GormReturnRepository) DeleteUnconfirmed(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND confirmed = ?", id.Bytes(), false).
		Delete(&ReturnDTO{})
	return expectOne(result, id)
}

// MarkPaid flips paid on the confirmed unpaid rows among ids. The caller
// compares the count with the number of ids it expected to pay.
func (r *GormReturnRepository) MarkPaid(ctx context.Context, ids []kernel.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&ReturnDTO{}).
		Where("id IN ?", dbconv.IDs(ids)).
		Where("confirmed = ? AND paid = ?", true, false).
		UpdateColumns(map[string]any{"paid": true, "updated_at": r.now().UTC()})
	return result.RowsAffected, result.Error
}

func (r *GormReturnRepository) updateUnconfirmed(ctx context.Context, id kernel.UUID, values map[string]any) error {
	values["updated_at"] = r.now().UTC()
	result := r.db.WithContext(ctx).
		Model(&ReturnDTO{}).
		Where("id = ? AND confirmed = ?", id.Bytes(), false).
		UpdateColumns(values)
	return expectOne(result, id)
}

func expectOne(result *gorm.DB, id kernel.UUID) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("return %s: %w", id, ports.ErrConcurrentUpdate)
	}
	return nil
}
