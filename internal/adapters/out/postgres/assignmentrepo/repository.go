package assignmentrepo

import (
	"context"
	"fmt"
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/assignment"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository implements ports.AssignmentRepository.
type GormAssignmentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormAssignmentRepository binds the repository to db. The guarded
// credit updates only hold their invariants inside a transaction.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db, now: time.Now}
}

// UpsertIncrement inserts the row or, when the (order, worker) pair
// already has one, grows its quantity by the aggregate's quantity.
func (r *GormAssignmentRepository) UpsertIncrement(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = r.now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}, {Name: "worker_id"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "quantity"}, Value: gorm.Expr("assignments.quantity + excluded.quantity")},
				{Column: clause.Column{Name: "updated_at"}, Value: gorm.Expr("excluded.updated_at")},
			},
		}).
		Create(&dto).Error
}

func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "assignment", id.String())
	}
	return toDomain(dto)
}

func (r *GormAssignmentRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*assignment.Assignment, error) {
	if len(ids) == 0 {
		return []*assignment.Assignment{}, nil
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", dbconv.IDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *GormAssignmentRepository) CreditReturned(ctx context.Context, id kernel.UUID, n int) error {
	return r.guardedAdd(ctx, id, "quantity_returned_total", "quantity_returned_total + ? <= quantity", n)
}

func (r *GormAssignmentRepository) AddDelivered(ctx context.Context, id kernel.UUID, n int) error {
	return r.guardedAdd(ctx, id, "quantity_delivered", "quantity_delivered + ? <= quantity_returned_total", n)
}

func (r *GormAssignmentRepository) guardedAdd(ctx context.Context, id kernel.UUID, column, guard string, n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(column, fmt.Errorf("%d is not greater than 0", n))
	}

	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", id.Bytes()).
		Where(guard, n).
		UpdateColumns(map[string]any{
			column:       gorm.Expr(column+" + ?", n),
			"updated_at": r.now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("assignment %s: %w", id, ports.ErrConcurrentUpdate)
	}
	return nil
}
