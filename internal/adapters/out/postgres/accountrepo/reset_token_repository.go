package accountrepo

import (
	"context"
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/account"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormResetTokenRepository implements ports.ResetTokenRepository. The
// email primary key keeps at most one live token per address.
type GormResetTokenRepository struct {
	db *gorm.DB
}

// NewGormResetTokenRepository creates a reset token repository on db.
func NewGormResetTokenRepository(db *gorm.DB) *GormResetTokenRepository {
	return &GormResetTokenRepository{db: db}
}

func (r *GormResetTokenRepository) Upsert(ctx context.Context, token account.ResetToken) error {
	dto := tokenFromDomain(token)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
		}).
		Create(&dto).Error
}

func (r *GormResetTokenRepository) FindByToken(ctx context.Context, token string) (account.ResetToken, error) {
	return r.first(ctx, "token", token)
}

func (r *GormResetTokenRepository) FindByEmail(ctx context.Context, email string) (account.ResetToken, error) {
	return r.first(ctx, "email", account.NormalizeEmail(email))
}

func (r *GormResetTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&ResetTokenDTO{}, "token = ?", token).Error
}

func (r *GormResetTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Delete(&ResetTokenDTO{}, "email = ?", account.NormalizeEmail(email)).Error
}

func (r *GormResetTokenRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&ResetTokenDTO{}, "created_at < ?", cutoff.UTC())
	return result.RowsAffected, result.Error
}

func (r *GormResetTokenRepository) first(ctx context.Context, column, value string) (account.ResetToken, error) {
	var dto ResetTokenDTO
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&dto).Error; err != nil {
		return account.ResetToken{}, dbconv.NotFound(err, "reset token", column)
	}
	return tokenToDomain(dto)
}
