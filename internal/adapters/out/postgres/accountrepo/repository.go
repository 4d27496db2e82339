package accountrepo

import (
	"context"
	"strings"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements ports.AccountRepository.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository binds the repository to db, which is either the
// pool or an open transaction.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dbconv.IsDuplicate(err) {
			return errs.Wrap(errs.CodeConflict, err, "username or email already exists")
		}
		return err
	}
	return nil
}

func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "account", id.String(), "id = ?", id.Bytes())
}

func (r *GormAccountRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	return r.first(ctx, "username", username, "username = ?", strings.TrimSpace(username))
}

func (r *GormAccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.first(ctx, "email", email, "email = ?", account.NormalizeEmail(email))
}

func (r *GormAccountRepository) ExistsUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("username = ? OR email = ?", strings.TrimSpace(username), account.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *GormAccountRepository) UpdatePassword(ctx context.Context, id kernel.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", id.String())
	}
	return nil
}

func (r *GormAccountRepository) first(ctx context.Context, param, key string, query string, args ...any) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		return nil, dbconv.NotFound(err, param, key)
	}
	return accountToDomain(dto)
}
