package catalogrepo

import (
	"context"
	"fmt"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository binds the repository to db, which is either the
// pool or an open transaction.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AddProduct(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCatalogRepository) UpdateProduct(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "prod_code", "category_id", "difficulty_id", "image").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID(), ports.ErrConcurrentUpdate)
	}
	return nil
}

func (r *GormCatalogRepository) DeleteProduct(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return nil
}

func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "product", id.String())
	}
	return productToDomain(dto)
}

func (r *GormCatalogRepository) FindProductByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "prod_code = ?", code).Error; err != nil {
		return nil, dbconv.NotFound(err, "prodCode", code)
	}
	return productToDomain(dto)
}

func (r *GormCatalogRepository) ProductCodeTaken(ctx context.Context, code string, except *kernel.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("prod_code = ?", code)
	if except != nil {
		query = query.Where("id <> ?", except.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCatalogRepository) GetCategory(ctx context.Context, id kernel.UUID) (catalog.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return catalog.Category{}, dbconv.NotFound(err, "category", id.String())
	}
	return categoryToDomain(dto)
}

func (r *GormCatalogRepository) GetDifficulty(ctx context.Context, id kernel.UUID) (catalog.Difficulty, error) {
	var dto DifficultyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return catalog.Difficulty{}, dbconv.NotFound(err, "difficulty", id.String())
	}
	return difficultyToDomain(dto)
}

func (r *GormCatalogRepository) GetSize(ctx context.Context, id kernel.UUID) (catalog.Size, error) {
	var dto SizeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return catalog.Size{}, dbconv.NotFound(err, "size", id.String())
	}
	return sizeToDomain(dto)
}

func (r *GormCatalogRepository) FindSizeByName(ctx context.Context, name string) (catalog.Size, error) {
	var dto SizeDTO
	if err := r.db.WithContext(ctx).First(&dto, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return catalog.Size{}, dbconv.NotFound(err, "size", name)
	}
	return sizeToDomain(dto)
}
