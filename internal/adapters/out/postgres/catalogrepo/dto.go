// Package catalogrepo reads the reference tables (categories, sizes,
// difficulties) and manages products.
package catalogrepo

import (
	"time"

	"embroidery/internal/adapters/out/postgres/dbconv"
	"embroidery/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CategoryDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"not null;uniqueIndex"`
	BasePrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Type      string          `gorm:"not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type SizeDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"not null;uniqueIndex"`
	BonusAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

func (SizeDTO) TableName() string {
	return "sizes"
}

type DifficultyDTO struct {
	ID    uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	Level int                                    `gorm:"not null;default:0"`
	Name  string                                 `gorm:"not null;uniqueIndex"`
	Bonus datatypes.JSONType[catalog.BonusTable] `gorm:"not null"`
}

func (DifficultyDTO) TableName() string {
	return "difficulties"
}

type ProductDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"not null"`
	ProdCode     string     `gorm:"not null;uniqueIndex"`
	CategoryID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	DifficultyID *uuid.UUID `gorm:"type:uuid"`
	Image        string     `gorm:"not null;default:''"`
	CreatedAt    time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func categoryToDomain(dto CategoryDTO) (catalog.Category, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return catalog.Category{}, err
	}
	return catalog.NewCategory(id, dto.Name, dto.BasePrice, catalog.CategoryType(dto.Type))
}

func sizeToDomain(dto SizeDTO) (catalog.Size, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return catalog.Size{}, err
	}
	return catalog.NewSize(id, dto.Name, dto.BonusAmount)
}

func difficultyToDomain(dto DifficultyDTO) (catalog.Difficulty, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return catalog.Difficulty{}, err
	}
	return catalog.NewDifficulty(id, dto.Level, dto.Name, dto.Bonus.Data())
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		ProdCode:     p.Code(),
		CategoryID:   p.CategoryID().Bytes(),
		DifficultyID: dbconv.OptionalRaw(p.DifficultyID()),
		Image:        p.Image(),
		CreatedAt:    p.CreatedAt(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := dbconv.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	categoryID, err := dbconv.ID(dto.CategoryID)
	if err != nil {
		return nil, err
	}
	difficultyID, err := dbconv.OptionalID(dto.DifficultyID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreProduct(id, dto.Name, dto.ProdCode, categoryID, difficultyID, dto.Image, dto.CreatedAt.UTC())
}

// CategoryFromDomain, SizeFromDomain and DifficultyFromDomain build rows
// for seeding the reference tables in tests and fixtures.
func CategoryFromDomain(c catalog.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID().Bytes(), Name: c.Name(), BasePrice: c.BasePrice(), Type: string(c.Type())}
}

func SizeFromDomain(s catalog.Size) SizeDTO {
	return SizeDTO{ID: s.ID().Bytes(), Name: s.Name(), BonusAmount: s.Bonus()}
}

func DifficultyFromDomain(d catalog.Difficulty) DifficultyDTO {
	return DifficultyDTO{ID: d.ID().Bytes(), Level: d.Level(), Name: d.Name(), Bonus: datatypes.NewJSONType(d.Bonus())}
}
