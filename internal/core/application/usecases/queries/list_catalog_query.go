package queries

import (
	"errors"

	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListCatalogQueryIsNotConstructed = errors.New(
	"ListCatalogQuery must be created via NewListCatalogQuery constructor",
)

// ListCatalogQuery reads the fixed reference tables: categories, sizes
// and difficulties.
type ListCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewListCatalogQuery() ListCatalogQuery {
	return ListCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

type CategoryView struct {
	ID        kernel.UUID          `json:"id"`
	Name      string               `json:"name"`
	BasePrice decimal.Decimal      `json:"basePrice"`
	Type      catalog.CategoryType `json:"type"`
}

type SizeView struct {
	ID          kernel.UUID     `json:"id"`
	Name        string          `json:"name"`
	BonusAmount decimal.Decimal `json:"bonusAmount"`
}

// DifficultyView carries the complete bonus table, one entry per category
// type.
type DifficultyView struct {
	ID    kernel.UUID        `json:"id"`
	Level int                `json:"level"`
	Name  string             `json:"name"`
	Bonus catalog.BonusTable `json:"bonus"`
}
