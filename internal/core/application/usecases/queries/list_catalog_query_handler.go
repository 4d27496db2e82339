package queries

import (
	"context"

	"embroidery/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListCatalogQueryHandler serves the three reference lists. Each method
// takes the same parameterless query.
type ListCatalogQueryHandler struct {
	db *gorm.DB
}

func NewListCatalogQueryHandler(db *gorm.DB) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{db: db}
}

type categoryRow struct {
	ID        uuid.UUID
	Name      string
	BasePrice decimal.Decimal
	Type      string
}

// Categories are sorted by name.
func (h ListCatalogQueryHandler) Categories(ctx context.Context, query ListCatalogQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []categoryRow
	stmt := psql.Select("id", "name", "base_price", "type").From("categories").OrderBy("name ASC")
	if err := fetch(ctx, h.db, stmt, &rows); err != nil {
		return nil, err
	}

	out := make([]CategoryView, 0, len(rows))
	for _, r := range rows {
		id, err := toID(r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryView{ID: id, Name: r.Name, BasePrice: r.BasePrice, Type: catalog.CategoryType(r.Type)})
	}
	return out, nil
}

type sizeRow struct {
	ID          uuid.UUID
	Name        string
	BonusAmount decimal.Decimal
}

// Sizes are sorted by bonus, then name, so S M L XL follow each other.
func (h ListCatalogQueryHandler) Sizes(ctx context.Context, query ListCatalogQuery) ([]SizeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []sizeRow
	stmt := psql.Select("id", "name", "bonus_amount").From("sizes").OrderBy("bonus_amount ASC", "name ASC")
	if err := fetch(ctx, h.db, stmt, &rows); err != nil {
		return nil, err
	}

	out := make([]SizeView, 0, len(rows))
	for _, r := range rows {
		id, err := toID(r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, SizeView{ID: id, Name: r.Name, BonusAmount: r.BonusAmount})
	}
	return out, nil
}

type difficultyRow struct {
	ID    uuid.UUID
	Level int
	Name  string
	Bonus datatypes.JSONType[catalog.BonusTable]
}

// Difficulties are sorted by level.
func (h ListCatalogQueryHandler) Difficulties(ctx context.Context, query ListCatalogQuery) ([]DifficultyView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []difficultyRow
	stmt := psql.Select("id", "level", "name", "bonus").From("difficulties").OrderBy("level ASC", "name ASC")
	if err := fetch(ctx, h.db, stmt, &rows); err != nil {
		return nil, err
	}

	out := make([]DifficultyView, 0, len(rows))
	for _, r := range rows {
		id, err := toID(r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, DifficultyView{ID: id, Level: r.Level, Name: r.Name, Bonus: r.Bonus.Data().Complete()})
	}
	return out, nil
}
