package queries

import (
	"context"
	"time"

	"embroidery/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var productColumns = []string{
	"p.id", "p.name", "p.prod_code", "p.image", "p.created_at",
	"c.id AS category_id", "COALESCE(c.name, '') AS category_name",
	"d.id AS difficulty_id", "d.name AS difficulty_name",
}

type productRow struct {
	ID             uuid.UUID
	Name           string
	ProdCode       string
	Image          string
	CreatedAt      time.Time
	CategoryID     uuid.UUID
	CategoryName   string
	DifficultyID   *uuid.UUID
	DifficultyName *string
}

func (r productRow) view() (ProductView, error) {
	ids, err := toIDs(r.ID, r.CategoryID)
	if err != nil {
		return ProductView{}, err
	}
	difficultyID, err := toOptionalID(r.DifficultyID)
	if err != nil {
		return ProductView{}, err
	}
	v := ProductView{
		ID:        ids[0],
		Name:      r.Name,
		ProdCode:  r.ProdCode,
		Image:     r.Image,
		Category:  NamedRef{ID: ids[1], Name: r.CategoryName},
		CreatedAt: r.CreatedAt,
	}
	if difficultyID != nil {
		v.Difficulty = &NamedRef{ID: *difficultyID, Name: deref(r.DifficultyName)}
	}
	return v, nil
}

func productsFrom() sq.SelectBuilder {
	return psql.Select().
		From("products p").
		Join("categories c ON c.id = p.category_id").
		LeftJoin("difficulties d ON d.id = p.difficulty_id")
}

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (ListProductsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsResponse{}, err
	}

	base := productsFrom()
	if query.categoryID != nil {
		base = base.Where(sq.Eq{"p.category_id": query.categoryID.Bytes()})
	}
	if query.difficultyID != nil {
		base = base.Where(sq.Eq{"p.difficulty_id": query.difficultyID.Bytes()})
	}
	if query.search != "" {
		pattern := containsPattern(query.search)
		base = base.Where(sq.Or{sq.ILike{"p.name": pattern}, sq.ILike{"p.prod_code": pattern}})
	}

	total, err := count(ctx, h.db, base)
	if err != nil {
		return ListProductsResponse{}, err
	}

	var rows []productRow
	list := base.Columns(productColumns...).OrderBy("p.created_at DESC", "p.id ASC")
	if err = fetch(ctx, h.db, window(list, query.page), &rows); err != nil {
		return ListProductsResponse{}, err
	}

	items := make([]ProductView, 0, len(rows))
	for _, r := range rows {
		v, viewErr := r.view()
		if viewErr != nil {
			return ListProductsResponse{}, viewErr
		}
		items = append(items, v)
	}
	return ListProductsResponse{Items: items, Pagination: query.page.Info(total)}, nil
}

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown id.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	var rows []productRow
	stmt := productsFrom().Columns(productColumns...).Where(sq.Eq{"p.id": query.id.Bytes()})
	if err := fetch(ctx, h.db, stmt, &rows); err != nil {
		return ProductView{}, err
	}
	if len(rows) == 0 {
		return ProductView{}, errs.NewObjectNotFoundError("productId", query.id)
	}
	return rows[0].view()
}
