package queries

import (
	"errors"
	"strings"
	"time"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/guard"
	"embroidery/internal/pkg/pagination"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
)

// ListProductsQuery pages through the catalog, newest first. search
// matches the product name or code.
type ListProductsQuery struct {
	categoryID   *kernel.UUID
	difficultyID *kernel.UUID
	search       string
	page         pagination.Params
	guard        guard.ConstructorGuard
}

func NewListProductsQuery(
	categoryID, difficultyID *kernel.UUID,
	search string,
	page, limit int,
) ListProductsQuery {
	return ListProductsQuery{
		categoryID:   categoryID,
		difficultyID: difficultyID,
		search:       strings.TrimSpace(search),
		page:         pagination.New(page, limit),
		guard:        guard.NewConstructorGuard(),
	}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Page() pagination.Params {
	return q.page
}

type GetProductQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetProductQuery(id kernel.UUID) (GetProductQuery, error) {
	if err := id.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

type NamedRef struct {
	ID   kernel.UUID `json:"id"`
	Name string      `json:"name"`
}

type ProductView struct {
	ID         kernel.UUID `json:"id"`
	Name       string      `json:"name"`
	ProdCode   string      `json:"prodCode"`
	Image      string      `json:"image"`
	Category   NamedRef    `json:"category"`
	Difficulty *NamedRef   `json:"difficulty,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type ListProductsResponse struct {
	Items      []ProductView
	Pagination pagination.Info
}
