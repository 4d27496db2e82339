package ports

import (
	"context"

	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
)

// CatalogRepository reads the fixed reference tables and manages products.
type CatalogRepository interface {
	AddProduct(ctx context.Context, product *catalog.Product) error

	UpdateProduct(ctx context.Context, product *catalog.Product) error

	DeleteProduct(ctx context.Context, id kernel.UUID) error

	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	FindProductByCode(ctx context.Context, code string) (*catalog.Product, error)

	// ProductCodeTaken reports whether another product than except uses code.
	ProductCodeTaken(ctx context.Context, code string, except *kernel.UUID) (bool, error)

	GetCategory(ctx context.Context, id kernel.UUID) (catalog.Category, error)

	GetDifficulty(ctx context.Context, id kernel.UUID) (catalog.Difficulty, error)

	GetSize(ctx context.Context, id kernel.UUID) (catalog.Size, error)

	// FindSizeByName matches the size name case-insensitively.
	FindSizeByName(ctx context.Context, name string) (catalog.Size, error)
}
