package commands

import (
	"bytes"
	"context"

	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// CreateProductCommandHandler stores the design document first and the
// product row second. If the row cannot be committed the document is
// removed again.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	files      ports.FileStore
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory, files ports.FileStore) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		files:      files,
	}
}

// Handle returns the id of the new product. A duplicate product code is a
// CONFLICT.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	taken, err := repo.ProductCodeTaken(ctx, cmd.code, nil)
	if err != nil {
		return kernel.UUID{}, err
	}
	if taken {
		return kernel.UUID{}, errs.Newf(errs.CodeConflict, "product code %q already exists", cmd.code)
	}
	if _, err = repo.GetCategory(ctx, cmd.categoryID); err != nil {
		return kernel.UUID{}, err
	}
	if cmd.difficultyID != nil {
		if _, err = repo.GetDifficulty(ctx, *cmd.difficultyID); err != nil {
			return kernel.UUID{}, err
		}
	}

	ref, err := h.files.Save(ctx, cmd.file.FileName, bytes.NewReader(cmd.file.Content))
	if err != nil {
		return kernel.UUID{}, err
	}

	id, err := h.persist(ctx, uow, repo, cmd, ref)
	if err != nil {
		_ = h.files.Delete(context.WithoutCancel(ctx), ref)
		return kernel.UUID{}, err
	}
	return id, nil
}

func (h CreateProductCommandHandler) persist(
	ctx context.Context,
	uow CatalogUoW,
	repo ports.CatalogRepository,
	cmd CreateProductCommand,
	ref string,
) (kernel.UUID, error) {
	p, err := catalog.NewProduct(kernel.NewUUID(), cmd.name, cmd.code, cmd.categoryID, cmd.difficultyID, ref)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = repo.AddProduct(ctx, p); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return p.ID(), nil
}
