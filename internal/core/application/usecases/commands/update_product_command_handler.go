package commands

import (
	"bytes"
	"context"

	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// UpdateProductCommandHandler applies a partial update. A new document
// replaces the old one; the old file is removed after commit on a best
// effort basis.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	files      ports.FileStore
}

func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory, files ports.FileStore) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		files:      files,
	}
}

// Handle leaves fields the command does not carry untouched.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	p, err := repo.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if cmd.code != nil && *cmd.code != p.Code() {
		id := p.ID()
		taken, err := repo.ProductCodeTaken(ctx, *cmd.code, &id)
		if err != nil {
			return err
		}
		if taken {
			return errs.Newf(errs.CodeConflict, "product code %q already exists", *cmd.code)
		}
	}
	if cmd.categoryID != nil {
		if _, err = repo.GetCategory(ctx, *cmd.categoryID); err != nil {
			return err
		}
	}
	if cmd.difficultyID != nil {
		if _, err = repo.GetDifficulty(ctx, *cmd.difficultyID); err != nil {
			return err
		}
	}

	changes := catalog.ProductChanges{
		Name:         cmd.name,
		Code:         cmd.code,
		CategoryID:   cmd.categoryID,
		DifficultyID: cmd.difficultyID,
	}
	oldImage := p.Image()
	newImage := ""
	if cmd.file != nil {
		if newImage, err = h.files.Save(ctx, cmd.file.FileName, bytes.NewReader(cmd.file.Content)); err != nil {
			return err
		}
		changes.Image = &newImage
	}

	if err = h.persist(ctx, uow, repo, p, changes); err != nil {
		if newImage != "" {
			_ = h.files.Delete(context.WithoutCancel(ctx), newImage)
		}
		return err
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		_ = h.files.Delete(ctx, oldImage)
	}
	return nil
}

func (h UpdateProductCommandHandler) persist(
	ctx context.Context,
	uow CatalogUoW,
	repo ports.CatalogRepository,
	p *catalog.Product,
	changes catalog.ProductChanges,
) error {
	if err := p.Apply(changes); err != nil {
		return err
	}
	if err := repo.UpdateProduct(ctx, p); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
