package commands

import (
	"context"

	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// DeleteProductCommandHandler removes a product nobody ordered yet together
// with its design document.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	files      ports.FileStore
}

func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory, files ports.FileStore) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		files:      files,
	}
}

// Handle refuses products referenced by orders. A document already gone
// from the store is fine; any other store failure aborts the delete.
func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	used, err := uow.OrderRepository().ExistsForProduct(ctx, p.ID())
	if err != nil {
		return err
	}
	if used {
		return errs.New(errs.CodeDependentResource, "product is referenced by existing orders")
	}

	if err = repo.DeleteProduct(ctx, p.ID()); err != nil {
		return err
	}
	if p.Image() != "" {
		if err = h.files.Delete(ctx, p.Image()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
