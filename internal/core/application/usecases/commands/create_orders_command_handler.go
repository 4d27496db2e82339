package commands

import (
	"context"
	"errors"

	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/pkg/errs"
)

type CreateOrdersResult struct {
	Created []kernel.UUID `json:"created"`
	Failed  []ItemProblem `json:"failed"`
}

// CreateOrdersCommandHandler resolves catalog references for every line and
// stores the valid ones in one transaction.
type CreateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrdersCommandHandler creates the handler.
func NewCreateOrdersCommandHandler(uowFactory OrderUoWFactory) CreateOrdersCommandHandler {
	return CreateOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with a validation error only when no line could be stored.
func (h CreateOrdersCommandHandler) Handle(ctx context.Context, cmd CreateOrdersCommand) (CreateOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result := CreateOrdersResult{Created: []kernel.UUID{}, Failed: []ItemProblem{}}
	orderRepo := uow.OrderRepository()
	for i, it := range cmd.Items() {
		o, reason, err := h.build(ctx, uow, it)
		if err != nil {
			return CreateOrdersResult{}, err
		}
		if reason != "" {
			result.Failed = append(result.Failed, ItemProblem{Index: i, ID: it.PO, Reason: reason})
			continue
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return CreateOrdersResult{}, err
		}
		result.Created = append(result.Created, o.ID())
	}

	if len(result.Created) == 0 {
		return result, validationError("no order could be created", result.Failed)
	}

	if err := uow.Commit(ctx); err != nil {
		return CreateOrdersResult{}, err
	}

	return result, nil
}

// build returns either the order or the reason the line was rejected.
// Only infrastructure failures come back as err.
func (h CreateOrdersCommandHandler) build(ctx context.Context, uow OrderUoW, it OrderItem) (*order.Order, string, error) {
	if it.ProdCode == "" {
		return nil, "prodCode is required", nil
	}
	catalogRepo := uow.CatalogRepository()
	product, err := catalogRepo.FindProductByCode(ctx, it.ProdCode)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, "product code " + it.ProdCode + " does not exist", nil
	}
	if err != nil {
		return nil, "", err
	}

	var sizeID *kernel.UUID
	if it.Size != "" {
		size, err := catalogRepo.FindSizeByName(ctx, it.Size)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, "size " + it.Size + " does not exist", nil
		}
		if err != nil {
			return nil, "", err
		}
		id := size.ID()
		sizeID = &id
	}

	o, err := order.NewOrder(kernel.NewUUID(), it.PO, product.ID(), sizeID, it.Quantity, it.Deadline, it.Note)
	if err != nil {
		return nil, err.Error(), nil
	}
	return o, "", nil
}
