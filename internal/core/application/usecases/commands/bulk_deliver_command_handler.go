package commands

import (
	"context"
	"errors"

	"embroidery/internal/core/domain/model/catalog"
	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/domain/model/order"
	"embroidery/internal/core/domain/services"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
)

// BulkDeliverResult lists the touched delivery documents.
type BulkDeliverResult struct {
	DeliveryIDs []kernel.UUID `json:"deliveryIds"`
	Day         string        `json:"day"`
	Total       int           `json:"total"`
}

// BulkDeliverCommandHandler validates availability for the whole batch,
// merges the pieces into one delivery document per PO and day, and moves
// the assignment and order counters, all in one transaction.
type BulkDeliverCommandHandler struct {
	uowFactory DeliveryUoWFactory
	planner    services.DeliveryPlanner
}

// NewBulkDeliverCommandHandler creates the handler with the default
// delivery planner.
func NewBulkDeliverCommandHandler(uowFactory DeliveryUoWFactory) BulkDeliverCommandHandler {
	return BulkDeliverCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewDeliveryPlanner(),
	}
}

// Handle is all or nothing. A shortfall on any item fails the batch with
// STATE_CONFLICT listing every short item; a document changed by a
// concurrent shipment fails it with CONFLICT.
//
// Example:
//
//	handler := NewBulkDeliverCommandHandler(uowFactory)
//	cmd, err := NewBulkDeliverCommand([]DeliverItem{
//	    {AssignmentID: a1, Quantity: 12},
//	    {AssignmentID: a2, Quantity: 3, Note: "second box"},
//	}, time.Now())
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	switch errs.CodeOf(err) {
//	case "":
//	    log.Printf("%d pieces on %s", result.Total, result.Day)
//	case errs.CodeStateConflict:
//	    log.Printf("short: %v", errs.As(err).Details())
//	default:
//	    return err
//	}
func (h BulkDeliverCommandHandler) Handle(ctx context.Context, cmd BulkDeliverCommand) (BulkDeliverResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkDeliverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkDeliverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, orders, err := h.loadItems(ctx, uow, cmd)
	if err != nil {
		return BulkDeliverResult{}, err
	}

	shipments, err := h.planner.Plan(items)
	if err != nil {
		var shortfall *services.ShortfallError
		if errors.As(err, &shortfall) {
			return BulkDeliverResult{}, errs.Wrap(errs.CodeStateConflict, err, "requested quantity exceeds available quantity").
				WithDetails(shortfall.Items)
		}
		return BulkDeliverResult{}, err
	}

	day := delivery.DayOf(cmd.At())
	result := BulkDeliverResult{DeliveryIDs: make([]kernel.UUID, 0, len(shipments)), Day: day.String()}
	deliveryRepo := uow.DeliveryRepository()
	for _, s := range shipments {
		id, err := h.ship(ctx, deliveryRepo, s, day)
		if err != nil {
			return BulkDeliverResult{}, err
		}
		result.DeliveryIDs = append(result.DeliveryIDs, id)
		result.Total += s.Total()
	}

	assignmentRepo := uow.AssignmentRepository()
	orderRepo := uow.OrderRepository()
	for _, it := range items {
		a := it.Assignment
		if err = assignmentRepo.AddDelivered(ctx, a.ID(), it.Quantity); err != nil {
			return BulkDeliverResult{}, guardFailed("deliver assignment", err)
		}
		o := orders[a.OrderID()]
		if err = o.AddDelivered(it.Quantity); err != nil {
			return BulkDeliverResult{}, err
		}
		if err = orderRepo.IncrementDelivered(ctx, o.ID(), it.Quantity); err != nil {
			return BulkDeliverResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return BulkDeliverResult{}, err
	}

	return result, nil
}

// loadItems resolves every assignment with its order, product and size.
func (h BulkDeliverCommandHandler) loadItems(
	ctx context.Context,
	uow DeliveryUoW,
	cmd BulkDeliverCommand,
) ([]services.DeliveryItem, map[kernel.UUID]*order.Order, error) {
	ids := cmd.AssignmentIDs()
	assignments, err := loadAssignments(ctx, uow.AssignmentRepository(), ids)
	if err != nil {
		return nil, nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(assignments))
	for _, id := range ids {
		orderIDs = append(orderIDs, assignments[id].OrderID())
	}
	found, err := uow.OrderRepository().GetMany(ctx, orderIDs)
	if err != nil {
		return nil, nil, err
	}
	orders := make(map[kernel.UUID]*order.Order, len(found))
	for _, o := range found {
		orders[o.ID()] = o
	}

	catalogRepo := uow.CatalogRepository()
	products := make(map[kernel.UUID]*catalog.Product)
	sizes := make(map[kernel.UUID]catalog.Size)

	items := make([]services.DeliveryItem, 0, len(cmd.lines))
	for _, line := range cmd.lines {
		a := assignments[line.assignmentID]
		o, ok := orders[a.OrderID()]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("orderId", a.OrderID())
		}

		p, ok := products[o.ProductID()]
		if !ok {
			if p, err = catalogRepo.GetProduct(ctx, o.ProductID()); err != nil {
				return nil, nil, err
			}
			products[o.ProductID()] = p
		}

		sizeName := ""
		if sid := o.SizeID(); sid != nil {
			s, ok := sizes[*sid]
			if !ok {
				if s, err = catalogRepo.GetSize(ctx, *sid); err != nil {
					return nil, nil, err
				}
				sizes[*sid] = s
			}
			sizeName = s.Name()
		}

		items = append(items, services.DeliveryItem{
			Assignment:  a,
			PO:          o.PO(),
			ProductName: p.Name(),
			Size:        sizeName,
			Quantity:    line.quantity,
			Notes:       line.notes,
		})
	}
	return items, orders, nil
}

// ship merges s into the document for its PO and day, creating it when the
// day has none yet.
func (h BulkDeliverCommandHandler) ship(
	ctx context.Context,
	repo ports.DeliveryRepository,
	s services.Shipment,
	day delivery.Day,
) (kernel.UUID, error) {
	doc, err := repo.FindByPODay(ctx, s.PO, day)
	isNew := false
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if doc, err = delivery.NewDelivery(kernel.NewUUID(), s.PO, day); err != nil {
			return kernel.UUID{}, err
		}
		isNew = true
	case err != nil:
		return kernel.UUID{}, err
	}

	if err = s.ApplyTo(doc); err != nil {
		return kernel.UUID{}, err
	}

	if isNew {
		err = repo.Add(ctx, doc)
	} else {
		err = repo.Update(ctx, doc)
	}
	if err != nil {
		return kernel.UUID{}, guardFailed("save delivery", err)
	}
	return doc.ID(), nil
}
