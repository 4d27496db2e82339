package http

import (
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type ordersBatch struct {
	Items OrdersRequest `json:"items" validate:"required,min=1,dive"`
}

func (s *Server) createOrders(c echo.Context) error {
	var req OrdersRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(ordersBatch{Items: req}); err != nil {
		return err
	}

	items := make([]commands.OrderItem, 0, len(req))
	for _, o := range req {
		items = append(items, commands.OrderItem{
			PO:       o.PO,
			ProdCode: o.ProdCode,
			Size:     o.Size,
			Quantity: o.Quantity,
			Deadline: o.Deadline,
			Note:     o.Note,
		})
	}
	cmd, err := commands.NewCreateOrdersCommand(items)
	if err != nil {
		return err
	}
	res, err := s.h.CreateOrders.Handle(requestContext(c), cmd)
	s.count("create_orders", err)
	if err != nil {
		return err
	}
	return created(c, "orders created", res)
}

func (s *Server) listUnassignedOrders(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	po, err := queryString(c, "po")
	if err != nil {
		return err
	}
	search, err := queryString(c, "search")
	if err != nil {
		return err
	}
	res, err := s.h.ListUnassignedOrders.Handle(requestContext(c),
		queries.NewListUnassignedOrdersQuery(po, search, page, limit))
	if err != nil {
		return err
	}
	return paged(c, res.Items, res.Pagination)
}

func (s *Server) bulkAssign(c echo.Context) error {
	var req BulkAssignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	items := make([]commands.AssignItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, commands.AssignItem{OrderID: it.OrderID, Quantity: it.Quantity})
	}
	cmd, err := commands.NewBulkAssignCommand(req.WorkerID, items)
	if err != nil {
		return err
	}
	ctx := requestContext(c)
	res, err := s.h.BulkAssign.Handle(ctx, cmd)
	s.count("bulk_assign", err)
	if err != nil {
		return err
	}
	if itemErr := res.Err(); itemErr != nil {
		s.log.Warn(s.log.WithField(ctx, "error", itemErr.Error()), "bulk assign partially failed")
		return created(c, "some assignments failed", res)
	}
	return created(c, "assignments saved", res)
}

func (s *Server) listAvailableForDelivery(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	search, err := queryString(c, "search")
	if err != nil {
		return err
	}
	res, err := s.h.ListAvailableForDelivery.Handle(requestContext(c),
		queries.NewListAvailableForDeliveryQuery(search, page, limit))
	if err != nil {
		return err
	}
	return paged(c, res.Items, res.Pagination)
}

func (s *Server) listPendingAssignments(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	workerID, err := optionalID(c, "userId")
	if err != nil {
		return err
	}
	po, err := queryString(c, "po")
	if err != nil {
		return err
	}
	search, err := queryString(c, "search")
	if err != nil {
		return err
	}
	res, err := s.h.ListPendingAssignments.Handle(requestContext(c),
		queries.NewListPendingAssignmentsQuery(workerID, po, search, page, limit))
	if err != nil {
		return err
	}
	return paged(c, res.Items, res.Pagination)
}
