package http

import (
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type returnsBatch struct {
	Items []ReturnItemRequest `json:"items" validate:"required,min=1,dive"`
}

type returnEditsBatch struct {
	Items []ReturnQuantityRequest `json:"items" validate:"required,min=1,dive"`
}

func (s *Server) submitReturns(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var req []ReturnItemRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(returnsBatch{Items: req}); err != nil {
		return err
	}

	items := make([]commands.ReturnItem, 0, len(req))
	for _, it := range req {
		items = append(items, commands.ReturnItem{AssignmentID: it.AssignmentID, Quantity: it.Quantity, Note: it.Note})
	}
	cmd, err := commands.NewSubmitReturnsCommand(identity, items)
	if err != nil {
		return err
	}
	ids, err := s.h.SubmitReturns.Handle(requestContext(c), cmd)
	s.count("submit_returns", err)
	if err != nil {
		return err
	}
	return created(c, "returns submitted", map[string]any{"ids": nonNil(ids)})
}

func (s *Server) editReturns(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var req []ReturnQuantityRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(returnEditsBatch{Items: req}); err != nil {
		return err
	}

	items := make([]commands.ReturnQuantity, 0, len(req))
	for _, it := range req {
		items = append(items, commands.ReturnQuantity{ReturnID: it.ReturnID, Quantity: it.Quantity})
	}
	cmd, err := commands.NewEditReturnsCommand(identity, items)
	if err != nil {
		return err
	}
	res, err := s.h.EditReturns.Handle(requestContext(c), cmd)
	s.count("edit_returns", err)
	if err != nil {
		return err
	}
	return done(c, "returns updated", res)
}

func (s *Server) deleteReturn(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteReturnCommand(identity, c.Param("id"))
	if err != nil {
		return err
	}
	err = s.h.DeleteReturn.Handle(requestContext(c), cmd)
	s.count("delete_return", err)
	if err != nil {
		return err
	}
	return done(c, "return deleted", nil)
}

func (s *Server) confirmReturns(c echo.Context) error {
	var req ConfirmReturnsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	items := make([]commands.ReturnQuantity, 0, len(req.IDs))
	for _, it := range req.IDs {
		items = append(items, commands.ReturnQuantity{ReturnID: it.ID, Quantity: it.Quantity})
	}
	cmd, err := commands.NewConfirmReturnsCommand(items)
	if err != nil {
		return err
	}
	res, err := s.h.ConfirmReturns.Handle(requestContext(c), cmd)
	s.count("confirm_returns", err)
	if err != nil {
		return err
	}
	return done(c, "returns confirmed", res)
}

func (s *Server) listUnconfirmedReturns(c echo.Context) error {
	workerID, err := optionalID(c, "userId")
	if err != nil {
		return err
	}
	groups, err := s.h.ListUnconfirmedReturns.Handle(requestContext(c), queries.NewListUnconfirmedReturnsQuery(workerID))
	if err != nil {
		return err
	}
	return ok(c, nonNil(groups))
}

func (s *Server) listWorkerUnconfirmedReturns(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	q, err := queries.NewListWorkerUnconfirmedReturnsQuery(identity.AccountID, page, limit)
	if err != nil {
		return err
	}
	res, err := s.h.ListWorkerUnconfirmedReturns.Handle(requestContext(c), q)
	if err != nil {
		return err
	}
	return paged(c, res.Items, res.Pagination)
}

func (s *Server) listShortage(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	q, err := queries.NewListShortageQuery(identity.AccountID, page, limit)
	if err != nil {
		return err
	}
	res, err := s.h.ListShortage.Handle(requestContext(c), q)
	if err != nil {
		return err
	}
	return paged(c, res.Items, res.Pagination)
}
