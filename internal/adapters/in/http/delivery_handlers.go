package http

import (
	"bytes"
	"fmt"
	"net/http"

	"embroidery/internal/adapters/out/spreadsheet"
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func (s *Server) bulkDeliver(c echo.Context) error {
	var req BulkDeliverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	items := make([]commands.DeliverItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, commands.DeliverItem{AssignmentID: it.ID, Quantity: it.Quantity, Note: it.Note})
	}
	cmd, err := commands.NewBulkDeliverCommand(items, s.opts.Clock())
	if err != nil {
		return err
	}
	res, err := s.h.BulkDeliver.Handle(requestContext(c), cmd)
	s.count("bulk_deliver", err)
	if err != nil {
		return err
	}
	return created(c, "delivery recorded", res)
}

func (s *Server) listDeliveries(c echo.Context) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	po, err := queryString(c, "po")
	if err != nil {
		return err
	}
	res, err := s.h.ListDeliveries.Handle(requestContext(c), queries.NewListDeliveriesQuery(po, page, limit))
	if err != nil {
		return err
	}
	return paged(c, res.Items, res.Pagination)
}

func (s *Server) exportDelivery(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	q, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}
	view, err := s.h.GetDelivery.Handle(requestContext(c), q)
	if err != nil {
		return err
	}

	note := deliveryNote(view)
	var buf bytes.Buffer
	if err = spreadsheet.WriteDeliveryNote(&buf, note); err != nil {
		return fmt.Errorf("render delivery note: %w", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", note.FileName()))
	return c.Blob(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}

func deliveryNote(v queries.DeliveryView) spreadsheet.DeliveryNote {
	lines := make([]spreadsheet.NoteLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, spreadsheet.NoteLine{ProductName: l.ProductName, Size: l.Size, Quantity: l.Quantity})
	}
	return spreadsheet.DeliveryNote{
		PO:            v.PO,
		Day:           v.Day,
		Lines:         lines,
		TotalQuantity: v.TotalQuantity,
		Note:          v.Note,
	}
}
