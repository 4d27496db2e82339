package http

import (
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"
	"embroidery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const headerIdempotencyKey = "Idempotency-Key"

func (s *Server) previewPayment(c echo.Context) error {
	workerID, err := requiredID(c, "userId")
	if err != nil {
		return err
	}
	return s.preview(c, workerID)
}

// listWorkerPaymentsPreview shows the signed-in worker what is payable.
func (s *Server) listWorkerPaymentsPreview(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	return s.preview(c, identity.AccountID)
}

func (s *Server) preview(c echo.Context, workerID kernel.UUID) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return err
	}
	q, err := queries.NewPreviewPaymentQuery(workerID, page, limit)
	if err != nil {
		return err
	}
	res, err := s.h.PreviewPayment.Handle(requestContext(c), q)
	if err != nil {
		return err
	}
	return ok(c, res)
}

func (s *Server) savePayment(c echo.Context) error {
	var req SavePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSavePaymentCommand(
		req.Username,
		req.GrandTotal,
		req.Note,
		req.Products,
		req.ReturnIDs,
		c.Request().Header.Get(headerIdempotencyKey),
	)
	if err != nil {
		return err
	}
	id, err := s.h.SavePayment.Handle(requestContext(c), cmd)
	s.count("save_payment", err)
	if err != nil {
		return err
	}
	return created(c, "payment saved", map[string]any{"id": id})
}

func (s *Server) paymentStats(c echo.Context) error {
	var year, month int
	if err := queryParam(c, "year", &year); err != nil {
		return err
	}
	if err := queryParam(c, "month", &month); err != nil {
		return err
	}
	if year == 0 {
		year = s.opts.Clock().Year()
	}
	q, err := queries.NewPaymentStatsQuery(year, month)
	if err != nil {
		return err
	}
	res, err := s.h.PaymentStats.Handle(requestContext(c), q)
	if err != nil {
		return err
	}
	return ok(c, res)
}
