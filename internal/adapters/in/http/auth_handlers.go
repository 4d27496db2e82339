package http

import (
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func bindAndValidate(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return err
	}
	return c.Validate(dest)
}

func (s *Server) login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewLoginCommand(req.Identifier, req.Password, c.Request().Header.Get(echo.HeaderOrigin))
	if err != nil {
		return err
	}
	res, err := s.h.Login.Handle(requestContext(c), cmd)
	if err != nil {
		return err
	}
	return done(c, "login successful", LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      accountView(res.Account),
	})
}

func (s *Server) logout(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	if err = s.h.Logout.Handle(requestContext(c), identity); err != nil {
		return err
	}
	return done(c, "logged out", nil)
}

func (s *Server) register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewRegisterCommand(req.Username, req.Email, req.Password, req.Fullname, req.Phone)
	if err != nil {
		return err
	}
	acc, err := s.h.Register.Handle(requestContext(c), cmd)
	if err != nil {
		return err
	}
	return created(c, "account registered", accountView(acc))
}

func (s *Server) forgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewForgotPasswordCommand(req.Email, s.opts.Clock())
	if err != nil {
		return err
	}
	if err = s.h.ForgotPassword.Handle(requestContext(c), cmd); err != nil {
		return err
	}
	return done(c, "reset link sent", nil)
}

func (s *Server) resetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewResetPasswordCommand(req.Token, req.Password, s.opts.Clock())
	if err != nil {
		return err
	}
	if err = s.h.ResetPassword.Handle(requestContext(c), cmd); err != nil {
		return err
	}
	return done(c, "password has been reset", nil)
}

func (s *Server) changePassword(c echo.Context) error {
	identity, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var req ChangePasswordRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewChangePasswordCommand(identity.AccountID, req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if err = s.h.ChangePassword.Handle(requestContext(c), cmd); err != nil {
		return err
	}
	return done(c, "password changed", nil)
}

func (s *Server) listWorkers(c echo.Context) error {
	workers, err := s.h.ListWorkers.Handle(requestContext(c), queries.NewListWorkersQuery())
	if err != nil {
		return err
	}
	if workers == nil {
		workers = []queries.ListWorkersQueryResponse{}
	}
	return ok(c, workers)
}
