package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediavault/internal/application/usecase/abstraction"
	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/dto"
)

type AuthHandler struct {
	registrar     abstraction.Registrar
	authenticator abstraction.Authenticator
}

func NewAuthHandler(registrar abstraction.Registrar, authenticator abstraction.Authenticator) *AuthHandler {
	return &AuthHandler{
		registrar:     registrar,
		authenticator: authenticator,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domainerr.New(domainerr.KindValidation, "invalid request body"))
	}

	if err := h.registrar.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user successfully created"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domainerr.New(domainerr.KindValidation, "invalid request body"))
	}

	session, err := h.authenticator.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	})
}
