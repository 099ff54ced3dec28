package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/dto"
)

// respondError maps a taxonomy kind to an HTTP status and writes the
// stable {error, kind} body. Storage detail never crosses the boundary.
func respondError(ctx echo.Context, err error) error {
	kind := domainerr.KindOf(err)

	return ctx.JSON(statusFor(kind), dto.ErrorResponse{
		Error: err.Error(),
		Kind:  string(kind),
	})
}

func statusFor(kind domainerr.Kind) int {
	switch kind {
	case domainerr.KindValidation, domainerr.KindDuplicate, domainerr.KindInvalidRequest:
		return http.StatusBadRequest
	case domainerr.KindInvalidCredentials, domainerr.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
