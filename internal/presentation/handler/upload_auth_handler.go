package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediavault/internal/application/usecase/abstraction"
	"mediavault/internal/domain/dto"
	"mediavault/pkg/logger"
)

type UploadAuthHandler struct {
	issuer abstraction.Issuer
}

func NewUploadAuthHandler(issuer abstraction.Issuer) *UploadAuthHandler {
	return &UploadAuthHandler{issuer: issuer}
}

// Handle mints one signed upload authorization. Only the signature,
// expiry, token and public key go to the client.
func (h *UploadAuthHandler) Handle(c echo.Context) error {
	auth, err := h.issuer.Issue()
	if err != nil {
		logger.Error("upload authorization failed", "err", err)

		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UploadAuthResponse{
		AuthParams: dto.AuthParams{
			Signature: auth.Signature,
			Expire:    auth.Expire,
			Token:     auth.Token,
		},
		PublicKey: auth.PublicKey,
	})
}
