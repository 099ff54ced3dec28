package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediavault/internal/application/usecase/abstraction"
	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/dto"
	"mediavault/internal/presentation/middleware"
)

type MediaHandler struct {
	creator abstraction.MediaCreator
	lister  abstraction.MediaLister
}

func NewMediaHandler(creator abstraction.MediaCreator, lister abstraction.MediaLister) *MediaHandler {
	return &MediaHandler{
		creator: creator,
		lister:  lister,
	}
}

// List is public by policy: anyone may browse, newest first, and an
// empty store answers 200 with an empty array.
func (h *MediaHandler) List(c echo.Context) error {
	media, err := h.lister.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) Create(c echo.Context) error {
	var req dto.CreateMediaRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domainerr.New(domainerr.KindValidation, "invalid request body"))
	}

	creator, _ := c.Get(middleware.EmailKey).(string)

	media, err := h.creator.Create(c.Request().Context(), req, creator)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, media)
}
