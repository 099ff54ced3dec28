package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediavault/internal/application/usecase/abstraction"
	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/dto"
)

type AnalyzeHandler struct {
	analyzer abstraction.Analyzer
}

func NewAnalyzeHandler(analyzer abstraction.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

func (h *AnalyzeHandler) Handle(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, domainerr.New(domainerr.KindValidation, "invalid request body"))
	}

	result, err := h.analyzer.Analyze(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
