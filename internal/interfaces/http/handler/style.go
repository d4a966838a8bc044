package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/library"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/dto"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// StyleHandler serves the /v1/styles routes.
type StyleHandler struct {
	styles *library.StyleService
}

func NewStyleHandler(styles *library.StyleService) *StyleHandler {
	return &StyleHandler{styles: styles}
}

// ListStyles returns every style, predefined first.
// @Summary List styles
// @Tags Styles
// @Produce json
// @Success 200 {object} dto.Response[dto.StyleListResponse]
// @Router /v1/styles [get]
func (h *StyleHandler) ListStyles(c *gin.Context) {
	ctx := c.Request.Context()

	styles, err := h.styles.List(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list styles", err)
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToStyleListResponse(styles))
}

// CreateStyle registers a user-defined style.
// @Summary Create a style
// @Tags Styles
// @Accept json
// @Produce json
// @Param body body dto.CreateStyleRequest true "style"
// @Success 201 {object} dto.Response[dto.StyleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /v1/styles [post]
func (h *StyleHandler) CreateStyle(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	style, err := h.styles.Create(ctx, req.Name, req.Description)
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Created(c, dto.ToStyleResponse(style))
}

// GetStyle returns one style.
// @Summary Get a style
// @Tags Styles
// @Produce json
// @Param sid path string true "style id"
// @Success 200 {object} dto.Response[dto.StyleResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/styles/{sid} [get]
func (h *StyleHandler) GetStyle(c *gin.Context) {
	ctx := c.Request.Context()

	style, err := h.styles.Get(ctx, c.Param("sid"))
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToStyleResponse(style))
}

// DeleteStyle removes a user-defined style, detaching any referencing book.
// @Summary Delete a style
// @Tags Styles
// @Param sid path string true "style id"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/styles/{sid} [delete]
func (h *StyleHandler) DeleteStyle(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.styles.Delete(ctx, c.Param("sid")); err != nil {
		dto.FromError(c, err)
		return
	}
	dto.NoContent(c)
}
