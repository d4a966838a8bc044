package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/library"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/dto"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// ContentHandler serves the content-unit routes. Units are created through
// the generation endpoint only, so this handler exposes no create route.
type ContentHandler struct {
	contents *library.ContentService
}

func NewContentHandler(contents *library.ContentService) *ContentHandler {
	return &ContentHandler{contents: contents}
}

// ListContents returns a chapter's content units in creation order.
// @Summary List content units of a chapter
// @Tags Contents
// @Produce json
// @Param cid path string true "chapter id"
// @Success 200 {object} dto.Response[dto.ContentListResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/chapters/{cid}/contents [get]
func (h *ContentHandler) ListContents(c *gin.Context) {
	ctx := c.Request.Context()

	contents, err := h.contents.ListByChapter(ctx, c.Param("cid"))
	if err != nil {
		logger.Error(ctx, "failed to list contents", err)
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToContentListResponse(contents))
}

// GetContent returns one content unit.
// @Summary Get a content unit
// @Tags Contents
// @Produce json
// @Param coid path string true "content id"
// @Success 200 {object} dto.Response[dto.ContentResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/contents/{coid} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	ctx := c.Request.Context()

	content, err := h.contents.Get(ctx, c.Param("coid"))
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToContentResponse(content))
}

// DeleteContent removes one content unit. A repeated delete of the same id
// fails with 404.
// @Summary Delete a content unit
// @Tags Contents
// @Param coid path string true "content id"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/contents/{coid} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.contents.Delete(ctx, c.Param("coid")); err != nil {
		dto.FromError(c, err)
		return
	}
	dto.NoContent(c)
}
