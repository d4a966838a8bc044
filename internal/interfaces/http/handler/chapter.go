package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/library"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/dto"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// ChapterHandler serves the chapter routes.
type ChapterHandler struct {
	chapters *library.ChapterService
}

func NewChapterHandler(chapters *library.ChapterService) *ChapterHandler {
	return &ChapterHandler{chapters: chapters}
}

// ListChapters returns a book's chapters in position order.
// @Summary List chapters of a book
// @Tags Chapters
// @Produce json
// @Param bid path string true "book id"
// @Success 200 {object} dto.Response[dto.ChapterListResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/books/{bid}/chapters [get]
func (h *ChapterHandler) ListChapters(c *gin.Context) {
	ctx := c.Request.Context()

	chapters, err := h.chapters.ListByBook(ctx, c.Param("bid"))
	if err != nil {
		logger.Error(ctx, "failed to list chapters", err)
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToChapterListResponse(chapters))
}

// CreateChapter appends a chapter to a book.
// @Summary Create a chapter
// @Tags Chapters
// @Accept json
// @Produce json
// @Param bid path string true "book id"
// @Param body body dto.CreateChapterRequest true "chapter"
// @Success 201 {object} dto.Response[dto.ChapterResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/books/{bid}/chapters [post]
func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	chapter, err := h.chapters.Create(ctx, c.Param("bid"), req.Title)
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Created(c, dto.ToChapterResponse(chapter))
}

// GetChapter returns one chapter.
// @Summary Get a chapter
// @Tags Chapters
// @Produce json
// @Param cid path string true "chapter id"
// @Success 200 {object} dto.Response[dto.ChapterResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/chapters/{cid} [get]
func (h *ChapterHandler) GetChapter(c *gin.Context) {
	ctx := c.Request.Context()

	chapter, err := h.chapters.Get(ctx, c.Param("cid"))
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToChapterResponse(chapter))
}

// DeleteChapter removes a chapter and its content units.
// @Summary Delete a chapter
// @Tags Chapters
// @Param cid path string true "chapter id"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/chapters/{cid} [delete]
func (h *ChapterHandler) DeleteChapter(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.chapters.Delete(ctx, c.Param("cid")); err != nil {
		dto.FromError(c, err)
		return
	}
	dto.NoContent(c)
}
