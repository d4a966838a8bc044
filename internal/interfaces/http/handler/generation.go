package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/story"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/dto"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// GenerationHandler serves the story generation routes.
type GenerationHandler struct {
	generator *story.Generator
}

func NewGenerationHandler(generator *story.Generator) *GenerationHandler {
	return &GenerationHandler{generator: generator}
}

// Generate produces and persists the next content unit of a chapter.
// @Summary Generate a content unit for a chapter
// @Tags Generation
// @Accept json
// @Produce json
// @Param cid path string true "chapter id"
// @Param body body dto.GenerateRequest true "generation input"
// @Success 201 {object} dto.Response[dto.ContentResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /v1/chapters/{cid}/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	unit, err := h.generator.Generate(ctx, story.GenerateRequest{
		ChapterID:  c.Param("cid"),
		UserPrompt: req.Prompt,
		Strictness: entity.Strictness(req.Strictness),
	})
	if err != nil {
		// A disconnected client is not a server failure, log and stop.
		if errors.Is(err, context.Canceled) {
			logger.Warn(ctx, "generation abandoned by client", "chapter_id", c.Param("cid"))
			c.Abort()
			return
		}
		logger.Error(ctx, "generation failed", err, "chapter_id", c.Param("cid"))
		dto.FromError(c, err)
		return
	}
	dto.Created(c, dto.ToContentResponse(unit))
}

// Preview produces text without persisting anything.
// @Summary Preview a generation
// @Tags Generation
// @Accept json
// @Produce json
// @Param body body dto.PreviewRequest true "preview input"
// @Success 200 {object} dto.Response[dto.PreviewResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /v1/generate/preview [post]
func (h *GenerationHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.generator.Preview(ctx, story.PreviewRequest{
		UserPrompt: req.Prompt,
		StyleID:    req.StyleID,
		Strictness: entity.Strictness(req.Strictness),
	})
	if err != nil {
		logger.Error(ctx, "preview generation failed", err)
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.PreviewResponse{
		GeneratedText: result.Text,
		Summary:       result.Summary,
	})
}
