package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/navigation"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/dto"
)

// SessionHandler exposes the navigation state machine over HTTP.
type SessionHandler struct {
	session *navigation.Session
}

func NewSessionHandler(session *navigation.Session) *SessionHandler {
	return &SessionHandler{session: session}
}

// GetSession returns the current navigation state.
// @Summary Get the navigation state
// @Tags Session
// @Produce json
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Router /v1/session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	dto.Success(c, dto.ToSessionResponse(h.session.Current()))
}

// SelectBook opens a book's chapter list, dropping any open chapter view.
// @Summary Select a book
// @Tags Session
// @Accept json
// @Produce json
// @Param body body dto.SelectBookRequest true "book selection"
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/session/select-book [post]
func (h *SessionHandler) SelectBook(c *gin.Context) {
	var req dto.SelectBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.session.SelectBook(c.Request.Context(), req.BookID)
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToSessionResponse(snap))
}

// Write opens a chapter in the editor.
// @Summary Open a chapter for writing
// @Tags Session
// @Accept json
// @Produce json
// @Param body body dto.OpenChapterRequest true "chapter selection"
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /v1/session/write [post]
func (h *SessionHandler) Write(c *gin.Context) {
	var req dto.OpenChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.session.Write(c.Request.Context(), req.ChapterID)
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToSessionResponse(snap))
}

// Read opens a chapter in the read-only view.
// @Summary Open a chapter for reading
// @Tags Session
// @Accept json
// @Produce json
// @Param body body dto.OpenChapterRequest true "chapter selection"
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /v1/session/read [post]
func (h *SessionHandler) Read(c *gin.Context) {
	var req dto.OpenChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.session.Read(c.Request.Context(), req.ChapterID)
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToSessionResponse(snap))
}

// Back steps one navigation level up.
// @Summary Navigate back
// @Tags Session
// @Produce json
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Failure 409 {object} dto.ErrorResponse
// @Router /v1/session/back [post]
func (h *SessionHandler) Back(c *gin.Context) {
	snap, err := h.session.Back(c.Request.Context())
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToSessionResponse(snap))
}

// Reset returns the session to the book list.
// @Summary Reset the navigation state
// @Tags Session
// @Produce json
// @Success 200 {object} dto.Response[dto.SessionResponse]
// @Router /v1/session [delete]
func (h *SessionHandler) Reset(c *gin.Context) {
	dto.Success(c, dto.ToSessionResponse(h.session.Reset()))
}
