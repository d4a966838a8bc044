package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/application/library"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/interfaces/http/dto"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// BookHandler serves the /v1/books routes.
type BookHandler struct {
	books *library.BookService
}

func NewBookHandler(books *library.BookService) *BookHandler {
	return &BookHandler{books: books}
}

// ListBooks returns every book with its resolved style.
// @Summary List books
// @Tags Books
// @Produce json
// @Success 200 {object} dto.Response[dto.BookListResponse]
// @Router /v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()

	books, err := h.books.List(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list books", err)
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToBookListResponse(books))
}

// CreateBook creates a book.
// @Summary Create a book
// @Tags Books
// @Accept json
// @Produce json
// @Param body body dto.CreateBookRequest true "book"
// @Success 201 {object} dto.Response[dto.BookResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	book, err := h.books.Create(ctx, req.Title, req.Description, req.StyleID)
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Created(c, dto.ToBookResponse(book))
}

// GetBook returns one book.
// @Summary Get a book
// @Tags Books
// @Produce json
// @Param bid path string true "book id"
// @Success 200 {object} dto.Response[dto.BookResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/books/{bid} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	ctx := c.Request.Context()

	book, err := h.books.Get(ctx, c.Param("bid"))
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ToBookResponse(book))
}

// DeleteBook removes a book with its chapters and content units.
// @Summary Delete a book
// @Tags Books
// @Param bid path string true "book id"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/books/{bid} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.books.Delete(ctx, c.Param("bid")); err != nil {
		dto.FromError(c, err)
		return
	}
	dto.NoContent(c)
}
