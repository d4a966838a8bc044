package dto

import (
	"time"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// CreateBookRequest is the payload of POST /v1/books.
type CreateBookRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	StyleID     *string `json:"style_id"`
}

// BookResponse is the wire form of a book.
type BookResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	StyleID     *string        `json:"style_id,omitempty"`
	Style       *StyleResponse `json:"style,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BookListResponse wraps a book collection.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Total int            `json:"total"`
}

func ToBookResponse(book *entity.Book) BookResponse {
	resp := BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Description: book.Description,
		StyleID:     book.StyleID,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
	if book.Style != nil {
		style := ToStyleResponse(book.Style)
		resp.Style = &style
	}
	return resp
}

func ToBookListResponse(books []*entity.Book) BookListResponse {
	out := make([]BookResponse, 0, len(books))
	for _, book := range books {
		out = append(out, ToBookResponse(book))
	}
	return BookListResponse{Books: out, Total: len(out)}
}
