package dto

import (
	"time"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// CreateChapterRequest is the payload of POST /v1/books/:bid/chapters.
type CreateChapterRequest struct {
	Title string `json:"title" binding:"required"`
}

// ChapterResponse is the wire form of a chapter.
type ChapterResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChapterListResponse wraps a chapter collection.
type ChapterListResponse struct {
	Chapters []ChapterResponse `json:"chapters"`
	Total    int               `json:"total"`
}

func ToChapterResponse(chapter *entity.Chapter) ChapterResponse {
	return ChapterResponse{
		ID:        chapter.ID,
		BookID:    chapter.BookID,
		Title:     chapter.Title,
		Position:  chapter.Position,
		CreatedAt: chapter.CreatedAt,
		UpdatedAt: chapter.UpdatedAt,
	}
}

func ToChapterListResponse(chapters []*entity.Chapter) ChapterListResponse {
	out := make([]ChapterResponse, 0, len(chapters))
	for _, chapter := range chapters {
		out = append(out, ToChapterResponse(chapter))
	}
	return ChapterListResponse{Chapters: out, Total: len(out)}
}
