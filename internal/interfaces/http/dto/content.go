package dto

import (
	"time"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// ContentResponse is the wire form of a content unit.
type ContentResponse struct {
	ID            string    `json:"id"`
	ChapterID     string    `json:"chapter_id"`
	UserPrompt    string    `json:"user_prompt"`
	GeneratedText string    `json:"generated_text"`
	Summary       string    `json:"summary,omitempty"`
	Strictness    string    `json:"strictness"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContentListResponse wraps a content-unit collection.
type ContentListResponse struct {
	Contents []ContentResponse `json:"contents"`
	Total    int               `json:"total"`
}

func ToContentResponse(content *entity.ContentUnit) ContentResponse {
	return ContentResponse{
		ID:            content.ID,
		ChapterID:     content.ChapterID,
		UserPrompt:    content.UserPrompt,
		GeneratedText: content.GeneratedText,
		Summary:       content.Summary,
		Strictness:    string(content.Strictness),
		CreatedAt:     content.CreatedAt,
	}
}

func ToContentListResponse(contents []*entity.ContentUnit) ContentListResponse {
	out := make([]ContentResponse, 0, len(contents))
	for _, content := range contents {
		out = append(out, ToContentResponse(content))
	}
	return ContentListResponse{Contents: out, Total: len(out)}
}
