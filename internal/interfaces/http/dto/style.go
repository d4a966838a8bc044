package dto

import (
	"time"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// CreateStyleRequest is the payload of POST /v1/styles.
type CreateStyleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// StyleResponse is the wire form of a style profile.
type StyleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Predefined  bool      `json:"is_predefined"`
	CreatedAt   time.Time `json:"created_at"`
}

// StyleListResponse wraps a style collection.
type StyleListResponse struct {
	Styles []StyleResponse `json:"styles"`
	Total  int             `json:"total"`
}

func ToStyleResponse(style *entity.StyleProfile) StyleResponse {
	return StyleResponse{
		ID:          style.ID,
		Name:        style.Name,
		Description: style.Description,
		Predefined:  style.Predefined,
		CreatedAt:   style.CreatedAt,
	}
}

func ToStyleListResponse(styles []*entity.StyleProfile) StyleListResponse {
	out := make([]StyleResponse, 0, len(styles))
	for _, style := range styles {
		out = append(out, ToStyleResponse(style))
	}
	return StyleListResponse{Styles: out, Total: len(out)}
}
