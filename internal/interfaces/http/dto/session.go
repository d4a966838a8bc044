package dto

import "github.com/evausesgit/les-histoires-de-rebecca/internal/application/navigation"

// SelectBookRequest is the payload of POST /v1/session/select-book.
type SelectBookRequest struct {
	BookID string `json:"book_id" binding:"required"`
}

// OpenChapterRequest is the payload of the write and read session events.
type OpenChapterRequest struct {
	ChapterID string `json:"chapter_id" binding:"required"`
}

// SessionResponse is the wire form of the navigation state.
type SessionResponse struct {
	State     string `json:"state"`
	BookID    string `json:"book_id,omitempty"`
	ChapterID string `json:"chapter_id,omitempty"`
}

func ToSessionResponse(snap navigation.Snapshot) SessionResponse {
	return SessionResponse{
		State:     string(snap.State),
		BookID:    snap.BookID,
		ChapterID: snap.ChapterID,
	}
}
