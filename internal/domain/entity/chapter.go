package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chapter is an ordered subdivision of a book. Position is 1-based, assigned
// at creation and never renumbered, so deletions leave gaps.
type Chapter struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	BookID    string    `json:"book_id" gorm:"type:uuid;index;not null"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Position  int       `json:"position" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name.
func (Chapter) TableName() string {
	return "chapters"
}

// NewChapter creates a new chapter at the given position.
func NewChapter(bookID, title string, position int) *Chapter {
	now := time.Now()
	return &Chapter{
		ID:        uuid.NewString(),
		BookID:    bookID,
		Title:     title,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
