// Package entity defines the domain entities.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is a top-level authored work. StyleID is a weak reference into the
// style registry; a book without a style generates with the backend default.
type Book struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	StyleID     *string   `json:"style_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Style is resolved at read time, never persisted from here.
	Style *StyleProfile `json:"style,omitempty" gorm:"-"`
}

// TableName sets the table name.
func (Book) TableName() string {
	return "books"
}

// NewBook creates a new book.
func NewBook(title, description string, styleID *string) *Book {
	now := time.Now()
	return &Book{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		StyleID:     styleID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
