package repository

import (
	"context"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// ContentRepository is the content-unit store. There is no update operation:
// units are immutable once generated.
type ContentRepository interface {
	// Create persists a content unit.
	Create(ctx context.Context, content *entity.ContentUnit) error

	// GetByID fetches a content unit by id; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*entity.ContentUnit, error)

	// ListByChapter returns a chapter's content units in creation order,
	// oldest first.
	ListByChapter(ctx context.Context, chapterID string) ([]*entity.ContentUnit, error)

	// Delete removes a content unit.
	Delete(ctx context.Context, id string) error

	// DeleteByChapter removes all content units of a chapter.
	DeleteByChapter(ctx context.Context, chapterID string) error

	// DeleteByBook removes all content units of every chapter of a book.
	DeleteByBook(ctx context.Context, bookID string) error
}
