package repository

import (
	"context"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// ChapterRepository is the chapter store.
type ChapterRepository interface {
	// Create persists a chapter.
	Create(ctx context.Context, chapter *entity.Chapter) error

	// GetByID fetches a chapter by id; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*entity.Chapter, error)

	// ListByBook returns a book's chapters ordered by position.
	ListByBook(ctx context.Context, bookID string) ([]*entity.Chapter, error)

	// ListBefore returns the chapters of a book with position below the
	// given one, ordered by position. Used to assemble generation context.
	ListBefore(ctx context.Context, bookID string, position int) ([]*entity.Chapter, error)

	// Delete removes the chapter row only.
	Delete(ctx context.Context, id string) error

	// DeleteByBook removes all chapters of a book.
	DeleteByBook(ctx context.Context, bookID string) error

	// NextPosition returns max(position)+1 for a book, 1 when empty.
	// Positions are never reused after deletion.
	NextPosition(ctx context.Context, bookID string) (int, error)
}
