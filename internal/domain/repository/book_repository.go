package repository

import (
	"context"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// BookRepository is the book store. GetByID returns (nil, nil) when the book
// does not exist; callers decide whether absence is an error.
type BookRepository interface {
	// Create persists a book.
	Create(ctx context.Context, book *entity.Book) error

	// GetByID fetches a book by id.
	GetByID(ctx context.Context, id string) (*entity.Book, error)

	// List returns all books in insertion order.
	List(ctx context.Context) ([]*entity.Book, error)

	// Delete removes the book row only; cascading is the service's job.
	Delete(ctx context.Context, id string) error

	// DetachStyle nulls the style reference on every book using styleID.
	DetachStyle(ctx context.Context, styleID string) error
}
