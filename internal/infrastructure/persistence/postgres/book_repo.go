package postgres

import (
	"errors"
	"fmt"

	"context"

	"gorm.io/gorm"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// BookRepository is the PostgreSQL book store.
type BookRepository struct {
	client *Client
}

// NewBookRepository creates a book repository.
func NewBookRepository(client *Client) *BookRepository {
	return &BookRepository{client: client}
}

// Create persists a book.
func (r *BookRepository) Create(ctx context.Context, book *entity.Book) error {
	ctx, span := tracer.Start(ctx, "postgres.BookRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(book).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// GetByID fetches a book by id.
func (r *BookRepository) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	ctx, span := tracer.Start(ctx, "postgres.BookRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var book entity.Book
	if err := db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

// List returns all books in insertion order.
func (r *BookRepository) List(ctx context.Context) ([]*entity.Book, error) {
	ctx, span := tracer.Start(ctx, "postgres.BookRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var books []*entity.Book
	if err := db.Order("created_at ASC, id ASC").Find(&books).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// Delete removes a book row.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.BookRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Book{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

// DetachStyle nulls the style reference on every book using styleID.
func (r *BookRepository) DetachStyle(ctx context.Context, styleID string) error {
	ctx, span := tracer.Start(ctx, "postgres.BookRepository.DetachStyle")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Book{}).
		Where("style_id = ?", styleID).
		Update("style_id", nil).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to detach style from books: %w", err)
	}
	return nil
}
