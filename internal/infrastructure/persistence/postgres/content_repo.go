package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// ContentRepository is the PostgreSQL content-unit store.
type ContentRepository struct {
	client *Client
}

// NewContentRepository creates a content repository.
func NewContentRepository(client *Client) *ContentRepository {
	return &ContentRepository{client: client}
}

// Create persists a content unit.
func (r *ContentRepository) Create(ctx context.Context, content *entity.ContentUnit) error {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(content).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// GetByID fetches a content unit by id.
func (r *ContentRepository) GetByID(ctx context.Context, id string) (*entity.ContentUnit, error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var content entity.ContentUnit
	if err := db.First(&content, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return &content, nil
}

// ListByChapter returns a chapter's content units in creation order. The id
// tiebreak keeps the order stable for units created in the same instant.
func (r *ContentRepository) ListByChapter(ctx context.Context, chapterID string) ([]*entity.ContentUnit, error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.ListByChapter")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var contents []*entity.ContentUnit
	if err := db.Where("chapter_id = ?", chapterID).
		Order("created_at ASC, id ASC").
		Find(&contents).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}
	return contents, nil
}

// Delete removes a content unit.
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.ContentUnit{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete content: %w", err)
	}
	return nil
}

// DeleteByChapter removes all content units of a chapter.
func (r *ContentRepository) DeleteByChapter(ctx context.Context, chapterID string) error {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.DeleteByChapter")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.ContentUnit{}, "chapter_id = ?", chapterID).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete contents of chapter: %w", err)
	}
	return nil
}

// DeleteByBook removes the content units of every chapter of a book.
func (r *ContentRepository) DeleteByBook(ctx context.Context, bookID string) error {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.DeleteByBook")
	defer span.End()

	db := getDB(ctx, r.client.db)
	subQuery := db.Model(&entity.Chapter{}).Select("id").Where("book_id = ?", bookID)
	if err := db.Delete(&entity.ContentUnit{}, "chapter_id IN (?)", subQuery).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete contents of book: %w", err)
	}
	return nil
}
