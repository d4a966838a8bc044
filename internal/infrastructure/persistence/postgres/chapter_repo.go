package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// ChapterRepository is the PostgreSQL chapter store.
type ChapterRepository struct {
	client *Client
}

// NewChapterRepository creates a chapter repository.
func NewChapterRepository(client *Client) *ChapterRepository {
	return &ChapterRepository{client: client}
}

// Create persists a chapter.
func (r *ChapterRepository) Create(ctx context.Context, chapter *entity.Chapter) error {
	ctx, span := tracer.Start(ctx, "postgres.ChapterRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(chapter).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create chapter: %w", err)
	}
	return nil
}

// GetByID fetches a chapter by id.
func (r *ChapterRepository) GetByID(ctx context.Context, id string) (*entity.Chapter, error) {
	ctx, span := tracer.Start(ctx, "postgres.ChapterRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var chapter entity.Chapter
	if err := db.First(&chapter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}
	return &chapter, nil
}

// ListByBook returns a book's chapters ordered by position.
func (r *ChapterRepository) ListByBook(ctx context.Context, bookID string) ([]*entity.Chapter, error) {
	ctx, span := tracer.Start(ctx, "postgres.ChapterRepository.ListByBook")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var chapters []*entity.Chapter
	if err := db.Where("book_id = ?", bookID).
		Order("position ASC").
		Find(&chapters).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	return chapters, nil
}

// ListBefore returns chapters of a book with a lower position.
func (r *ChapterRepository) ListBefore(ctx context.Context, bookID string, position int) ([]*entity.Chapter, error) {
	ctx, span := tracer.Start(ctx, "postgres.ChapterRepository.ListBefore")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var chapters []*entity.Chapter
	if err := db.Where("book_id = ? AND position < ?", bookID, position).
		Order("position ASC").
		Find(&chapters).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list preceding chapters: %w", err)
	}
	return chapters, nil
}

// Delete removes a chapter row.
func (r *ChapterRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.ChapterRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Chapter{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	return nil
}

// DeleteByBook removes all chapters of a book.
func (r *ChapterRepository) DeleteByBook(ctx context.Context, bookID string) error {
	ctx, span := tracer.Start(ctx, "postgres.ChapterRepository.DeleteByBook")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Chapter{}, "book_id = ?", bookID).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete chapters of book: %w", err)
	}
	return nil
}

// NextPosition returns max(position)+1 for a book. Positions keep growing
// after deletions, so gaps persist.
func (r *ChapterRepository) NextPosition(ctx context.Context, bookID string) (int, error) {
	ctx, span := tracer.Start(ctx, "postgres.ChapterRepository.NextPosition")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var maxPos *int
	err := db.Model(&entity.Chapter{}).
		Where("book_id = ?", bookID).
		Select("MAX(position)").
		Scan(&maxPos).Error
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to get max position: %w", err)
	}

	if maxPos == nil {
		return 1, nil
	}
	return *maxPos + 1, nil
}
