package library

import (
	"context"
	"strings"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/repository"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// ChapterService manages chapters within a book.
type ChapterService struct {
	bookRepo    repository.BookRepository
	chapterRepo repository.ChapterRepository
	contentRepo repository.ContentRepository
	tx          repository.Transactor
}

func NewChapterService(
	bookRepo repository.BookRepository,
	chapterRepo repository.ChapterRepository,
	contentRepo repository.ContentRepository,
	tx repository.Transactor,
) *ChapterService {
	return &ChapterService{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		contentRepo: contentRepo,
		tx:          tx,
	}
}

// Create appends a chapter to a book. The position is one past the highest
// ever used in the book, so deleted positions are never reassigned.
func (s *ChapterService) Create(ctx context.Context, bookID, title string) (*entity.Chapter, error) {
	ctx, span := tracer.Start(ctx, "library.ChapterService.Create")
	defer span.End()

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.ErrValidation.WithDetail("title must not be empty")
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrBookNotFound
	}

	var chapter *entity.Chapter
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		position, err := s.chapterRepo.NextPosition(ctx, bookID)
		if err != nil {
			return err
		}
		chapter = entity.NewChapter(bookID, title, position)
		return s.chapterRepo.Create(ctx, chapter)
	})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "chapter created", "chapter_id", chapter.ID, "book_id", bookID, "position", chapter.Position)
	return chapter, nil
}

// Get returns a chapter by id.
func (s *ChapterService) Get(ctx context.Context, id string) (*entity.Chapter, error) {
	ctx, span := tracer.Start(ctx, "library.ChapterService.Get")
	defer span.End()

	chapter, err := s.chapterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, apperrors.ErrChapterNotFound
	}
	return chapter, nil
}

// ListByBook returns a book's chapters in position order. Listing against a
// missing book is an error, never an empty list.
func (s *ChapterService) ListByBook(ctx context.Context, bookID string) ([]*entity.Chapter, error) {
	ctx, span := tracer.Start(ctx, "library.ChapterService.ListByBook")
	defer span.End()

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrBookNotFound
	}
	return s.chapterRepo.ListByBook(ctx, bookID)
}

// Delete removes a chapter and its content units in one transaction.
func (s *ChapterService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "library.ChapterService.Delete")
	defer span.End()

	chapter, err := s.chapterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if chapter == nil {
		return apperrors.ErrChapterNotFound
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.contentRepo.DeleteByChapter(ctx, id); err != nil {
			return err
		}
		return s.chapterRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "chapter deleted", "chapter_id", id, "book_id", chapter.BookID)
	return nil
}
