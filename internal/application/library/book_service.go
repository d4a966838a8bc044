// Package library implements the catalogue services: books, chapters,
// content units and the style registry.
package library

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/repository"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("library")

// BookService manages books and their style references.
type BookService struct {
	bookRepo    repository.BookRepository
	chapterRepo repository.ChapterRepository
	contentRepo repository.ContentRepository
	styleRepo   repository.StyleRepository
	tx          repository.Transactor
}

func NewBookService(
	bookRepo repository.BookRepository,
	chapterRepo repository.ChapterRepository,
	contentRepo repository.ContentRepository,
	styleRepo repository.StyleRepository,
	tx repository.Transactor,
) *BookService {
	return &BookService{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		contentRepo: contentRepo,
		styleRepo:   styleRepo,
		tx:          tx,
	}
}

// Create validates and persists a new book. A style reference, when given,
// must point at an existing style.
func (s *BookService) Create(ctx context.Context, title, description string, styleID *string) (*entity.Book, error) {
	ctx, span := tracer.Start(ctx, "library.BookService.Create")
	defer span.End()

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.ErrValidation.WithDetail("title must not be empty")
	}

	var style *entity.StyleProfile
	if styleID != nil && *styleID != "" {
		var err error
		style, err = s.styleRepo.GetByID(ctx, *styleID)
		if err != nil {
			return nil, err
		}
		if style == nil {
			return nil, apperrors.ErrInvalidReference.WithDetail("style not found: " + *styleID)
		}
	} else {
		styleID = nil
	}

	book := entity.NewBook(title, strings.TrimSpace(description), styleID)
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	book.Style = style
	logger.Info(ctx, "book created", "book_id", book.ID, "title", book.Title)
	return book, nil
}

// Get returns a book with its style resolved.
func (s *BookService) Get(ctx context.Context, id string) (*entity.Book, error) {
	ctx, span := tracer.Start(ctx, "library.BookService.Get")
	defer span.End()

	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrBookNotFound
	}
	if book.StyleID != nil {
		style, err := s.styleRepo.GetByID(ctx, *book.StyleID)
		if err != nil {
			return nil, err
		}
		book.Style = style
	}
	return book, nil
}

// List returns all books, each with its style resolved. Books and styles are
// loaded concurrently and joined in memory.
func (s *BookService) List(ctx context.Context) ([]*entity.Book, error) {
	ctx, span := tracer.Start(ctx, "library.BookService.List")
	defer span.End()

	var (
		books  []*entity.Book
		styles []*entity.StyleProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = s.bookRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		styles, err = s.styleRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.StyleProfile, len(styles))
	for _, style := range styles {
		byID[style.ID] = style
	}
	for _, book := range books {
		if book.StyleID != nil {
			book.Style = byID[*book.StyleID]
		}
	}
	return books, nil
}

// Delete removes a book and everything under it. Content units go first,
// then chapters, then the book itself, all in one transaction.
func (s *BookService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "library.BookService.Delete")
	defer span.End()

	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book == nil {
		return apperrors.ErrBookNotFound
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.contentRepo.DeleteByBook(ctx, id); err != nil {
			return err
		}
		if err := s.chapterRepo.DeleteByBook(ctx, id); err != nil {
			return err
		}
		return s.bookRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "book deleted", "book_id", id)
	return nil
}
