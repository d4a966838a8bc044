package library

import (
	"context"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/repository"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// ContentService reads and deletes content units. Creation happens through
// the story generator only; units are never edited in place.
type ContentService struct {
	chapterRepo repository.ChapterRepository
	contentRepo repository.ContentRepository
}

func NewContentService(chapterRepo repository.ChapterRepository, contentRepo repository.ContentRepository) *ContentService {
	return &ContentService{chapterRepo: chapterRepo, contentRepo: contentRepo}
}

// Get returns a content unit by id.
func (s *ContentService) Get(ctx context.Context, id string) (*entity.ContentUnit, error) {
	ctx, span := tracer.Start(ctx, "library.ContentService.Get")
	defer span.End()

	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, apperrors.ErrContentNotFound
	}
	return content, nil
}

// ListByChapter returns a chapter's content units in creation order. Listing
// against a missing chapter is an error, never an empty list.
func (s *ContentService) ListByChapter(ctx context.Context, chapterID string) ([]*entity.ContentUnit, error) {
	ctx, span := tracer.Start(ctx, "library.ContentService.ListByChapter")
	defer span.End()

	chapter, err := s.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, apperrors.ErrChapterNotFound
	}
	return s.contentRepo.ListByChapter(ctx, chapterID)
}

// Delete removes a single content unit.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "library.ContentService.Delete")
	defer span.End()

	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if content == nil {
		return apperrors.ErrContentNotFound
	}
	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "content unit deleted", "content_id", id, "chapter_id", content.ChapterID)
	return nil
}
