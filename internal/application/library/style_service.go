package library

import (
	"context"
	"strings"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/repository"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
)

// StyleService manages the style registry. Predefined styles are seeded at
// startup and protected from deletion.
type StyleService struct {
	styleRepo repository.StyleRepository
	bookRepo  repository.BookRepository
	tx        repository.Transactor
}

func NewStyleService(styleRepo repository.StyleRepository, bookRepo repository.BookRepository, tx repository.Transactor) *StyleService {
	return &StyleService{styleRepo: styleRepo, bookRepo: bookRepo, tx: tx}
}

// Create registers a user-defined style. Names are unique across the
// registry, predefined styles included.
func (s *StyleService) Create(ctx context.Context, name, description string) (*entity.StyleProfile, error) {
	ctx, span := tracer.Start(ctx, "library.StyleService.Create")
	defer span.End()

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, apperrors.ErrValidation.WithDetail("name must not be empty")
	}
	if description == "" {
		return nil, apperrors.ErrValidation.WithDetail("description must not be empty")
	}

	existing, err := s.styleRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrConflict.WithDetail("style name already in use: " + name)
	}

	style := entity.NewStyleProfile(name, description)
	if err := s.styleRepo.Create(ctx, style); err != nil {
		return nil, err
	}
	logger.Info(ctx, "style created", "style_id", style.ID, "name", style.Name)
	return style, nil
}

// Get returns a style by id.
func (s *StyleService) Get(ctx context.Context, id string) (*entity.StyleProfile, error) {
	ctx, span := tracer.Start(ctx, "library.StyleService.Get")
	defer span.End()

	style, err := s.styleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if style == nil {
		return nil, apperrors.ErrStyleNotFound
	}
	return style, nil
}

// List returns all styles, predefined first.
func (s *StyleService) List(ctx context.Context) ([]*entity.StyleProfile, error) {
	ctx, span := tracer.Start(ctx, "library.StyleService.List")
	defer span.End()
	return s.styleRepo.List(ctx)
}

// Delete removes a user-defined style. Books referencing it are detached in
// the same transaction so no dangling reference survives. Predefined styles
// cannot be deleted.
func (s *StyleService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "library.StyleService.Delete")
	defer span.End()

	style, err := s.styleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if style == nil {
		return apperrors.ErrStyleNotFound
	}
	if style.Predefined {
		return apperrors.ErrStylePredefined
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.bookRepo.DetachStyle(ctx, id); err != nil {
			return err
		}
		return s.styleRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "style deleted", "style_id", id, "name", style.Name)
	return nil
}

// Seed inserts every predefined style missing from the registry. Existing
// names are left untouched, so startup can call it unconditionally.
func (s *StyleService) Seed(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "library.StyleService.Seed")
	defer span.End()

	seeded := 0
	for _, style := range entity.PredefinedStyles() {
		existing, err := s.styleRepo.GetByName(ctx, style.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.styleRepo.Create(ctx, style); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		logger.Info(ctx, "seeded predefined styles", "count", seeded)
	}
	return nil
}
