package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// StyleRepository is the PostgreSQL style registry store.
type StyleRepository struct {
	client *Client
}

// NewStyleRepository creates a style repository.
func NewStyleRepository(client *Client) *StyleRepository {
	return &StyleRepository{client: client}
}

// Create persists a style profile.
func (r *StyleRepository) Create(ctx context.Context, style *entity.StyleProfile) error {
	ctx, span := tracer.Start(ctx, "postgres.StyleRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(style).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create style: %w", err)
	}
	return nil
}

// GetByID fetches a style by id.
func (r *StyleRepository) GetByID(ctx context.Context, id string) (*entity.StyleProfile, error) {
	ctx, span := tracer.Start(ctx, "postgres.StyleRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var style entity.StyleProfile
	if err := db.First(&style, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get style: %w", err)
	}
	return &style, nil
}

// GetByName fetches a style by name.
func (r *StyleRepository) GetByName(ctx context.Context, name string) (*entity.StyleProfile, error) {
	ctx, span := tracer.Start(ctx, "postgres.StyleRepository.GetByName")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var style entity.StyleProfile
	if err := db.First(&style, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get style by name: %w", err)
	}
	return &style, nil
}

// List returns all styles, predefined first, then by name.
func (r *StyleRepository) List(ctx context.Context) ([]*entity.StyleProfile, error) {
	ctx, span := tracer.Start(ctx, "postgres.StyleRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var styles []*entity.StyleProfile
	if err := db.Order("predefined DESC, name ASC").Find(&styles).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list styles: %w", err)
	}
	return styles, nil
}

// Delete removes a style row.
func (r *StyleRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.StyleRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.StyleProfile{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete style: %w", err)
	}
	return nil
}
