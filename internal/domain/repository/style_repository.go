package repository

import (
	"context"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
)

// StyleRepository is the style registry store.
type StyleRepository interface {
	// Create persists a style profile.
	Create(ctx context.Context, style *entity.StyleProfile) error

	// GetByID fetches a style by id; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*entity.StyleProfile, error)

	// GetByName fetches a style by name; (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*entity.StyleProfile, error)

	// List returns all styles, predefined first, then by name.
	List(ctx context.Context) ([]*entity.StyleProfile, error)

	// Delete removes a style. The predefined check belongs to the service.
	Delete(ctx context.Context, id string) error
}
