package entity

import (
	"time"

	"github.com/google/uuid"
)

// StyleProfile is a named writing-style descriptor consumed by the generation
// gateway. Predefined profiles are seeded at startup and cannot be deleted.
type StyleProfile struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Predefined  bool      `json:"is_predefined" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName sets the table name.
func (StyleProfile) TableName() string {
	return "styles"
}

// NewStyleProfile creates a user-defined style profile.
func NewStyleProfile(name, description string) *StyleProfile {
	return &StyleProfile{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Predefined:  false,
		CreatedAt:   time.Now(),
	}
}

// PredefinedStyles are seeded at startup, idempotently by name.
func PredefinedStyles() []*StyleProfile {
	seeds := []struct{ name, description string }{
		{"Narratif", "Un style narratif classique, fluide et immersif"},
		{"Poetique", "Un style poetique et lyrique, avec des metaphores"},
		{"Suspense", "Un style thriller/suspense, avec du rythme et de la tension"},
		{"Jeunesse", "Un style adapte aux enfants et adolescents"},
		{"Fantastique", "Un style fantastique/fantasy, atmosphere magique"},
		{"Humoristique", "Un style humoristique et leger"},
		{"Historique", "Un style historique avec attention aux details d'epoque"},
		{"Contemporain", "Un style moderne et realiste"},
	}

	styles := make([]*StyleProfile, 0, len(seeds))
	for _, s := range seeds {
		styles = append(styles, &StyleProfile{
			ID:          uuid.NewString(),
			Name:        s.name,
			Description: s.description,
			Predefined:  true,
			CreatedAt:   time.Now(),
		})
	}
	return styles
}
